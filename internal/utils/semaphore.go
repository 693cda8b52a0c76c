package utils

// Semaphore bounds the number of concurrent correction workers in batch mode.
type Semaphore struct {
	ch chan struct{}
}

func NewSemaphore(max int) *Semaphore {
	if max < 1 {
		max = 1
	}
	return &Semaphore{
		ch: make(chan struct{}, max),
	}
}

func (s *Semaphore) Acquire() {
	s.ch <- struct{}{}
}

// TryAcquire takes a permit without blocking; it reports whether one was free.
func (s *Semaphore) TryAcquire() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Semaphore) Release() {
	<-s.ch
}
