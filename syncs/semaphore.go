package syncs

// Semaphore bounds concurrency to its capacity. Acquire blocks while
// full; every Acquire must be paired with a Release.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}
