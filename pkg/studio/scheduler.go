package studio

// Scheduler runs continuations. Event-loop driven hosts post fn onto their
// loop so signals and field reads stay on one goroutine.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

// Schedule implements Scheduler.
func (f SchedulerFunc) Schedule(fn func()) {
	f(fn)
}

type inlineScheduler struct{}

func (inlineScheduler) Schedule(fn func()) { fn() }
