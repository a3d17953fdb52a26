package port

import "time"

// Scheduler delivers delayed callbacks on the thread that drives the docker.
// Implementations must never run fn concurrently with other docker calls.
type Scheduler interface {
	// AfterFunc arranges for fn to run once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending Scheduler callback.
type Timer interface {
	// Stop cancels the callback. Returns false if it already ran or was stopped.
	Stop() bool
}
