package interfaces

import "time"

// IScheduler runs lifecycle work outside of command handlers.
//
//   - After schedules a one-shot deferred transition; cancel is safe to call
//     after the task has fired.
//   - Every schedules the periodic tick until stop is called.
type IScheduler interface {
	After(delay time.Duration, task func()) (cancel func())
	Every(interval time.Duration, task func()) (stop func(), err error)
}
