package scheduler

import (
	"errors"
	"fmt"
	"time"

	"bizportal/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

var ErrInvalidInterval = errors.New("interval must be positive")

// CronScheduler drives the periodic tick with robfig/cron and deferred
// transitions with one-shot timers.
//
// cron has no notion of a single delayed run, so After sits on time.AfterFunc.
type CronScheduler struct{}

var _ interfaces.IScheduler = (*CronScheduler)(nil)

func NewCronScheduler() *CronScheduler {
	return &CronScheduler{}
}

func (s *CronScheduler) After(delay time.Duration, task func()) func() {
	t := time.AfterFunc(delay, task)
	return func() { t.Stop() }
}

// Every starts a dedicated cron instance running task every interval. Runs
// that would overlap a still-running task are skipped. Intervals below one
// second are rounded up by cron.
func (s *CronScheduler) Every(interval time.Duration, task func()) (func(), error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), task); err != nil {
		return nil, err
	}
	c.Start()
	log.Debug().Dur("interval", interval).Msg("scheduler: periodic task started")

	// Stop does not wait for a running task: the task may be blocked on the
	// same lock the caller holds.
	return func() {
		c.Stop()
		log.Debug().Dur("interval", interval).Msg("scheduler: periodic task stopped")
	}, nil
}
