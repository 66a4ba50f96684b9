package scheduler

import "github.com/robfig/cron/v3"

// Provider is the interface for the job scheduler.
type Provider interface {
	// Schedule registers a job under the given cron spec and returns
	// its entry ID.
	Schedule(spec string, job func()) (id int, err error)

	// Unschedule removes the job with the given entry ID.
	Unschedule(id int)

	Start()
	Stop()
}

// CronScheduler implements Provider on top of a robfig cron instance.
type CronScheduler struct {
	C *cron.Cron
}

var _ Provider = (*CronScheduler)(nil)

func (s *CronScheduler) Schedule(spec string, job func()) (int, error) {
	id, err := s.C.AddFunc(spec, job)
	return int(id), err
}

func (s *CronScheduler) Unschedule(id int) {
	s.C.Remove(cron.EntryID(id))
}

func (s *CronScheduler) Start() {
	s.C.Start()
}

func (s *CronScheduler) Stop() {
	s.C.Stop()
}
