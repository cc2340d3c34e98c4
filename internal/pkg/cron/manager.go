package cron

import (
	log "log/slog"

	"Peakfuel/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	postCounterJob    *job.PostCounterJob
	commentCounterJob *job.CommentCounterJob
}

func NewCronManager(postCounterJob *job.PostCounterJob, commentCounterJob *job.CommentCounterJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		postCounterJob:    postCounterJob,
		commentCounterJob: commentCounterJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 5m", s.postCounterJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@every 5m", s.commentCounterJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
