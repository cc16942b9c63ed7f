package services

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// InterfaceSweepService defines the scheduled maintenance jobs
type InterfaceSweepService interface {
	Start() error
	Stop()
	RunExpirySweep()
	RunRetentionSweep()
}

// SweepService owns the two time-triggered sweeps: the hourly status-expiry
// sweep and the daily retention-deletion sweep (which also reconciles
// orphaned attachment files). Sweeps run without coordination against
// concurrent user edits; the database's write ordering resolves races.
type SweepService struct {
	Config   *config.Config
	Visitors InterfaceVisitorService
	Notices  InterfaceNoticeService
	Storage  InterfaceStorageService

	cron *cron.Cron
}

// NewSweepService creates a new sweep service
func NewSweepService(cfg *config.Config, visitors InterfaceVisitorService, notices InterfaceNoticeService, storage InterfaceStorageService) InterfaceSweepService {
	return &SweepService{
		Config:   cfg,
		Visitors: visitors,
		Notices:  notices,
		Storage:  storage,
	}
}

// Start registers the cron entries in the configured timezone and starts the
// scheduler
func (s *SweepService) Start() error {
	loc, err := time.LoadLocation(s.Config.CronTimezone)
	if err != nil {
		return err
	}

	s.cron = cron.New(cron.WithLocation(loc))

	// Every hour at minute 0
	if _, err := s.cron.AddFunc("0 * * * *", s.RunExpirySweep); err != nil {
		return err
	}
	// Every day at midnight
	if _, err := s.cron.AddFunc("0 0 * * *", s.RunRetentionSweep); err != nil {
		return err
	}

	s.cron.Start()
	config.Info("sweep scheduler started (timezone %s)", s.Config.CronTimezone)
	return nil
}

// Stop stops the scheduler; running jobs finish
func (s *SweepService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunExpirySweep marks overdue pending pre-approvals as expired. Failures are
// logged, never retried.
func (s *SweepService) RunExpirySweep() {
	config.Info("running expired pre-approval update job (hourly)...")

	updated, err := s.Visitors.ExpireOverduePreApprovals(time.Now().UTC())
	if err != nil {
		config.Error("error updating expired pre-approvals: %v", err)
		return
	}
	config.Info("updated %d pre-approvals", updated)
}

// RunRetentionSweep deletes pre-approvals past the retention cutoff, then
// removes attachment files no notice row references anymore
func (s *SweepService) RunRetentionSweep() {
	config.Info("running expired pre-approval deletion job...")

	cutoff := time.Now().Add(-time.Duration(s.Config.RetentionCutoffHrs) * time.Hour)
	deleted, err := s.Visitors.DeleteStalePreApprovals(cutoff)
	if err != nil {
		config.Error("error deleting expired pre-approvals: %v", err)
	} else {
		config.Info("deleted %d expired pre-approvals", deleted)
	}

	referenced, err := s.Notices.ReferencedAttachmentFilenames()
	if err != nil {
		config.Error("orphan sweep could not list referenced attachments: %v", err)
		return
	}
	removed, err := s.Storage.SweepOrphans(referenced)
	if err != nil {
		config.Error("orphan sweep failed: %v", err)
		return
	}
	if removed > 0 {
		config.Info("orphan sweep removed %d unreferenced files", removed)
	}
}
