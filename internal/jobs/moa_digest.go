// Package jobs runs the scheduled background work: the nightly digest of
// agreements approaching expiry, logged for the OJT office with the renewal
// letters pre-composed.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/internal/analytics"
	dirservice "github.com/oancholarevelo/interniskolar/internal/directory/service"
	"github.com/oancholarevelo/interniskolar/internal/letters"
)

type Scheduler struct {
	catalog *dirservice.CatalogProvider
	logger  *zap.Logger
	cron    *cron.Cron
}

func NewScheduler(catalog *dirservice.CatalogProvider, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		catalog: catalog,
		logger:  logger,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start registers the digest at the given cron schedule and starts the
// scheduler. Entries run in their own goroutine.
func (s *Scheduler) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.RunDigest(context.Background())
	})
	if err != nil {
		return err
	}

	s.logger.Info("cron scheduler started", zap.String("moa_digest_schedule", schedule))
	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunDigest recomputes the expiring-agreement list and logs one line per
// company, with the renewal letter ready to send.
func (s *Scheduler) RunDigest(ctx context.Context) {
	now := time.Now()

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		s.logger.Error("moa digest failed to load catalog", zap.Error(err))
		return
	}

	summary := analytics.Compute(nil, catalog, now)
	s.logger.Info("moa digest",
		zap.Int("expiring_within_90d", len(summary.ExpiringHTEs)),
		zap.Int("active", summary.ActiveHTEs),
		zap.Int("expired", summary.ExpiredHTEs))

	for _, item := range summary.ExpiringHTEs {
		letter := letters.Renewal(item.HTE, now)
		s.logger.Info("moa expiring",
			zap.String("hte", item.HTE.Name),
			zap.Int("days_until_expiry", item.DaysUntilExpiry),
			zap.String("urgency", string(item.Urgency)),
			zap.String("contact", item.HTE.ContactEmail),
			zap.String("letter_subject", letter.Subject))
	}
}
