package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/models"
	nrpkg "github.com/piresc/lastmile/internal/pkg/newrelic"
	"github.com/piresc/lastmile/services/sessions"
)

// SweepOnce completes every ACTIVE session whose time budget has run out
func (uc *SessionUC) SweepOnce(ctx context.Context) (int, error) {
	now := uc.now().UTC()
	overrun, err := uc.sessionRepo.ListOverrun(ctx, now)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, s := range overrun {
		if ctx.Err() != nil {
			break
		}
		ok, err := uc.autoComplete(ctx, s.ID, now)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to auto-complete session",
				logger.String("session_id", s.ID),
				logger.Err(err))
			continue
		}
		if ok {
			completed++
		}
	}
	return completed, nil
}

// autoComplete reports false when a party transition got there first
func (uc *SessionUC) autoComplete(ctx context.Context, sessionID string, now time.Time) (bool, error) {
	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	updated, err := uc.sessionRepo.UpdateState(ctx, sessionID, models.SessionStateActive, models.SessionStateCompleted, now)
	if err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return false, nil
		}
		return false, err
	}

	metrics.AutoCompleted.Inc()
	logger.InfoCtx(ctx, "Session auto-completed",
		logger.String("session_id", sessionID),
		logger.Int("max_duration_minutes", updated.MaxDurationMinutes))

	uc.afterTransition(ctx, updated)
	return true, nil
}

// Sweeper periodically closes overrun sessions
type Sweeper struct {
	sessionUC sessions.SessionUC
	interval  time.Duration
	nrApp     *newrelic.Application
}

// NewSweeper creates a sweeper. nrApp may be nil.
func NewSweeper(sessionUC sessions.SessionUC, interval time.Duration, nrApp *newrelic.Application) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{sessionUC: sessionUC, interval: interval, nrApp: nrApp}
}

// Run sweeps on every tick until ctx is cancelled. A sweep in flight when
// ctx is cancelled finishes before Run returns.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Session sweeper started", logger.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	ctx, end := nrpkg.StartBackground(ctx, s.nrApp, "session-sweeper")
	defer end()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("sweeper panic: %v", r)
			nrpkg.NoticeError(ctx, err)
			logger.ErrorCtx(ctx, "Recovered from sweeper panic", logger.Err(err))
		}
	}()

	n, err := s.sessionUC.SweepOnce(ctx)
	if err != nil {
		nrpkg.NoticeError(ctx, err)
		logger.ErrorCtx(ctx, "Session sweep failed", logger.Err(err))
		return
	}
	if n > 0 {
		logger.InfoCtx(ctx, "Session sweep completed", logger.Int("completed", n))
	}
}
