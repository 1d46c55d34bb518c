// Package task runs scheduled background jobs.
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"tienda/config"
	"tienda/internal/domain/repository"
)

// TokenSweepParams holds dependencies for the token sweep job, injected by Fx
type TokenSweepParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	TokenRepo repository.TokenRepository
}

// TokenSweep deletes expired action tokens on a cron schedule.
type TokenSweep struct {
	cron      *cron.Cron
	schedule  string
	logger    *slog.Logger
	tokenRepo repository.TokenRepository
}

// NewTokenSweep builds the sweep job and binds it to the fx lifecycle.
func NewTokenSweep(params TokenSweepParams) (*TokenSweep, error) {
	sweep := &TokenSweep{
		cron:      cron.New(),
		schedule:  params.Config.Sweep.Schedule,
		logger:    params.Logger,
		tokenRepo: params.TokenRepo,
	}

	if _, err := sweep.cron.AddFunc(sweep.schedule, sweep.run); err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweep.logger.Info("Starting token sweep", slog.String("schedule", sweep.schedule))
			sweep.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweep.logger.Info("Stopping token sweep")
			<-sweep.cron.Stop().Done()

			return nil
		},
	})

	return sweep, nil
}

// run executes one sweep pass. Failures are logged and the schedule continues.
func (t *TokenSweep) run() {
	removed, err := t.tokenRepo.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		t.logger.Error("Token sweep failed", slog.Any("error", err))

		return
	}

	t.logger.Info("Token sweep completed", slog.Int64("removed", removed))
}
