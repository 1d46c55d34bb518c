package task

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockRepo "tienda/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTokenSweep_RunDeletesExpired(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	tokenRepo.EXPECT().
		DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, before time.Time) {
			require.WithinDuration(t, time.Now(), before, time.Minute)
		}).
		Return(int64(3), nil)

	sweep := &TokenSweep{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokenRepo: tokenRepo,
	}

	sweep.run()
}

func TestTokenSweep_RunSwallowsFailure(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	tokenRepo.EXPECT().
		DeleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), errors.New("connection reset"))

	sweep := &TokenSweep{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tokenRepo: tokenRepo,
	}

	// The schedule keeps running after a failed pass; run must not panic.
	sweep.run()
}

func TestTokenSweep_DefaultScheduleParses(t *testing.T) {
	_, err := cron.ParseStandard("0 0 * * *")
	require.NoError(t, err)
}
