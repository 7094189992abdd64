package background

import (
	"context"
	"log/slog"
	"time"

	usecase "github.com/sambashop/escrow-service/internal/usecase/escrow"
)

type BackgroundTasks struct {
	EscrowUsecase usecase.EscrowUsecase
	SweepInterval time.Duration
}

func NewBackgroundTasks(escrowUC usecase.EscrowUsecase, sweepInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		EscrowUsecase: escrowUC,
		SweepInterval: sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startVerificationSweep(ctx)
}

// startVerificationSweep periodically releases funds for delivered
// transactions whose verification window closed without a dispute. Buyers
// who confirm receipt first simply win the race; the sweep tolerates that.
func (bt *BackgroundTasks) startVerificationSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.EscrowUsecase.CompleteExpiredVerifications(ctx); err != nil {
				slog.Error("verification sweep failed", "error", err.Error())
			}
		}
	}
}
