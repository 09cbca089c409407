package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"elevation-service/internal/repository"
	"elevation-service/internal/repository/model"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// GrantReconciler restores role grants for approved applications. An approval whose
// grant failed and whose revert also failed is left approved without a grant until then.
type GrantReconciler struct {
	logger *zap.SugaredLogger
	repo   repository.Repository
}

func NewGrantReconciler(logger *zap.SugaredLogger, repo repository.Repository) *GrantReconciler {
	return &GrantReconciler{logger: logger, repo: repo}
}

// Reconcile returns the number of grants it had to restore.
func (g *GrantReconciler) Reconcile(ctx context.Context) (int, error) {
	restored := 0
	var errs []error

	for _, role := range model.ElevatedRoles {
		records, err := g.repo.GetApprovedApplications(ctx, role)
		if err != nil {
			errs = append(errs, fmt.Errorf("list approved %s applications: %w", role, err))
			continue
		}

		for _, record := range records {
			err := g.repo.AddRoleToPlayer(ctx, record.UserId, role)
			switch {
			case err == nil:
				restored++
				g.logger.Warnw("restored missing role grant for approved application", "playerId", record.UserId, "role", role)
			case errors.Is(err, repository.ErrAlreadyHasRole):
			default:
				errs = append(errs, fmt.Errorf("grant %s to %s: %w", role, record.UserId, err))
			}
		}
	}

	return restored, errors.Join(errs...)
}

// Start runs Reconcile every interval until ctx is cancelled.
func (g *GrantReconciler) Start(ctx context.Context, wg *sync.WaitGroup, interval time.Duration) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			restored, err := g.Reconcile(ctx)
			if err != nil {
				g.logger.Errorw("role grant reconciliation failed", "restored", restored, "error", err)
				return
			}
			g.logger.Debugw("role grant reconciliation finished", "restored", restored)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reconciliation: %w", err)
	}

	s.Start()
	g.logger.Infow("started role grant reconciler", "interval", interval)

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := s.Shutdown(); err != nil {
			g.logger.Errorw("failed to shut down reconciler", "error", err)
		}
	}()

	return nil
}
