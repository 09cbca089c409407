package notifier

import (
	"context"

	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
)

//go:generate mockgen -source=public.go -destination=mock_notifier.go -package=notifier

// Notifier publishes application lifecycle events. Delivery is best-effort, callers log
// failures and carry on.
type Notifier interface {
	ApplicationSubmitted(ctx context.Context, playerId uuid.UUID, role model.Role) error
	ApplicationApproved(ctx context.Context, playerId uuid.UUID, role model.Role) error
	ApplicationRejected(ctx context.Context, playerId uuid.UUID, role model.Role, reason string) error
}
