package gate

import (
	"context"

	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Banner decides whether to show the "pending approval" notice. It only informs and never
// grants access, so unlike the gate it fails open: a failed lookup hides the notice.
type Banner struct {
	logger *zap.SugaredLogger
	lookup Lookup
}

func NewBanner(logger *zap.SugaredLogger, lookup Lookup) *Banner {
	return &Banner{logger: logger, lookup: lookup}
}

// Pending reports whether the user has an application for role that is not approved.
func (b *Banner) Pending(ctx context.Context, playerId uuid.UUID, role model.Role) bool {
	if !role.IsElevated() {
		return false
	}

	status, err := b.lookup.GetApprovalStatus(ctx, playerId, role)
	if err != nil {
		b.logger.Warnw("approval lookup failed, hiding pending notice", "playerId", playerId, "role", role, "error", err)
		return false
	}

	return status != nil && !*status
}
