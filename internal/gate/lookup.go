package gate

import (
	"context"

	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Lookup reads role membership and approval state. repository.Repository satisfies it.
type Lookup interface {
	HasRole(ctx context.Context, playerId uuid.UUID, role model.Role) (bool, error)
	// GetApprovalStatus returns nil when the user has no application for role.
	GetApprovalStatus(ctx context.Context, playerId uuid.UUID, role model.Role) (*bool, error)
}

// reader wraps the collaborators with the gate's fail-closed read policy. Reads abandoned
// through ctx are not counted as lookup failures.
type reader struct {
	logger   *zap.SugaredLogger
	identity identity.Provider
	lookup   Lookup
}

// session treats any provider error as signed out.
func (r reader) session(ctx context.Context, token string) *identity.Session {
	session, err := r.identity.GetSession(ctx, token)
	if err != nil {
		r.logger.Debugw("session lookup failed", "error", err)
		return nil
	}
	return session
}

// hasRole treats a lookup error as the role not being held.
func (r reader) hasRole(ctx context.Context, playerId uuid.UUID, role model.Role) bool {
	ok, err := r.lookup.HasRole(ctx, playerId, role)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		lookupFailuresTotal.WithLabelValues("role").Inc()
		r.logger.Warnw("role lookup failed, denying", "playerId", playerId, "role", role, "error", err)
		return false
	}
	return ok
}

// approved treats a missing application and a lookup error as not approved.
func (r reader) approved(ctx context.Context, playerId uuid.UUID, role model.Role) bool {
	status, err := r.lookup.GetApprovalStatus(ctx, playerId, role)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		lookupFailuresTotal.WithLabelValues("approval").Inc()
		r.logger.Warnw("approval lookup failed, denying", "playerId", playerId, "role", role, "error", err)
		return false
	}
	return status != nil && *status
}
