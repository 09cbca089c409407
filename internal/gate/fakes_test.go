package gate

import (
	"context"
	"errors"

	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
)

var errLookup = errors.New("store unreachable")

type fakeProvider map[string]*identity.Session

func (f fakeProvider) GetSession(_ context.Context, token string) (*identity.Session, error) {
	if token == "" {
		return nil, nil
	}
	session, ok := f[token]
	if !ok {
		return nil, identity.ErrInvalidToken
	}
	return session, nil
}

type fakeLookup struct {
	hasRole  func(ctx context.Context, playerId uuid.UUID, role model.Role) (bool, error)
	approval func(ctx context.Context, playerId uuid.UUID, role model.Role) (*bool, error)
}

func (f fakeLookup) HasRole(ctx context.Context, playerId uuid.UUID, role model.Role) (bool, error) {
	return f.hasRole(ctx, playerId, role)
}

func (f fakeLookup) GetApprovalStatus(ctx context.Context, playerId uuid.UUID, role model.Role) (*bool, error) {
	return f.approval(ctx, playerId, role)
}

func roleResult(ok bool, err error) func(context.Context, uuid.UUID, model.Role) (bool, error) {
	return func(context.Context, uuid.UUID, model.Role) (bool, error) { return ok, err }
}

func approvalResult(status *bool, err error) func(context.Context, uuid.UUID, model.Role) (*bool, error) {
	return func(context.Context, uuid.UUID, model.Role) (*bool, error) { return status, err }
}

// blockingApproval waits for release, or for the read to be abandoned.
func blockingApproval(release <-chan bool) func(context.Context, uuid.UUID, model.Role) (*bool, error) {
	return func(ctx context.Context, _ uuid.UUID, _ model.Role) (*bool, error) {
		select {
		case v := <-release:
			return &v, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func boolPointer(b bool) *bool {
	return &b
}
