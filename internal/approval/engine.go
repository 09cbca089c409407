package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"elevation-service/internal/kafka/notifier"
	"elevation-service/internal/repository"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notifyTimeout = 5 * time.Second

// Engine applies reviewer decisions to the application and role stores.
type Engine struct {
	logger *zap.SugaredLogger
	repo   repository.Repository
	notif  notifier.Notifier
}

func NewEngine(logger *zap.SugaredLogger, repo repository.Repository, notif notifier.Notifier) *Engine {
	return &Engine{
		logger: logger,
		repo:   repo,
		notif:  notif,
	}
}

// Approve marks the application approved and grants the role. Either both writes
// succeed or the application is left unapproved. Approving an approved application
// succeeds without changing anything but the role grant, which is re-asserted.
func (e *Engine) Approve(ctx context.Context, playerId uuid.UUID, role model.Role) (err error) {
	defer func() { decisionsTotal.WithLabelValues(Approve.String(), role.String(), result(err)).Inc() }()

	current, err := e.getApplication(ctx, playerId, role)
	if err != nil {
		return err
	}

	t, err := Decide(current, Decision{Kind: Approve})
	if err != nil {
		return err
	}

	if t.NoOp {
		return e.grantRole(ctx, playerId, role)
	}

	if err := e.repo.SetApproval(ctx, playerId, role, t.Record.Approved, t.Record.RejectionReason); err != nil {
		return fmt.Errorf("failed to approve application: %w", err)
	}

	if err := e.grantRole(ctx, playerId, role); err != nil {
		// undo the approval so the record never claims a grant that does not exist.
		// A concurrent Approve may grant the role before this revert lands, leaving a grant
		// on an unapproved record; the gate still denies through the approval check.
		revertCtx := context.WithoutCancel(ctx)
		if revertErr := e.repo.SetApproval(revertCtx, playerId, role, current.Approved, current.RejectionReason); revertErr != nil {
			e.logger.Errorw("failed to revert approval after role grant failure",
				"playerId", playerId, "role", role, "error", revertErr)
		}
		return err
	}

	e.dispatch(ctx, playerId, role, t.Notify, "")
	return nil
}

// Reject records the rejection reason. No role is granted.
func (e *Engine) Reject(ctx context.Context, playerId uuid.UUID, role model.Role, reason string) (err error) {
	defer func() { decisionsTotal.WithLabelValues(Reject.String(), role.String(), result(err)).Inc() }()

	// validated before the store is touched
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}

	current, err := e.getApplication(ctx, playerId, role)
	if err != nil {
		return err
	}

	t, err := Decide(current, Decision{Kind: Reject, Reason: reason})
	if err != nil {
		return err
	}

	if err := e.repo.SetApproval(ctx, playerId, role, t.Record.Approved, t.Record.RejectionReason); err != nil {
		return fmt.Errorf("failed to reject application: %w", err)
	}

	e.dispatch(ctx, playerId, role, t.Notify, *t.Record.RejectionReason)
	return nil
}

// Apply submits an application for an elevated role and grants the role, which stays
// gated behind the approval until a reviewer decides. A rejected application is reopened,
// a pending one is left as is apart from re-asserting the grant.
func (e *Engine) Apply(ctx context.Context, playerId uuid.UUID, role model.Role) error {
	current, err := e.getApplication(ctx, playerId, role)
	if err != nil {
		return err
	}

	notify := NotifySubmitted
	switch {
	case current == nil:
		now := time.Now()
		err := e.repo.CreateApplication(ctx, &model.ApplicationRecord{
			UserId:    playerId,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if errors.Is(err, repository.ErrApplicationExists) {
			// lost a race with a concurrent submission of the same application
			notify = NotifyNone
		} else if err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
	case current.Approved:
		return ErrAlreadyApproved
	case current.RejectionReason != nil:
		if err := e.repo.SetApproval(ctx, playerId, role, false, nil); err != nil {
			return fmt.Errorf("failed to reopen application: %w", err)
		}
	default:
		notify = NotifyNone
	}

	// the record exists before the grant, so the gate never sees a grant without one
	if err := e.grantRole(ctx, playerId, role); err != nil {
		return err
	}

	e.dispatch(ctx, playerId, role, notify, "")
	return nil
}

// ListPending returns applications awaiting a decision, oldest first.
func (e *Engine) ListPending(ctx context.Context, role model.Role) ([]*model.ApplicationRecord, error) {
	if !role.IsElevated() {
		return nil, fmt.Errorf("%w: %s", ErrNotElevatedRole, role)
	}

	records, err := e.repo.GetPendingApplications(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending applications: %w", err)
	}
	return records, nil
}

// getApplication returns nil, nil when the user has no application for role.
func (e *Engine) getApplication(ctx context.Context, playerId uuid.UUID, role model.Role) (*model.ApplicationRecord, error) {
	if !role.IsElevated() {
		return nil, fmt.Errorf("%w: %s", ErrNotElevatedRole, role)
	}

	record, err := e.repo.GetApplication(ctx, playerId, role)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return record, nil
}

func (e *Engine) grantRole(ctx context.Context, playerId uuid.UUID, role model.Role) error {
	err := e.repo.AddRoleToPlayer(ctx, playerId, role)
	if err != nil && !errors.Is(err, repository.ErrAlreadyHasRole) {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

func (e *Engine) dispatch(ctx context.Context, playerId uuid.UUID, role model.Role, n Notification, reason string) {
	ctx, cancel := e.notifyContext(ctx)
	defer cancel()

	var err error
	var event string
	switch n {
	case NotifySubmitted:
		event = notifier.EventSubmitted
		err = e.notif.ApplicationSubmitted(ctx, playerId, role)
	case NotifyApproved:
		event = notifier.EventApproved
		err = e.notif.ApplicationApproved(ctx, playerId, role)
	case NotifyRejected:
		event = notifier.EventRejected
		err = e.notif.ApplicationRejected(ctx, playerId, role, reason)
	default:
		return
	}

	if err != nil {
		notificationFailuresTotal.Inc()
		e.logger.Errorw("failed to send application notification",
			"playerId", playerId, "role", role, "event", event, "error", err)
	}
}

// notifyContext detaches from the caller's cancellation, the decision is already committed.
func (e *Engine) notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
