package approval

import (
	"errors"
	"strings"

	"elevation-service/internal/repository"
	"elevation-service/internal/repository/model"
)

var (
	ErrEmptyReason         = errors.New("rejection reason must not be empty")
	ErrAlreadyApproved     = errors.New("application is already approved")
	ErrApplicationNotFound = repository.ErrApplicationNotFound
	ErrNotElevatedRole     = repository.ErrNotElevatedRole
)

type DecisionKind int

const (
	Approve DecisionKind = iota
	Reject
)

func (k DecisionKind) String() string {
	switch k {
	case Approve:
		return "approve"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// Decision is a reviewer's verdict on an application. Reason is only used by Reject.
type Decision struct {
	Kind   DecisionKind
	Reason string
}

type Notification int

const (
	NotifyNone Notification = iota
	NotifySubmitted
	NotifyApproved
	NotifyRejected
)

// Transition describes every effect a decision has. Record is the state to persist.
type Transition struct {
	Record    model.ApplicationRecord
	GrantRole bool
	Notify    Notification
	// NoOp is set when the record is already in the requested state.
	NoOp bool
}

// Decide computes the transition for applying d to current. A nil current means
// the user has no application for the role.
func Decide(current *model.ApplicationRecord, d Decision) (Transition, error) {
	switch d.Kind {
	case Approve:
		if current == nil {
			return Transition{}, ErrApplicationNotFound
		}
		if current.Approved {
			return Transition{Record: *current, NoOp: true}, nil
		}

		next := *current
		next.Approved = true
		next.RejectionReason = nil
		return Transition{Record: next, GrantRole: true, Notify: NotifyApproved}, nil

	case Reject:
		reason := strings.TrimSpace(d.Reason)
		if reason == "" {
			return Transition{}, ErrEmptyReason
		}
		if current == nil {
			return Transition{}, ErrApplicationNotFound
		}
		if current.Approved {
			return Transition{}, ErrAlreadyApproved
		}

		next := *current
		next.RejectionReason = &reason
		return Transition{Record: next, Notify: NotifyRejected}, nil

	default:
		return Transition{}, errors.New("unknown decision")
	}
}
