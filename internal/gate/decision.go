package gate

import (
	"fmt"

	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
)

type Outcome int

const (
	Pending Outcome = iota
	Allow
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Target is the path a denied request is sent to.
type Target string

const (
	TargetLogin          Target = "/login"
	TargetHome           Target = "/"
	TargetTrainerPending Target = "/trainer-pending"
	TargetProPending     Target = "/pro-pending"
)

type Decision struct {
	Outcome Outcome
	// Target is only set for Redirect.
	Target Target
}

var (
	DecisionPending = Decision{Outcome: Pending}
	DecisionAllow   = Decision{Outcome: Allow}
)

func RedirectTo(target Target) Decision {
	return Decision{Outcome: Redirect, Target: target}
}

func (d Decision) String() string {
	if d.Outcome == Redirect {
		return fmt.Sprintf("redirect(%s)", d.Target)
	}
	return d.Outcome.String()
}

// Requirement describes what a protected capability needs. An empty RequiredRole means
// any role, or none, is accepted.
type Requirement struct {
	RequireAuth  bool
	RequiredRole model.Role
}

func (r Requirement) needsAuth() bool {
	return r.RequireAuth || r.RequiredRole != ""
}

func (r Requirement) needsRole() bool {
	return r.RequiredRole != ""
}

func (r Requirement) needsApproval() bool {
	return r.RequiredRole.IsElevated()
}

// PendingTarget is the page a user holding an unapproved elevated role is sent to.
func PendingTarget(role model.Role) Target {
	if role == model.RolePro {
		return TargetProPending
	}
	return TargetTrainerPending
}

// Slice is one asynchronously resolved input of the gate. The zero value is loading.
type Slice[T any] struct {
	loaded bool
	value  T
}

func Loading[T any]() Slice[T] {
	return Slice[T]{}
}

func Loaded[T any](v T) Slice[T] {
	return Slice[T]{loaded: true, value: v}
}

func (s Slice[T]) IsLoading() bool {
	return !s.loaded
}

// Get returns the value and whether it has been resolved.
func (s Slice[T]) Get() (T, bool) {
	return s.value, s.loaded
}

// State is everything the gate knows about the current user. A loaded nil session means
// the user is signed out.
type State struct {
	Auth     Slice[*identity.Session]
	Role     Slice[bool]
	Approval Slice[bool]
}

// Evaluate decides whether the capability described by req may be used. It never
// redirects while a slice relevant to req is still loading.
func Evaluate(req Requirement, st State) Decision {
	if req.needsAuth() && st.Auth.IsLoading() ||
		req.needsRole() && st.Role.IsLoading() ||
		req.needsApproval() && st.Approval.IsLoading() {
		return DecisionPending
	}

	session, _ := st.Auth.Get()
	if req.RequireAuth && session == nil {
		return RedirectTo(TargetLogin)
	}

	if req.needsRole() {
		if hasRole, _ := st.Role.Get(); !hasRole {
			return RedirectTo(TargetHome)
		}
	}

	if req.needsApproval() {
		if approved, _ := st.Approval.Get(); !approved {
			return RedirectTo(PendingTarget(req.RequiredRole))
		}
	}

	return DecisionAllow
}
