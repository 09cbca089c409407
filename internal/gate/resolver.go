package gate

import (
	"context"

	"elevation-service/internal/identity"
	"go.uber.org/zap"
)

// Resolver evaluates a requirement once, reading every input from the stores.
type Resolver struct {
	r reader
}

func NewResolver(logger *zap.SugaredLogger, provider identity.Provider, lookup Lookup) *Resolver {
	return &Resolver{r: reader{logger: logger, identity: provider, lookup: lookup}}
}

// Resolve authenticates token and evaluates req. The result is Pending if ctx ends
// before every input has been read.
func (res *Resolver) Resolve(ctx context.Context, token string, req Requirement) Decision {
	if !req.needsAuth() {
		return observe(Evaluate(req, State{}))
	}
	return res.ResolveSession(ctx, res.r.session(ctx, token), req)
}

// ResolveSession evaluates req for an already authenticated session, nil for signed out.
// Role and approval are read concurrently.
func (res *Resolver) ResolveSession(ctx context.Context, session *identity.Session, req Requirement) Decision {
	st := State{
		Auth:     Loaded(session),
		Role:     Loaded(false),
		Approval: Loaded(false),
	}

	// buffered so abandoned reads never block
	roleCh := make(chan bool, 1)
	approvalCh := make(chan bool, 1)

	if session != nil {
		if req.needsRole() {
			st.Role = Loading[bool]()
			go func() { roleCh <- res.r.hasRole(ctx, session.UserId, req.RequiredRole) }()
		}
		if req.needsApproval() {
			st.Approval = Loading[bool]()
			go func() { approvalCh <- res.r.approved(ctx, session.UserId, req.RequiredRole) }()
		}
	}

	for st.Role.IsLoading() || st.Approval.IsLoading() {
		select {
		case v := <-roleCh:
			st.Role = Loaded(v)
		case v := <-approvalCh:
			st.Approval = Loaded(v)
		case <-ctx.Done():
			return observe(DecisionPending)
		}
	}

	// a read that lost the race with cancellation reports false, not a real denial
	if ctx.Err() != nil {
		return observe(DecisionPending)
	}

	return observe(Evaluate(req, st))
}
