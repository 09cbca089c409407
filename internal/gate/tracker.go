package gate

import (
	"context"
	"sync"

	"elevation-service/internal/identity"
	"go.uber.org/zap"
)

// Tracker keeps a gate decision current for one consumer while its inputs resolve.
//
// Every Reset starts a new generation: in-flight reads of the previous generation are
// cancelled and their results dropped when they arrive, so a previous user's or route's
// state never reaches the new decision.
type Tracker struct {
	r       reader
	publish func(Decision)

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	req    Requirement
	state  State
	last   Decision
	closed bool
}

// NewTracker creates a tracker that calls publish whenever the decision changes.
// publish runs with the tracker locked and must not call back into it.
func NewTracker(logger *zap.SugaredLogger, provider identity.Provider, lookup Lookup, publish func(Decision)) *Tracker {
	return &Tracker{
		r:       reader{logger: logger, identity: provider, lookup: lookup},
		publish: publish,
		cancel:  func() {},
	}
}

// Reset re-reads every input for a new session token or requirement.
func (t *Tracker) Reset(ctx context.Context, token string, req Requirement) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	t.cancel()
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.gen++
	t.req = req
	t.state = State{}
	t.emit(Evaluate(req, t.state), true)

	go t.load(ctx, t.gen, token, req)
}

func (t *Tracker) load(ctx context.Context, gen uint64, token string, req Requirement) {
	if !req.needsAuth() {
		return
	}

	session := t.r.session(ctx, token)
	if session == nil {
		t.apply(ctx, gen, func(st *State) {
			st.Auth = Loaded(session)
			st.Role = Loaded(false)
			st.Approval = Loaded(false)
		})
		return
	}
	t.apply(ctx, gen, func(st *State) { st.Auth = Loaded(session) })

	if req.needsRole() {
		go func() {
			v := t.r.hasRole(ctx, session.UserId, req.RequiredRole)
			t.apply(ctx, gen, func(st *State) { st.Role = Loaded(v) })
		}()
	}
	if req.needsApproval() {
		go func() {
			v := t.r.approved(ctx, session.UserId, req.RequiredRole)
			t.apply(ctx, gen, func(st *State) { st.Approval = Loaded(v) })
		}()
	}
}

// apply drops results of an abandoned read: a read cut short by cancellation looks like
// a failed lookup and would otherwise produce a redirect after the consumer moved on.
func (t *Tracker) apply(ctx context.Context, gen uint64, update func(*State)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || gen != t.gen || ctx.Err() != nil {
		return
	}

	update(&t.state)
	t.emit(Evaluate(t.req, t.state), false)
}

// emit publishes d. Within a generation only changes are published.
func (t *Tracker) emit(d Decision, newGeneration bool) {
	if !newGeneration && d == t.last {
		return
	}
	t.last = d
	if t.publish != nil {
		t.publish(d)
	}
}

// Decision returns the latest decision.
func (t *Tracker) Decision() Decision {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Close abandons in-flight reads. Nothing is published after Close returns.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.cancel()
}
