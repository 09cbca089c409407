package gate

import (
	"testing"

	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testSession = &identity.Session{UserId: uuid.New()}

func resolved(session *identity.Session, hasRole bool, approved bool) State {
	return State{
		Auth:     Loaded(session),
		Role:     Loaded(hasRole),
		Approval: Loaded(approved),
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		req  Requirement
		st   State
		want Decision
	}{
		{
			name: "no requirement",
			req:  Requirement{},
			st:   State{},
			want: DecisionAllow,
		},
		{
			name: "auth loading",
			req:  Requirement{RequireAuth: true},
			st:   State{},
			want: DecisionPending,
		},
		{
			name: "signed out",
			req:  Requirement{RequireAuth: true},
			st:   resolved(nil, false, false),
			want: RedirectTo(TargetLogin),
		},
		{
			name: "signed in",
			req:  Requirement{RequireAuth: true},
			st:   State{Auth: Loaded(testSession)},
			want: DecisionAllow,
		},
		{
			name: "role loading",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RoleAdmin},
			st:   State{Auth: Loaded(testSession)},
			want: DecisionPending,
		},
		{
			name: "missing role",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RoleAdmin},
			st:   resolved(testSession, false, false),
			want: RedirectTo(TargetHome),
		},
		{
			name: "signed out with role and no auth requirement",
			req:  Requirement{RequiredRole: model.RoleParent},
			st:   resolved(nil, false, false),
			want: RedirectTo(TargetHome),
		},
		{
			name: "player needs no approval",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RolePlayer},
			st:   State{Auth: Loaded(testSession), Role: Loaded(true)},
			want: DecisionAllow,
		},
		{
			name: "player ignores unapproved application",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RolePlayer},
			st:   resolved(testSession, true, false),
			want: DecisionAllow,
		},
		{
			name: "approval loading",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RolePro},
			st:   State{Auth: Loaded(testSession), Role: Loaded(true)},
			want: DecisionPending,
		},
		{
			name: "pro not approved",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RolePro},
			st:   resolved(testSession, true, false),
			want: RedirectTo(TargetProPending),
		},
		{
			name: "trainer not approved",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RoleTrainer},
			st:   resolved(testSession, true, false),
			want: RedirectTo(TargetTrainerPending),
		},
		{
			name: "trainer approved",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RoleTrainer},
			st:   resolved(testSession, true, true),
			want: DecisionAllow,
		},
		{
			name: "approved without grant",
			req:  Requirement{RequireAuth: true, RequiredRole: model.RoleTrainer},
			st:   resolved(testSession, false, true),
			want: RedirectTo(TargetHome),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.req, tc.st))
		})
	}
}

// A slice that last resolved to false must not redirect while it is reloading.
func TestEvaluate_NoRedirectWhileLoading(t *testing.T) {
	req := Requirement{RequireAuth: true, RequiredRole: model.RolePro}

	st := resolved(testSession, true, false)
	assert.Equal(t, RedirectTo(TargetProPending), Evaluate(req, st))

	st.Approval = Loading[bool]()
	assert.Equal(t, DecisionPending, Evaluate(req, st))

	st = resolved(testSession, false, false)
	st.Role = Loading[bool]()
	assert.Equal(t, DecisionPending, Evaluate(req, st))
}

func TestSlice(t *testing.T) {
	var s Slice[bool]
	assert.True(t, s.IsLoading())
	_, ok := s.Get()
	assert.False(t, ok)

	s = Loaded(false)
	assert.False(t, s.IsLoading())
	v, ok := s.Get()
	assert.True(t, ok)
	assert.False(t, v)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "pending", DecisionPending.String())
	assert.Equal(t, "allow", DecisionAllow.String())
	assert.Equal(t, "redirect(/pro-pending)", RedirectTo(TargetProPending).String())
}
