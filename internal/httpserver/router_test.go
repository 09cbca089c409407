package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elevation-service/internal/gate"
	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testSecret = []byte("test-jwt-secret")

type staticResolver struct {
	decision gate.Decision
	got      []gate.Requirement
	tokens   []string
}

func (s *staticResolver) Resolve(_ context.Context, token string, req gate.Requirement) gate.Decision {
	s.got = append(s.got, req)
	s.tokens = append(s.tokens, token)
	return s.decision
}

type approvalLookup struct {
	approved *bool
}

func (a approvalLookup) HasRole(context.Context, uuid.UUID, model.Role) (bool, error) {
	return true, nil
}

func (a approvalLookup) GetApprovalStatus(context.Context, uuid.UUID, model.Role) (*bool, error) {
	return a.approved, nil
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name       string
		decision   gate.Decision
		wantStatus int
		wantTarget string
	}{
		{name: "allow", decision: gate.DecisionAllow, wantStatus: http.StatusOK},
		{name: "login", decision: gate.RedirectTo(gate.TargetLogin), wantStatus: http.StatusFound, wantTarget: "/login"},
		{name: "pro pending", decision: gate.RedirectTo(gate.TargetProPending), wantStatus: http.StatusFound, wantTarget: "/pro-pending"},
		{name: "pending", decision: gate.DecisionPending, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &staticResolver{decision: tc.decision}
			req := gate.Requirement{RequireAuth: true, RequiredRole: model.RolePro}
			protected := Guard(resolver, req)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodGet, "/pro/dashboard", nil)
			r.Header.Set("Authorization", "Bearer abc")
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantTarget, w.Header().Get("Location"))
			assert.Equal(t, []gate.Requirement{req}, resolver.got)
			assert.Equal(t, []string{"abc"}, resolver.tokens)
		})
	}
}

func TestRouter_Gate(t *testing.T) {
	resolver := &staticResolver{decision: gate.RedirectTo(gate.TargetTrainerPending)}
	router := NewRouter(zap.NewNop().Sugar(), identity.NewJWTProvider(testSecret), resolver, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/gate?requireAuth=true&role=TRAINER", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp decisionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, decisionResponse{Outcome: "redirect", Target: "/trainer-pending"}, resp)
	assert.Equal(t, []gate.Requirement{{RequireAuth: true, RequiredRole: model.RoleTrainer}}, resolver.got)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/gate?role=WIZARD", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/gate?requireAuth=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Notice(t *testing.T) {
	logger := zap.NewNop().Sugar()
	provider := identity.NewJWTProvider(testSecret)
	banner := gate.NewBanner(logger, approvalLookup{approved: new(bool)})
	router := NewRouter(logger, provider, &staticResolver{decision: gate.DecisionAllow}, banner)

	token, err := identity.SignToken(testSecret, uuid.New(), time.Hour)
	assert.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/v1/applications/PRO/notice", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp noticeResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Pending)

	r = httptest.NewRequest(http.MethodGet, "/v1/applications/ADMIN/notice", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(zap.NewNop().Sugar(), identity.NewJWTProvider(testSecret), &staticResolver{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
