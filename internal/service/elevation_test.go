package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"elevation-service/gen/go/grpc/elevation"
	"elevation-service/internal/approval"
	"elevation-service/internal/gate"
	"elevation-service/internal/identity"
	"elevation-service/internal/kafka/notifier"
	"elevation-service/internal/repository"
	"elevation-service/internal/repository/model"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	svc   *elevationService
	auth  *authorizer
	repo  repository.Repository
	notif *notifier.MockNotifier
}

func newTestEnv(t *testing.T, repo repository.Repository) *testEnv {
	logger := zap.NewNop().Sugar()
	mockNotif := notifier.NewMockNotifier(gomock.NewController(t))
	provider := identity.NewJWTProvider(testSecret)
	resolver := gate.NewResolver(logger, provider, repo)

	return &testEnv{
		svc: newElevationService(logger, approval.NewEngine(logger, repo, mockNotif), provider, repo,
			resolver, gate.NewBanner(logger, repo)).(*elevationService),
		auth:  newAuthorizer(logger, provider, resolver),
		repo:  repo,
		notif: mockNotif,
	}
}

func signedToken(t *testing.T, userId uuid.UUID) string {
	token, err := identity.SignToken(testSecret, userId, time.Hour)
	assert.NoError(t, err)
	return token
}

// call runs a method through the authorizer the way the gRPC server does.
func (e *testEnv) call(t *testing.T, userId uuid.UUID, method string, req interface{}, handler grpc.UnaryHandler) (interface{}, error) {
	ctx := context.Background()
	if userId != uuid.Nil {
		ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", "Bearer "+signedToken(t, userId)))
	}
	return e.auth.UnaryInterceptor(ctx, req, &grpc.UnaryServerInfo{FullMethod: method}, handler)
}

func (e *testEnv) evaluate(t *testing.T, userId uuid.UUID, role model.Role) *elevation.Decision {
	resp, err := e.call(t, userId, elevation.ElevationService_Evaluate_FullMethodName,
		&elevation.EvaluateRequest{RequireAuth: true, RequiredRole: role.String()},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return e.svc.Evaluate(ctx, req.(*elevation.EvaluateRequest))
		})
	assert.NoError(t, err)
	return resp.(*elevation.Decision)
}

func (e *testEnv) apply(t *testing.T, userId uuid.UUID, role model.Role) {
	e.notif.EXPECT().ApplicationSubmitted(gomock.Any(), userId, role).Return(nil)
	_, err := e.call(t, userId, elevation.ElevationService_Apply_FullMethodName, &elevation.ApplyRequest{Role: role.String()},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return e.svc.Apply(ctx, req.(*elevation.ApplyRequest))
		})
	assert.NoError(t, err)
}

func assertDecision(t *testing.T, d *elevation.Decision, outcome elevation.Outcome, target gate.Target) {
	t.Helper()
	assert.Equal(t, outcome, d.GetOutcome())
	assert.Equal(t, string(target), d.GetTarget())
}

func TestScenario_RejectedPro(t *testing.T) {
	repo := newMemoryRepository()
	env := newTestEnv(t, repo)
	userId := uuid.New()

	env.apply(t, userId, model.RolePro)
	record, err := repo.GetApplication(context.Background(), userId, model.RolePro)
	assert.NoError(t, err)
	assert.False(t, record.Approved)
	assert.Nil(t, record.RejectionReason)

	env.notif.EXPECT().ApplicationRejected(gomock.Any(), userId, model.RolePro, "Rank too low").Return(nil)
	_, err = env.svc.Reject(context.Background(), &elevation.RejectRequest{PlayerId: userId.String(), Role: "PRO", Reason: "Rank too low"})
	assert.NoError(t, err)

	record, err = repo.GetApplication(context.Background(), userId, model.RolePro)
	assert.NoError(t, err)
	assert.False(t, record.Approved)
	assert.Equal(t, "Rank too low", *record.RejectionReason)

	roles, err := repo.GetPlayerRoles(context.Background(), userId)
	assert.NoError(t, err)
	assert.Equal(t, []model.Role{model.RolePro}, roles)

	assertDecision(t, env.evaluate(t, userId, model.RolePro), elevation.Outcome_REDIRECT, gate.TargetProPending)
}

func TestScenario_PendingTrainer(t *testing.T) {
	repo := newMemoryRepository()
	env := newTestEnv(t, repo)
	userId := uuid.New()

	env.apply(t, userId, model.RoleTrainer)

	hasRole, err := repo.HasRole(context.Background(), userId, model.RoleTrainer)
	assert.NoError(t, err)
	assert.True(t, hasRole)

	assertDecision(t, env.evaluate(t, userId, model.RoleTrainer), elevation.Outcome_REDIRECT, gate.TargetTrainerPending)

	// applying again while pending keeps a single grant and sends no second notification
	_, err = env.svc.Apply(context.WithValue(context.Background(), sessionKey{}, &identity.Session{UserId: userId}),
		&elevation.ApplyRequest{Role: "TRAINER"})
	assert.NoError(t, err)

	roles, err := repo.GetPlayerRoles(context.Background(), userId)
	assert.NoError(t, err)
	assert.Equal(t, []model.Role{model.RoleTrainer}, roles)
}

func TestScenario_ApprovedTrainer(t *testing.T) {
	repo := newMemoryRepository()
	env := newTestEnv(t, repo)
	userId := uuid.New()

	env.apply(t, userId, model.RoleTrainer)

	// notification failure must not affect the outcome
	env.notif.EXPECT().ApplicationApproved(gomock.Any(), userId, model.RoleTrainer).Return(errors.New("kafka down"))
	_, err := env.svc.Approve(context.Background(), &elevation.ApproveRequest{PlayerId: userId.String(), Role: "TRAINER"})
	assert.NoError(t, err)

	record, err := repo.GetApplication(context.Background(), userId, model.RoleTrainer)
	assert.NoError(t, err)
	assert.True(t, record.Approved)
	assert.Nil(t, record.RejectionReason)

	hasRole, err := repo.HasRole(context.Background(), userId, model.RoleTrainer)
	assert.NoError(t, err)
	assert.True(t, hasRole)

	assertDecision(t, env.evaluate(t, userId, model.RoleTrainer), elevation.Outcome_ALLOW, "")

	pending, err := env.svc.ListPending(context.Background(), &elevation.ListPendingRequest{Role: "TRAINER"})
	assert.NoError(t, err)
	assert.Empty(t, pending.Applications)
}

func TestScenario_PlayerWithoutApproval(t *testing.T) {
	repo := newMemoryRepository()
	env := newTestEnv(t, repo)
	userId := uuid.New()
	assert.NoError(t, repo.AddRoleToPlayer(context.Background(), userId, model.RolePlayer))

	assertDecision(t, env.evaluate(t, userId, model.RolePlayer), elevation.Outcome_ALLOW, "")
	assertDecision(t, env.evaluate(t, userId, model.RoleAdmin), elevation.Outcome_REDIRECT, gate.TargetHome)
	assertDecision(t, env.evaluate(t, uuid.Nil, model.RolePlayer), elevation.Outcome_REDIRECT, gate.TargetLogin)
}

func TestElevationService_Reject_InvalidArgument(t *testing.T) {
	// mock repository without expectations: nothing may be written
	env := newTestEnv(t, repository.NewMockRepository(gomock.NewController(t)))

	_, err := env.svc.Reject(context.Background(), &elevation.RejectRequest{PlayerId: uuid.NewString(), Role: "TRAINER", Reason: ""})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.svc.Reject(context.Background(), &elevation.RejectRequest{PlayerId: "not-a-uuid", Role: "TRAINER", Reason: "no"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.svc.Reject(context.Background(), &elevation.RejectRequest{PlayerId: uuid.NewString(), Role: "ADMIN", Reason: "no"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestElevationService_Approve_Errors(t *testing.T) {
	mockRepo := repository.NewMockRepository(gomock.NewController(t))
	env := newTestEnv(t, mockRepo)
	userId := uuid.New()

	mockRepo.EXPECT().GetApplication(gomock.Any(), userId, model.RolePro).Return(nil, repository.ErrApplicationNotFound)
	_, err := env.svc.Approve(context.Background(), &elevation.ApproveRequest{PlayerId: userId.String(), Role: "PRO"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	mockRepo.EXPECT().GetApplication(gomock.Any(), userId, model.RolePro).Return(&model.ApplicationRecord{UserId: userId}, nil)
	mockRepo.EXPECT().SetApproval(gomock.Any(), userId, model.RolePro, true, nil).Return(errors.New("store unavailable"))
	_, err = env.svc.Approve(context.Background(), &elevation.ApproveRequest{PlayerId: userId.String(), Role: "PRO"})
	assert.Equal(t, codes.Internal, status.Code(err))

	mockRepo.EXPECT().GetApplication(gomock.Any(), userId, model.RolePro).Return(&model.ApplicationRecord{UserId: userId, Approved: true}, nil)
	_, err = env.svc.Reject(context.Background(), &elevation.RejectRequest{PlayerId: userId.String(), Role: "PRO", Reason: "no"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestAuthorizer_ReviewerMethods(t *testing.T) {
	repo := newMemoryRepository()
	env := newTestEnv(t, repo)

	moderator := uuid.New()
	assert.NoError(t, repo.AddRoleToPlayer(context.Background(), moderator, model.RoleModerator))
	admin := uuid.New()
	assert.NoError(t, repo.AddRoleToPlayer(context.Background(), admin, model.RoleAdmin))
	player := uuid.New()
	assert.NoError(t, repo.AddRoleToPlayer(context.Background(), player, model.RolePlayer))

	called := 0
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called++
		return &elevation.ListPendingResponse{}, nil
	}

	_, err := env.call(t, moderator, elevation.ElevationService_ListPending_FullMethodName, &elevation.ListPendingRequest{Role: "PRO"}, handler)
	assert.NoError(t, err)
	_, err = env.call(t, admin, elevation.ElevationService_ListPending_FullMethodName, &elevation.ListPendingRequest{Role: "PRO"}, handler)
	assert.NoError(t, err)
	assert.Equal(t, 2, called)

	_, err = env.call(t, player, elevation.ElevationService_Approve_FullMethodName, &elevation.ApproveRequest{}, handler)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = env.call(t, uuid.Nil, elevation.ElevationService_Reject_FullMethodName, &elevation.RejectRequest{}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	assert.Equal(t, 2, called)
}

func TestElevationService_GetApprovalNotice(t *testing.T) {
	repo := newMemoryRepository()
	env := newTestEnv(t, repo)
	userId := uuid.New()

	env.apply(t, userId, model.RolePro)

	resp, err := env.call(t, userId, elevation.ElevationService_GetApprovalNotice_FullMethodName, &elevation.GetApprovalNoticeRequest{Role: "PRO"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return env.svc.GetApprovalNotice(ctx, req.(*elevation.GetApprovalNoticeRequest))
		})
	assert.NoError(t, err)
	assert.True(t, resp.(*elevation.GetApprovalNoticeResponse).Pending)

	_, err = env.call(t, uuid.Nil, elevation.ElevationService_GetApprovalNotice_FullMethodName, &elevation.GetApprovalNoticeRequest{Role: "PRO"}, nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

type decisionStream struct {
	grpc.ServerStream

	ctx      context.Context
	requests chan *elevation.WatchDecisionRequest
	sent     chan *elevation.Decision
}

func newDecisionStream(ctx context.Context) *decisionStream {
	return &decisionStream{
		ctx:      ctx,
		requests: make(chan *elevation.WatchDecisionRequest, 1),
		sent:     make(chan *elevation.Decision, 16),
	}
}

func (s *decisionStream) Context() context.Context {
	return s.ctx
}

func (s *decisionStream) Send(d *elevation.Decision) error {
	s.sent <- d
	return nil
}

func (s *decisionStream) Recv() (*elevation.WatchDecisionRequest, error) {
	req, ok := <-s.requests
	if !ok {
		return nil, io.EOF
	}
	return req, nil
}

// nextSettled returns the first streamed decision that is not pending.
func (s *decisionStream) nextSettled(t *testing.T) *elevation.Decision {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case d := <-s.sent:
			if d.GetOutcome() != elevation.Outcome_PENDING {
				return d
			}
		case <-timeout:
			t.Fatal("no settled decision streamed")
			return nil
		}
	}
}

func TestElevationService_WatchDecision(t *testing.T) {
	repo := newMemoryRepository()
	env := newTestEnv(t, repo)
	userId := uuid.New()

	env.apply(t, userId, model.RoleTrainer)

	ctx, cancel := context.WithCancel(context.Background())
	stream := newDecisionStream(ctx)
	done := make(chan error, 1)
	go func() {
		done <- env.svc.WatchDecision(stream)
	}()

	stream.requests <- &elevation.WatchDecisionRequest{
		Token:        signedToken(t, userId),
		RequireAuth:  true,
		RequiredRole: "TRAINER",
	}
	// the stream keeps running once the client stops sending requirement changes
	close(stream.requests)

	assertDecision(t, stream.nextSettled(t), elevation.Outcome_REDIRECT, gate.TargetTrainerPending)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("WatchDecision did not return after the stream ended")
	}
}

func TestElevationService_WatchDecision_SignedOut(t *testing.T) {
	env := newTestEnv(t, newMemoryRepository())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := newDecisionStream(ctx)
	go func() {
		_ = env.svc.WatchDecision(stream)
	}()

	stream.requests <- &elevation.WatchDecisionRequest{RequireAuth: true, RequiredRole: "PLAYER"}
	assertDecision(t, stream.nextSettled(t), elevation.Outcome_REDIRECT, gate.TargetLogin)
}

func TestElevationService_WatchDecision_InvalidRole(t *testing.T) {
	env := newTestEnv(t, newMemoryRepository())

	stream := newDecisionStream(context.Background())
	stream.requests <- &elevation.WatchDecisionRequest{RequiredRole: "WIZARD"}
	close(stream.requests)

	err := env.svc.WatchDecision(stream)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
