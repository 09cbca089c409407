package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"elevation-service/gen/go/grpc/elevation"
	"elevation-service/internal/approval"
	"elevation-service/internal/gate"
	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type elevationService struct {
	elevation.UnimplementedElevationServiceServer

	logger   *zap.SugaredLogger
	engine   *approval.Engine
	provider identity.Provider
	lookup   gate.Lookup
	resolver *gate.Resolver
	banner   *gate.Banner
}

func newElevationService(logger *zap.SugaredLogger, engine *approval.Engine, provider identity.Provider,
	lookup gate.Lookup, resolver *gate.Resolver, banner *gate.Banner) elevation.ElevationServiceServer {

	return &elevationService{
		logger:   logger,
		engine:   engine,
		provider: provider,
		lookup:   lookup,
		resolver: resolver,
		banner:   banner,
	}
}

func (s *elevationService) Apply(ctx context.Context, req *elevation.ApplyRequest) (*elevation.ApplyResponse, error) {
	session := sessionFromContext(ctx)
	if session == nil {
		return nil, status.Error(codes.Unauthenticated, "sign in required")
	}

	role, err := parseElevatedRole(req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Apply(ctx, session.UserId, role); err != nil {
		return nil, s.toStatus("error submitting application", err)
	}

	return &elevation.ApplyResponse{}, nil
}

func (s *elevationService) Approve(ctx context.Context, req *elevation.ApproveRequest) (*elevation.ApproveResponse, error) {
	pId, role, err := parseTarget(req.PlayerId, req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Approve(ctx, pId, role); err != nil {
		return nil, s.toStatus("error approving application", err)
	}

	return &elevation.ApproveResponse{}, nil
}

func (s *elevationService) Reject(ctx context.Context, req *elevation.RejectRequest) (*elevation.RejectResponse, error) {
	pId, role, err := parseTarget(req.PlayerId, req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Reject(ctx, pId, role, req.Reason); err != nil {
		return nil, s.toStatus("error rejecting application", err)
	}

	return &elevation.RejectResponse{}, nil
}

func (s *elevationService) ListPending(ctx context.Context, req *elevation.ListPendingRequest) (*elevation.ListPendingResponse, error) {
	role, err := parseElevatedRole(req.Role)
	if err != nil {
		return nil, err
	}

	records, err := s.engine.ListPending(ctx, role)
	if err != nil {
		return nil, s.toStatus("error listing pending applications", err)
	}

	applications := make([]*elevation.Application, len(records))
	for i, r := range records {
		applications[i] = &elevation.Application{
			PlayerId:  r.UserId.String(),
			Role:      r.Role.String(),
			CreatedAt: timestamppb.New(r.CreatedAt),
		}
	}

	return &elevation.ListPendingResponse{Applications: applications}, nil
}

func (s *elevationService) Evaluate(ctx context.Context, req *elevation.EvaluateRequest) (*elevation.Decision, error) {
	requirement, err := parseRequirement(req.RequireAuth, req.RequiredRole)
	if err != nil {
		return nil, err
	}

	return toDecision(s.resolver.ResolveSession(ctx, sessionFromContext(ctx), requirement)), nil
}

// WatchDecision keeps a gate decision current for the lifetime of the stream. Each request
// received restarts the evaluation for its token and requirement; each decision change is
// sent back. Only the latest decision is kept when the client reads slower than it changes.
func (s *elevationService) WatchDecision(stream elevation.ElevationService_WatchDecisionServer) error {
	ctx := stream.Context()

	decisions := make(chan gate.Decision, 1)
	tracker := gate.NewTracker(s.logger, s.provider, s.lookup, func(d gate.Decision) {
		// publish calls are serialised by the tracker, so after the drain there is room
		select {
		case decisions <- d:
		default:
			select {
			case <-decisions:
			default:
			}
			decisions <- d
		}
	})
	defer tracker.Close()

	requests := make(chan *elevation.WatchDecisionRequest)
	recvErr := make(chan error, 1)
	go func() {
		for {
			req, err := stream.Recv()
			if err != nil {
				recvErr <- err
				return
			}
			select {
			case requests <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case req := <-requests:
			requirement, err := parseRequirement(req.RequireAuth, req.RequiredRole)
			if err != nil {
				return err
			}
			token := req.Token
			if token == "" {
				token = tokenFromMetadata(ctx)
			}
			tracker.Reset(ctx, token, requirement)

		case d := <-decisions:
			if err := stream.Send(toDecision(d)); err != nil {
				return err
			}

		case err := <-recvErr:
			if errors.Is(err, io.EOF) {
				// no further requirement changes, keep streaming the current one
				recvErr = nil
				continue
			}
			return err

		case <-ctx.Done():
			return nil
		}
	}
}

func (s *elevationService) GetApprovalNotice(ctx context.Context, req *elevation.GetApprovalNoticeRequest) (*elevation.GetApprovalNoticeResponse, error) {
	session := sessionFromContext(ctx)
	if session == nil {
		return nil, status.Error(codes.Unauthenticated, "sign in required")
	}

	role, err := parseElevatedRole(req.Role)
	if err != nil {
		return nil, err
	}

	return &elevation.GetApprovalNoticeResponse{
		Pending: s.banner.Pending(ctx, session.UserId, role),
	}, nil
}

func (s *elevationService) toStatus(msg string, err error) error {
	switch {
	case errors.Is(err, approval.ErrEmptyReason):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, approval.ErrNotElevatedRole):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, approval.ErrApplicationNotFound):
		return status.Error(codes.NotFound, "application not found")
	case errors.Is(err, approval.ErrAlreadyApproved):
		return status.Error(codes.FailedPrecondition, "application already approved")
	}

	s.logger.Errorw(msg, "error", err)
	return status.Error(codes.Internal, msg)
}

func toDecision(d gate.Decision) *elevation.Decision {
	outcome := elevation.Outcome_PENDING
	switch d.Outcome {
	case gate.Allow:
		outcome = elevation.Outcome_ALLOW
	case gate.Redirect:
		outcome = elevation.Outcome_REDIRECT
	}

	return &elevation.Decision{
		Outcome: outcome,
		Target:  string(d.Target),
	}
}

func parseRequirement(requireAuth bool, roleName string) (gate.Requirement, error) {
	requirement := gate.Requirement{RequireAuth: requireAuth}
	if roleName == "" {
		return requirement, nil
	}

	role, err := model.ParseRole(roleName)
	if err != nil {
		return gate.Requirement{}, status.Error(codes.InvalidArgument, err.Error())
	}
	requirement.RequiredRole = role

	return requirement, nil
}

func parseTarget(playerId string, roleName string) (uuid.UUID, model.Role, error) {
	pId, err := uuid.Parse(playerId)
	if err != nil {
		return uuid.Nil, "", status.Error(codes.InvalidArgument, fmt.Sprintf("invalid player id %s", playerId))
	}

	role, err := parseElevatedRole(roleName)
	if err != nil {
		return uuid.Nil, "", err
	}

	return pId, role, nil
}

func parseElevatedRole(name string) (model.Role, error) {
	role, err := model.ParseRole(name)
	if err != nil {
		return "", status.Error(codes.InvalidArgument, err.Error())
	}
	if !role.IsElevated() {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("role %s has no application workflow", role))
	}
	return role, nil
}
