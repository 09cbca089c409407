package service

import (
	"context"

	"elevation-service/gen/go/grpc/elevation"
	"elevation-service/internal/gate"
	"elevation-service/internal/identity"
	"elevation-service/internal/repository/model"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type sessionKey struct{}

var reviewerRequirements = []gate.Requirement{
	{RequireAuth: true, RequiredRole: model.RoleModerator},
	{RequireAuth: true, RequiredRole: model.RoleAdmin},
}

// methodRequirements lists the capabilities a caller needs per method. A caller
// passing any one requirement may call the method. Evaluate and WatchDecision are open
// to everyone.
var methodRequirements = map[string][]gate.Requirement{
	elevation.ElevationService_Apply_FullMethodName:             {{RequireAuth: true}},
	elevation.ElevationService_Approve_FullMethodName:           reviewerRequirements,
	elevation.ElevationService_Reject_FullMethodName:            reviewerRequirements,
	elevation.ElevationService_ListPending_FullMethodName:       reviewerRequirements,
	elevation.ElevationService_GetApprovalNotice_FullMethodName: {{RequireAuth: true}},
}

type authorizer struct {
	logger   *zap.SugaredLogger
	provider identity.Provider
	resolver *gate.Resolver
}

func newAuthorizer(logger *zap.SugaredLogger, provider identity.Provider, resolver *gate.Resolver) *authorizer {
	return &authorizer{logger: logger, provider: provider, resolver: resolver}
}

// UnaryInterceptor authenticates the caller and runs the access gate for the method.
func (a *authorizer) UnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	session, err := a.provider.GetSession(ctx, tokenFromMetadata(ctx))
	if err != nil {
		a.logger.Debugw("rejected session token", "method", info.FullMethod, "error", err)
		session = nil
	}
	ctx = context.WithValue(ctx, sessionKey{}, session)

	if reqs, ok := methodRequirements[info.FullMethod]; ok {
		if d := a.authorize(ctx, session, reqs); d.Outcome != gate.Allow {
			return nil, decisionError(d)
		}
	}

	return handler(ctx, req)
}

func (a *authorizer) authorize(ctx context.Context, session *identity.Session, reqs []gate.Requirement) gate.Decision {
	var first gate.Decision
	for i, req := range reqs {
		d := a.resolver.ResolveSession(ctx, session, req)
		if d.Outcome == gate.Allow {
			return d
		}
		if i == 0 {
			first = d
		}
	}
	return first
}

func decisionError(d gate.Decision) error {
	switch {
	case d.Outcome == gate.Pending:
		return status.Error(codes.Unavailable, "access decision pending")
	case d.Target == gate.TargetLogin:
		return status.Error(codes.Unauthenticated, "sign in required")
	default:
		return status.Errorf(codes.PermissionDenied, "access denied, see %s", d.Target)
	}
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}
	return identity.BearerToken(values[0])
}

// sessionFromContext returns the caller's session, nil when signed out.
func sessionFromContext(ctx context.Context) *identity.Session {
	session, _ := ctx.Value(sessionKey{}).(*identity.Session)
	return session
}
