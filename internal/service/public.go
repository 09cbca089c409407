package service

import (
	"context"
	"fmt"
	"net"
	"sync"

	"elevation-service/gen/go/grpc/elevation"
	"elevation-service/internal/approval"
	"elevation-service/internal/config"
	"elevation-service/internal/gate"
	"elevation-service/internal/identity"
	"elevation-service/internal/utils/grpczap"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func RunServices(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg *config.Config,
	engine *approval.Engine, provider identity.Provider, lookup gate.Lookup, resolver *gate.Resolver, banner *gate.Banner) {

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		logger.Fatalw("failed to listen", "error", err)
	}

	opts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	}
	interceptorLogger := grpczap.InterceptorLogger(logger.Desugar())

	auth := newAuthorizer(logger, provider, resolver)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(interceptorLogger, opts...),
			auth.UnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(interceptorLogger, opts...),
		),
	)

	if cfg.Development {
		reflection.Register(s)
	}

	elevation.RegisterElevationServiceServer(s, newElevationService(logger, engine, provider, lookup, resolver, banner))
	logger.Infow("listening for gRPC requests", "port", cfg.GRPCPort)

	go func() {
		if err := s.Serve(lis); err != nil {
			logger.Fatalw("failed to serve", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.GracefulStop()
	}()
}
