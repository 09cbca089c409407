package app

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"elevation-service/internal/approval"
	"elevation-service/internal/config"
	"elevation-service/internal/gate"
	"elevation-service/internal/httpserver"
	"elevation-service/internal/identity"
	"elevation-service/internal/kafka/notifier"
	"elevation-service/internal/reconcile"
	"elevation-service/internal/repository"
	"elevation-service/internal/service"
	"go.uber.org/zap"
)

func Run(cfg *config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	delayedCtx, repoCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("jwt-secret must be set")
	}

	repo, err := repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create repository", "error", err)
	}

	notif := notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)

	provider := identity.NewJWTProvider([]byte(cfg.Auth.JWTSecret))
	engine := approval.NewEngine(logger, repo, notif)
	resolver := gate.NewResolver(logger, provider, repo)
	banner := gate.NewBanner(logger, repo)

	if cfg.ReconcileInterval > 0 {
		if err := reconcile.NewGrantReconciler(logger, repo).Start(ctx, wg, cfg.ReconcileInterval); err != nil {
			logger.Fatalw("failed to start role grant reconciler", "error", err)
		}
	}

	service.RunServices(ctx, logger, wg, cfg, engine, provider, repo, resolver, banner)
	httpserver.Run(ctx, logger, wg, cfg.HTTPPort, httpserver.NewRouter(logger, provider, resolver, banner))

	<-ctx.Done()
	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	repoCancel()
	delayedWg.Wait()
}
