package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/special-api/internal/config"
	"github.com/KirkDiggler/special-api/internal/engine"
	"github.com/KirkDiggler/special-api/internal/handlers/special/v1alpha1"
	"github.com/KirkDiggler/special-api/internal/i18n"
	"github.com/KirkDiggler/special-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/special-api/internal/pkg/idgen"
	"github.com/KirkDiggler/special-api/internal/redis"
	actorrepo "github.com/KirkDiggler/special-api/internal/repositories/actor"
	"github.com/KirkDiggler/special-api/internal/rules"
)

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the SPECIAL API gRPC server. Configuration comes from SPECIAL_* environment variables.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides SPECIAL_GRPC_PORT")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	actorService, closeRedis, err := buildActorService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRedis()

	actorHandler, err := v1alpha1.NewActorHandler(&v1alpha1.ActorHandlerConfig{
		ActorService: actorService,
	})
	if err != nil {
		return fmt.Errorf("failed to create actor handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterActorServiceServer(srv, actorHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildActorService wires redis, the repository, the event bus and the
// engine into the actor orchestrator. The returned func closes redis.
func buildActorService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (actor.Service, func(), error) {
	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeRedis := func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		closeRedis()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	repo, err := actorrepo.NewRedis(&actorrepo.RedisConfig{Client: redisClient})
	if err != nil {
		closeRedis()
		return nil, nil, fmt.Errorf("failed to create actor repository: %w", err)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		closeRedis()
		return nil, nil, fmt.Errorf("failed to load locale catalogs: %w", err)
	}

	bus := events.NewBus()
	actor.SubscribeAudit(bus, logger)

	eng, err := engine.New(&engine.Config{
		Factory:  rules.DefaultRegistry(),
		EventBus: bus,
		Logger:   logger,
	})
	if err != nil {
		closeRedis()
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	svc, err := actor.NewOrchestrator(&actor.Config{
		ActorRepo:        repo,
		Engine:           eng,
		Bundle:           bundle,
		ActorIDGenerator: idgen.NewUUID("actor"),
		ItemIDGenerator:  idgen.NewUUID("item"),
		DefaultLocale:    cfg.Locale,
	})
	if err != nil {
		closeRedis()
		return nil, nil, fmt.Errorf("failed to create actor orchestrator: %w", err)
	}

	return svc, closeRedis, nil
}

// interceptorLogger adapts slog to the grpc logging interceptor. The
// middleware's levels share slog's numeric values.
func interceptorLogger(logger *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
}
