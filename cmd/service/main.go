package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/echo-service/internal/client/identity"
	"github.com/s21platform/echo-service/internal/config"
	api "github.com/s21platform/echo-service/internal/generated"
	"github.com/s21platform/echo-service/internal/infra"
	"github.com/s21platform/echo-service/internal/pkg/jwt"
	"github.com/s21platform/echo-service/internal/pkg/tx"
	"github.com/s21platform/echo-service/internal/pkg/validator"
	db "github.com/s21platform/echo-service/internal/repository/postgres"
	"github.com/s21platform/echo-service/internal/repository/redis"
	"github.com/s21platform/echo-service/internal/rest"
	"github.com/s21platform/echo-service/internal/service/matcher"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	redisRepo := redis.New(cfg)
	defer redisRepo.Close()

	identityClient := identity.New(cfg)
	defer identityClient.Close()

	metrics, metricsErr := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if metricsErr != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", metricsErr))
	}

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Token.Secret, cfg.Token.Algorithm, cfg.Token.TTL)
	echoMatcher := matcher.New(dbRepo)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(cfg.Service.Name, grpc_health_v1.HealthCheckResponse_SERVING)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.LoggerGRPC(logger),
		),
	)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	authLimiter := infra.NewRateLimiter(cfg.RateLimit.AuthEvery, cfg.RateLimit.AuthBurst,
		"/api/auth/login",
		"/api/auth/register",
		"/api/auth/forgot-password",
	)

	handler := rest.New(dbRepo, identityClient, redisRepo, echoMatcher, vldtr, jwtGenerator, cfg.Service)
	router := chi.NewRouter()

	router.Use(infra.ProxyHeaders(cfg.Service.TrustProxy))
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: cfg.CORS.CredentialsAllowed(),
		MaxAge:           300,
	}))
	if cfg.Platform.IsProduction() {
		router.Use(infra.SecurityHeaders)
	}
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	if metricsErr == nil {
		router.Use(func(next http.Handler) http.Handler {
			return infra.MetricsHTTP(next, metrics)
		})
	}
	router.Use(authLimiter.Middleware)
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: router,
		Middlewares: []api.MiddlewareFunc{
			infra.AuthInterceptorHTTP(jwtGenerator, redisRepo),
		},
		ErrorHandlerFunc: handler.ParamError,
	})
	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		return authLimiter.Run(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()

		healthServer.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn(fmt.Sprintf("failed to shut down HTTP server: %v", err))
		}
		grpcServer.GracefulStop()
		_ = listener.Close()

		return nil
	})

	logger.Info(fmt.Sprintf("%s %s listening on :%s", cfg.Service.Name, cfg.Service.Version, cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
