package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/na2na-p/atelier/internal/config"
	"github.com/na2na-p/atelier/internal/handler"
	"github.com/na2na-p/atelier/internal/handler/dto"
	appMiddleware "github.com/na2na-p/atelier/internal/handler/middleware"
	"github.com/na2na-p/atelier/internal/infrastructure"
	"github.com/na2na-p/atelier/internal/infrastructure/auth"
	"github.com/na2na-p/atelier/internal/infrastructure/httpfetch"
	"github.com/na2na-p/atelier/internal/infrastructure/imaging"
	"github.com/na2na-p/atelier/internal/infrastructure/logging"
	"github.com/na2na-p/atelier/internal/infrastructure/metrics"
	"github.com/na2na-p/atelier/internal/infrastructure/postgres"
	"github.com/na2na-p/atelier/internal/infrastructure/redis"
	"github.com/na2na-p/atelier/internal/infrastructure/s3"
	"github.com/na2na-p/atelier/internal/usecase"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 5 * time.Minute
	shutdownTimeout = 10 * time.Second
	idleTimeout     = 120 * time.Second
	uploadBodyLimit = "20M"
)

// -ldflags "-X main.version=..." で上書きする
var version = "dev"

func main() {
	slog.SetDefault(logging.NewLogger(os.Stdout, slog.LevelInfo))

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.NewLogger(os.Stdout, logging.ParseLevel(cfg.Log.Level)))

	ctx := context.Background()

	pool, err := postgres.NewPostgresConnection(ctx, postgres.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	slog.Info("PostgreSQL connection established", "database", cfg.Database.String())

	redisConn, err := redis.NewRedisConnection(ctx, redis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisConn.Close() }()
	redisClient := redis.NewRedisClient(redisConn)
	slog.Info("Redis connection established", "redis", cfg.Redis.String())

	s3Config := s3.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.BucketName,
		PublicBaseURL:   cfg.S3.PublicBaseURL,
		PresignTTL:      cfg.S3.PresignTTL,
	}
	s3Conn, err := s3.NewS3Connection(s3Config)
	if err != nil {
		return err
	}
	s3Client := s3.NewS3Client(s3Conn, s3Config)
	slog.Info("S3 connection established", "s3", cfg.S3.String())

	appMetrics := metrics.New(nil)
	if err := appMetrics.RegisterRuntimeCollectors(); err != nil {
		return err
	}

	verifier, err := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		return err
	}

	cacheSettingsRepo := postgres.NewCacheSettingsRepository(pool)
	userRoleRepo := postgres.NewUserRoleRepository(pool)
	resourceIdentifierRepo := infrastructure.NewCachingResourceIdentifierRepository(
		postgres.NewResourceIdentifierRepository(pool),
		infrastructure.NewSlugIDCache(),
		redisClient,
		redis.NewCacheKeyGenerator(),
		redis.NewCacheConfig(redis.SlugIDTTL),
		appMetrics,
	)

	fetcher := httpfetch.NewFetcher(
		httpfetch.NewClient(cfg.ImageProxy.AllowPrivateNetworks),
		httpfetch.FetcherConfig{UserAgent: cfg.ImageProxy.UserAgent},
		httpfetch.NewHostRateLimiter(cfg.ImageProxy.HostInterval),
		appMetrics.UpstreamDuration(),
	)

	cacheSettingsUC := usecase.NewCacheSettingsUseCase(cacheSettingsRepo, usecase.NewTTLMemo(usecase.DefaultTTLMemoWindow), appMetrics)
	imageProxyUC := usecase.NewImageProxyUseCase(fetcher, imaging.NewProcessor(cfg.ImageProxy.MaxPixels), cacheSettingsUC, cfg.ImageProxy.MaxBytes)
	imageURLUC := usecase.NewImageURLUseCase(s3Client, resourceIdentifierRepo, resourceIdentifierRepo)
	imageUploadUC := usecase.NewImageUploadUseCase(s3Client)
	authUC := usecase.NewAuthUseCase(verifier, userRoleRepo)

	readinessUC := usecase.NewReadinessUseCase(
		usecase.DefaultHealthCheckTimeout,
		usecase.NewHealthCheck("postgres", pool.Ping),
		usecase.NewHealthCheck("redis", redisClient.Ping),
		usecase.NewHealthCheck("s3", s3Client.HeadBucket),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = appMiddleware.CustomHTTPErrorHandler
	e.Validator = dto.NewRequestValidator()

	ipExtractor, err := buildIPExtractor(cfg.Server.TrustedProxyCIDRs)
	if err != nil {
		return err
	}
	e.IPExtractor = ipExtractor

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", appMiddleware.MaskSensitiveParams(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	healthHandler := handler.NewHealthHandler(version)
	e.GET("/healthz", healthHandler)
	e.HEAD("/healthz", healthHandler)
	e.GET("/readyz", handler.NewReadyzHandler(readinessUC).Handle)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(appMetrics.Registry(), promhttp.HandlerOpts{})))

	imageProxyHandler := handler.NewImageProxyHandler(imageProxyUC, appMetrics, cfg.Server.UpstreamTimeout)
	imageURLHandler := handler.NewImageURLHandler(imageURLUC)
	cacheSettingsHandler := handler.NewCacheSettingsHandler(cacheSettingsUC)
	imageUploadHandler := handler.NewImageUploadHandler(imageUploadUC, cfg.Server.UploadTimeout)

	api := e.Group("/api")
	api.GET("/image-proxy", imageProxyHandler.Handle)
	api.GET("/images/url", imageURLHandler.ByID)
	api.GET("/images/legacy/:resourceType/:slug", imageURLHandler.Legacy)

	admin := api.Group("/admin", appMiddleware.AdminAuth(authUC))
	admin.GET("/cache-settings", cacheSettingsHandler.Get)
	admin.POST("/cache-settings", cacheSettingsHandler.Save)
	admin.POST("/cache-settings/clear", cacheSettingsHandler.Clear)
	admin.POST("/images/slug-cache/clear", imageURLHandler.ClearSlugCache)
	admin.POST("/images/:resourceType/:id", imageUploadHandler.Handle, middleware.BodyLimit(uploadBodyLimit))

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", addr)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

// buildIPExtractor は設定に基づいてIPエクストラクタを構築する。
// 信頼するプロキシのCIDRが指定されている場合、そのCIDRからのX-Forwarded-Forヘッダーのみを信頼する。
// 指定されていない場合、IPスプーフィング防止のため接続元IPを直接使用する。
func buildIPExtractor(trustedProxyCIDRs []string) (echo.IPExtractor, error) {
	if len(trustedProxyCIDRs) == 0 {
		slog.Info("trusted proxy CIDRs not configured, using direct IP extraction")
		return echo.ExtractIPDirect(), nil
	}

	trustOptions := make([]echo.TrustOption, 0, len(trustedProxyCIDRs))
	for _, cidr := range trustedProxyCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy CIDR %q: %w", cidr, err)
		}
		trustOptions = append(trustOptions, echo.TrustIPRange(ipNet))
	}

	slog.Info("trusted proxy CIDRs configured", "cidrs", trustedProxyCIDRs)
	return echo.ExtractIPFromXFFHeader(trustOptions...), nil
}
