package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/makoye224/cwru-courses-backend/handlers"
	"github.com/makoye224/cwru-courses-backend/internal/catalog/handler"
	"github.com/makoye224/cwru-courses-backend/internal/catalog/service"
	"github.com/makoye224/cwru-courses-backend/internal/config"
	"github.com/makoye224/cwru-courses-backend/internal/oidc"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
	"github.com/makoye224/cwru-courses-backend/pkg/metrics"
	"github.com/makoye224/cwru-courses-backend/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL may be debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetOutput(os.Stdout, cfg.Log.Pretty)
	logger.Infof("config loaded: store=%s keycloak=%v redis=%v", cfg.Catalog.Store, cfg.Keycloak.URL != "", cfg.Redis.Host != "")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := service.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open catalog store: %v", err)
	}
	defer func() { _ = backend.Close(context.Background()) }()

	r := gin.New()

	// Permissive CORS for browser clients; tighten per deployment.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})
	r.Use(gin.Logger(), gin.Recovery(), middleware.MetricsMiddleware())

	checks := map[string]handlers.Check{"store": backend.Ping}

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			logger.Infof("connected to Redis %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
			logger.Infof("rate limiter: redis, %d req per %s", cfg.RateLimit.Burst, win)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter: in-process, %.1f rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	verifier, err := oidc.Select(ctx, cfg.Keycloak.Issuer(), cfg.Keycloak.ClientID, cfg.Keycloak.AllowInsecureTokens)
	if err != nil {
		// an unreachable issuer must not leave write routes open
		logger.Fatalf("failed to initialize OIDC verifier: %v", err)
	}
	switch {
	case verifier == nil:
		logger.Warn("no OIDC issuer configured: write routes are unauthenticated")
	case cfg.Keycloak.Issuer() == "":
		logger.Warn("enabling insecure OIDC verifier (integration mode)")
	}

	handlers.RegisterHealth(r, startTime, checks)
	handlers.RegisterSwagger(r)
	handler.New(backend.Service).Register(r, middleware.AuthMiddleware(verifier))

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("course catalog listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
