package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/typefight/typefighter-go/internal/api"
	"github.com/typefight/typefighter-go/internal/factory"
	"github.com/typefight/typefighter-go/internal/services/auth"
	redisstorage "github.com/typefight/typefighter-go/internal/storage/redis"
)

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		AuthBackend: os.Getenv("AUTH_BACKEND"),
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	switch cfg.AuthBackend {
	case factory.AuthBackendHTTP:
		httpCfg := auth.DefaultHTTPConfig()
		httpCfg.BaseURL = os.Getenv("AUTH_BASE_URL")
		httpCfg.APIKey = os.Getenv("AUTH_API_KEY")
		if httpCfg.BaseURL == "" {
			logger.Error("AUTH_BASE_URL required when AUTH_BACKEND=http")
			os.Exit(1)
		}
		cfg.AuthHTTPConfig = &httpCfg
	case factory.AuthBackendJWT:
		secret := os.Getenv("AUTH_JWT_SECRET")
		if secret == "" {
			logger.Error("AUTH_JWT_SECRET required when AUTH_BACKEND=jwt")
			os.Exit(1)
		}
		cfg.JWTSecret = []byte(secret)
	}

	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Optionally seed the prompt pool; rooms fall back to the embedded pool
	if path := os.Getenv("PROMPTS_PATH"); path != "" {
		if err := app.WordService.LoadFromFile(context.Background(), path); err != nil {
			logger.Warn("could not load prompt pool", slog.String("error", err.Error()))
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		RoomManager:    app.RoomManager,
		ResultsService: app.ResultsService,
		WordService:    app.WordService,
	})

	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			serverConfig.Port = p
		}
	}
	server := api.NewServer(router, serverConfig, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		app.RoomManager.CloseAll()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
