package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/typefight/typefighter-go/internal/dependencies/clock"
	"github.com/typefight/typefighter-go/internal/dependencies/random"
	"github.com/typefight/typefighter-go/internal/room"
	"github.com/typefight/typefighter-go/internal/services/auth"
	"github.com/typefight/typefighter-go/internal/services/results"
	"github.com/typefight/typefighter-go/internal/services/words"
	"github.com/typefight/typefighter-go/internal/storage"
	"github.com/typefight/typefighter-go/internal/storage/memory"
	redisstorage "github.com/typefight/typefighter-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Auth backend constants
const (
	AuthBackendNone = "none"
	AuthBackendHTTP = "http"
	AuthBackendJWT  = "jwt"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordService    *words.Service
	AuthService    *auth.Service
	ResultsService *results.Service
	RoomManager    *room.Manager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthBackend selects token verification ("none", "http", or "jwt")
	// If empty, defaults to "none": claimed identities are accepted unverified
	AuthBackend string
	// AuthHTTPConfig holds identity provider settings (required if AuthBackend is "http")
	AuthHTTPConfig *auth.HTTPConfig
	// JWTSecret is the HMAC signing secret (required if AuthBackend is "jwt")
	JWTSecret []byte
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var verifier auth.Verifier
	switch cfg.AuthBackend {
	case "", AuthBackendNone:
		// Rooms treat a nil verifier as "accept claims unverified"
	case AuthBackendHTTP:
		if cfg.AuthHTTPConfig == nil {
			return nil, errors.New("AuthHTTPConfig required when AuthBackend is http")
		}
		verifier = auth.NewHTTPVerifier(*cfg.AuthHTTPConfig)
	case AuthBackendJWT:
		if len(cfg.JWTSecret) == 0 {
			return nil, errors.New("JWTSecret required when AuthBackend is jwt")
		}
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	default:
		return nil, errors.New("invalid AuthBackend: must be 'none', 'http', or 'jwt'")
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, verifier, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, verifier auth.Verifier, logger *slog.Logger) *App {
	wordService := words.New(store, rnd, logger)
	resultsService := results.New(store, clk, rnd, logger)

	var authService *auth.Service
	if verifier != nil {
		authService = auth.New(verifier, logger)
	}

	deps := room.Dependencies{
		Clock:   clk,
		Random:  rnd,
		Prompts: wordService,
		Results: resultsService,
	}
	if authService != nil {
		deps.Auth = authService
	}
	manager := room.NewManager(deps, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		WordService:    wordService,
		AuthService:    authService,
		ResultsService: resultsService,
		RoomManager:    manager,
	}
}
