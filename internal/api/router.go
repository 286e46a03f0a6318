package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/typefight/typefighter-go/internal/api/handler"
	"github.com/typefight/typefighter-go/internal/api/response"
	"github.com/typefight/typefighter-go/internal/middleware"
	"github.com/typefight/typefighter-go/internal/room"
	"github.com/typefight/typefighter-go/internal/services/results"
	"github.com/typefight/typefighter-go/internal/services/words"
	"github.com/typefight/typefighter-go/internal/transport/ws"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger         *slog.Logger
	RoomManager    *room.Manager
	ResultsService *results.Service
	WordService    *words.Service
}

// NewRouter creates the server's router: the websocket game endpoint plus a
// small read-only REST surface for results
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	wsHandler := ws.NewHandler(cfg.RoomManager, cfg.Logger)
	resultsHandler := handler.NewResultsHandler(cfg.ResultsService)
	wordsHandler := handler.NewWordsHandler(cfg.WordService)

	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	loggingMiddleware := middleware.Logging(cfg.Logger)

	// The websocket route skips the logging wrapper: the wrapped writer
	// would hide the Hijacker the upgrade needs
	game := r.PathPrefix("/ws").Subrouter()
	game.Use(recoveryMiddleware)
	game.HandleFunc("/{code}", wsHandler.HandleGame).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/matches/{id}", resultsHandler.GetMatch).Methods(http.MethodGet)
	api.HandleFunc("/streaks/{user_id}", resultsHandler.GetStreak).Methods(http.MethodGet)
	api.HandleFunc("/prompts", wordsHandler.SeedPrompts).Methods(http.MethodPost)

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status: "ok",
			Rooms:  cfg.RoomManager.RoomCount(),
		})
	}).Methods(http.MethodGet)

	return r
}
