package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/typefight/typefighter-go/internal/api/apierr"
	"github.com/typefight/typefighter-go/internal/api/response"
	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/services/results"
)

// ResultsHandler serves read-only match and streak lookups
type ResultsHandler struct {
	results *results.Service
}

// NewResultsHandler creates a results handler
func NewResultsHandler(results *results.Service) *ResultsHandler {
	return &ResultsHandler{results: results}
}

// GetMatch handles GET /matches/{id}
func (h *ResultsHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["id"])
	if id == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("match id is required"))
		return
	}

	match, err := h.results.GetMatch(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(match))
}

// GetStreak handles GET /streaks/{user_id}
func (h *ResultsHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	if userID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("user id is required"))
		return
	}

	streak, err := h.results.GetStreak(r.Context(), userID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StreakFromModel(streak))
}
