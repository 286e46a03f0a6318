package handler

import (
	"encoding/json"
	"net/http"

	"github.com/typefight/typefighter-go/internal/api/apierr"
	"github.com/typefight/typefighter-go/internal/api/response"
	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/services/words"
)

// WordsHandler manages the server's prompt pool
type WordsHandler struct {
	words *words.Service
}

// NewWordsHandler creates a words handler
func NewWordsHandler(words *words.Service) *WordsHandler {
	return &WordsHandler{words: words}
}

// SeedPrompts handles POST /prompts. The body is a flat JSON array of
// prompts; entries with an unknown difficulty are dropped.
func (h *WordsHandler) SeedPrompts(w http.ResponseWriter, r *http.Request) {
	var pool []model.Word
	if err := json.NewDecoder(r.Body).Decode(&pool); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("body must be a JSON array of prompts"))
		return
	}
	if len(pool) == 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("prompt pool is empty"))
		return
	}

	if err := h.words.LoadPrompts(r.Context(), pool); err != nil {
		apierr.WriteError(w, err)
		return
	}

	loaded := 0
	for _, word := range pool {
		if model.ValidDifficulty(word.Difficulty) {
			loaded++
		}
	}
	response.JSON(w, http.StatusOK, response.SeedResult{Loaded: loaded})
}
