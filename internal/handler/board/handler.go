package board

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
	"github.com/sudarshan-lab/MyInteractivePortfolio/pkg/utils"
)

// Handler exposes the message board over HTTP.
type Handler struct {
	store boardModel.Store
}

// New creates the board handler.
func New(store boardModel.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes wires the board routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/messages", h.handleList)
	r.Post("/messages", h.handleCreate)
}

// handleList returns every message, private ones included, ordered by
// ascending timestamp. Privacy is the client's visibility filter alone.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[board] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "message store unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusOK, messages)
}

// handleCreate validates and persists one message.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req boardModel.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.store.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, boardModel.ErrMissingField) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[board] create failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "message store unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, message)
}
