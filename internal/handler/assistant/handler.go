package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	conversationModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/conversation"
	assistantService "github.com/sudarshan-lab/MyInteractivePortfolio/internal/service/assistant"
	conversationService "github.com/sudarshan-lab/MyInteractivePortfolio/internal/service/conversation"
	"github.com/sudarshan-lab/MyInteractivePortfolio/pkg/utils"
)

// Handler exposes the chat assistant relay: conversation bootstrap plus
// streaming replies over SSE and WebSocket.
type Handler struct {
	assistant     *assistantService.Service
	conversations *conversationService.Service
}

// New creates the assistant handler. assistant may be nil when the
// upstream model is not configured; streaming endpoints then answer 503.
func New(assistant *assistantService.Service, conversations *conversationService.Service) *Handler {
	return &Handler{assistant: assistant, conversations: conversations}
}

// RegisterRoutes wires the assistant routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/assistant/conversations", h.handleCreateConversation)
	r.Get("/assistant/stream/{conversationID}", h.handleStream)
	r.Get("/assistant/ws/{conversationID}", h.handleWebSocket)
}

// StreamEvent is one frame of a streamed reply, shared by both transports.
type StreamEvent struct {
	Event          string `json:"event"`
	Content        string `json:"content,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	Finished       bool   `json:"finished,omitempty"`
	Error          string `json:"error,omitempty"`
}

func (h *Handler) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.conversations.Create(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create conversation")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, conv)
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	if h.assistant == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "assistant unavailable")
		return
	}

	conversationID := chi.URLParam(r, "conversationID")
	userMessage := r.URL.Query().Get("message")
	if userMessage == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	history, err := h.loadHistory(r.Context(), conversationID, userMessage)
	if err != nil {
		status, message := historyFailure(err)
		utils.RespondError(w, status, message)
		return
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEChunk(w, flusher, StreamEvent{
		Event:          "start",
		ConversationID: conversationID,
	})

	reply := h.assistant.Reply(r.Context(), history, userMessage, func(chunk string) {
		utils.SendSSEChunk(w, flusher, StreamEvent{
			Event:          "chunk",
			ConversationID: conversationID,
			Content:        chunk,
		})
	})

	h.saveAssistantTurn(r.Context(), conversationID, reply)

	utils.SendSSEChunk(w, flusher, StreamEvent{
		Event:          "end",
		ConversationID: conversationID,
		Finished:       true,
	})

	log.Printf("[assistant] completed reply for conversation=%s, length=%d", conversationID, len(reply))
}

// historyFailure maps a loadHistory error to a status code and a fixed
// client-facing message. Unknown conversations are the caller's mistake;
// anything else stays server-side.
func historyFailure(err error) (int, string) {
	if errors.Is(err, conversationService.ErrConversationNotFound) {
		return http.StatusNotFound, "conversation not found"
	}
	return http.StatusInternalServerError, "failed to load conversation"
}

// loadHistory resolves the conversation, records the user turn, and
// returns the transcript that preceded it.
func (h *Handler) loadHistory(ctx context.Context, conversationID, userMessage string) ([]conversationModel.Turn, error) {
	if _, err := h.conversations.Get(ctx, conversationID); err != nil {
		return nil, fmt.Errorf("conversation not found: %w", err)
	}

	history, err := h.conversations.Transcript(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	userTurn := conversationModel.Turn{
		ConversationID: conversationID,
		Role:           conversationModel.RoleUser,
		Content:        userMessage,
	}
	if err := h.conversations.Append(ctx, userTurn); err != nil {
		log.Printf("[assistant] failed to save user turn: %v", err)
	}

	return history, nil
}

func (h *Handler) saveAssistantTurn(ctx context.Context, conversationID, content string) {
	turn := conversationModel.Turn{
		ConversationID: conversationID,
		Role:           conversationModel.RoleAssistant,
		Content:        content,
	}
	if err := h.conversations.Append(ctx, turn); err != nil {
		log.Printf("[assistant] failed to save assistant turn: %v", err)
	}
}
