package assistant

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the router's CORS layer.
		return true
	},
}

type inboundMessage struct {
	Message string `json:"message"`
}

// handleWebSocket serves the same reply stream as the SSE endpoint over a
// WebSocket. The client sends {"message": ...} frames; each reply arrives
// as a sequence of chunk frames terminated by an end frame.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.assistant == nil {
		http.Error(w, "assistant unavailable", http.StatusServiceUnavailable)
		return
	}

	conversationID := chi.URLParam(r, "conversationID")
	if _, err := h.conversations.Get(r.Context(), conversationID); err != nil {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[assistant] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[assistant] websocket read failed: %v", err)
			}
			return
		}

		if inbound.Message == "" {
			h.writeEvent(conn, StreamEvent{
				Event: "error",
				Error: "message is required",
			})
			continue
		}

		history, err := h.loadHistory(r.Context(), conversationID, inbound.Message)
		if err != nil {
			_, message := historyFailure(err)
			h.writeEvent(conn, StreamEvent{
				Event: "error",
				Error: message,
			})
			continue
		}

		h.writeEvent(conn, StreamEvent{
			Event:          "start",
			ConversationID: conversationID,
		})

		reply := h.assistant.Reply(r.Context(), history, inbound.Message, func(chunk string) {
			h.writeEvent(conn, StreamEvent{
				Event:          "chunk",
				ConversationID: conversationID,
				Content:        chunk,
			})
		})

		h.saveAssistantTurn(r.Context(), conversationID, reply)

		h.writeEvent(conn, StreamEvent{
			Event:          "end",
			ConversationID: conversationID,
			Finished:       true,
		})
	}
}

func (h *Handler) writeEvent(conn *websocket.Conn, event StreamEvent) {
	if err := conn.WriteJSON(event); err != nil {
		log.Printf("[assistant] websocket write failed: %v", err)
	}
}
