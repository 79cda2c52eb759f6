package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	assistantHandler "github.com/sudarshan-lab/MyInteractivePortfolio/internal/handler/assistant"
	boardHandler "github.com/sudarshan-lab/MyInteractivePortfolio/internal/handler/board"
	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
	assistantService "github.com/sudarshan-lab/MyInteractivePortfolio/internal/service/assistant"
	conversationService "github.com/sudarshan-lab/MyInteractivePortfolio/internal/service/conversation"
	"github.com/sudarshan-lab/MyInteractivePortfolio/pkg/utils"
)

// NewRouter wires HTTP routes to core services. assistant may be nil when
// the upstream model is not configured.
func NewRouter(store boardModel.Store, conversations *conversationService.Service, assistant *assistantService.Service, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			utils.RespondError(w, http.StatusServiceUnavailable, "message store unreachable")
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		boardHandler.New(store).RegisterRoutes(api)
		assistantHandler.New(assistant, conversations).RegisterRoutes(api)
	})

	return r
}
