package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hliu742/minichat/internal/handler/chat"
	middlewarePkg "github.com/hliu742/minichat/internal/middleware"
	chatService "github.com/hliu742/minichat/internal/service/chat"
)

// NewRouter wires HTTP routes to the chat service.
func NewRouter(chatSvc *chatService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/", handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	chatHandler := chat.New(chatSvc)
	chatHandler.RegisterRoutes(r)

	return r
}
