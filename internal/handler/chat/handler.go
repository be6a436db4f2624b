package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatService "github.com/hliu742/minichat/internal/service/chat"
	"github.com/hliu742/minichat/pkg/utils"
)

// userIDHeader carries the caller's identity. It is an opaque, unauthenticated
// lookup key; absent headers map to a shared default user.
const (
	userIDHeader  = "User-ID"
	defaultUserID = "default_user"
)

// Handler exposes the chat exchange and history endpoints.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat HTTP handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the chat routes. Preflight OPTIONS requests are
// answered by the CORS middleware before they reach these handlers.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/history", h.handleHistory)
	r.Delete("/chat/history", h.handleReset)
}

// handleChat accepts {"messages":[{"role","content"},...]} and replies with
// the next assistant turn. Only the content of the LAST element is used as
// new input; history is server-side, so earlier elements the client sends are
// ignored.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var message string
	if len(payload.Messages) > 0 {
		message = payload.Messages[len(payload.Messages)-1].Content
	}

	reply, err := h.chatSvc.Exchange(r.Context(), userID(r), message)
	if err != nil {
		if errors.Is(err, chatService.ErrEmptyMessage) {
			utils.RespondError(w, http.StatusBadRequest, "Please provide a message")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// handleHistory returns the stored conversation for the caller.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	turns := h.chatSvc.Transcript(r.Context(), userID(r))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"history": turns})
}

// handleReset clears the stored conversation for the caller.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.chatSvc.Reset(r.Context(), userID(r))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func userID(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id
	}
	return defaultUserID
}
