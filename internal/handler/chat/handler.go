package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gracemobile/backend/internal/classify"
	"github.com/gracemobile/backend/internal/model/chat"
	chatService "github.com/gracemobile/backend/internal/service/chat"
	"github.com/gracemobile/backend/pkg/utils"
)

// Handler exposes the conversation endpoints over HTTP.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the chat handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/message", h.handleSubmitMessage)
	r.Get("/chat/sessions", h.handleListSessions)
	r.Get("/chat/sessions/{sessionID}", h.handleGetSession)
}

// exchangeResponse is the wire envelope for one submitted exchange.
type exchangeResponse struct {
	SessionID   string            `json:"sessionId"`
	UserMessage chat.Message      `json:"userMessage"`
	BotMessage  chat.Message      `json:"botMessage"`
	Response    classify.Response `json:"response"`
}

// sessionResponse is a session together with its full ordered transcript.
type sessionResponse struct {
	chat.Session
	Messages []chat.Message `json:"messages"`
}

func (h *Handler) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content   string `json:"content"`
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.chatSvc.Exchange(r.Context(), payload.SessionID, payload.Content)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidInput):
			utils.RespondError(w, http.StatusBadRequest, "content is required")
		case errors.Is(err, chat.ErrSessionNotFound):
			utils.RespondError(w, http.StatusNotFound, "chat session not found")
		default:
			log.Printf("[chat] exchange failed: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, exchangeResponse{
		SessionID:   result.Session.ID,
		UserMessage: result.UserMessage,
		BotMessage:  result.BotMessage,
		Response:    result.Response,
	})
}

func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.chatSvc.ListSessions(r.Context())
	if err != nil {
		log.Printf("[chat] list sessions failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch chat sessions")
		return
	}

	utils.RespondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, messages, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "chat session not found")
			return
		}
		log.Printf("[chat] get session failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch chat session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, sessionResponse{Session: session, Messages: messages})
}
