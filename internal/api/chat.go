package api

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"caresam-backend/internal/chat"
	"caresam-backend/internal/database"
	"caresam-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatService struct {
	db  *gorm.DB
	llm chat.LLM
}

func NewChatService(db *gorm.DB, llm chat.LLM) *ChatService {
	return &ChatService{db: db, llm: llm}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Post("/thank/chat", RestHandler(s.ThankChat))
	r.Post("/cons/chat", RestHandler(s.ConsChat))
}

func (s *ChatService) ThankChat(r *http.Request) (any, error) {
	req, last, err := parseChatRequest(r)
	if err != nil {
		return nil, err
	}

	stats := database.GetDiaryStats(r.Context(), s.db, last.UserEmail)
	messages := chat.GratitudeConversation(req.Lang, stats.Count, stats.Token, convertTurns(req.Messages))

	return s.complete(r, database.ChatModeThanks, last, messages)
}

func (s *ChatService) ConsChat(r *http.Request) (any, error) {
	req, last, err := parseChatRequest(r)
	if err != nil {
		return nil, err
	}

	messages := chat.CounselingConversation(req.Lang, last.UserEmotion, convertTurns(req.Messages))

	return s.complete(r, database.ChatModeCons, last, messages)
}

type completionMeta struct {
	Model string     `json:"model"`
	Usage chat.Usage `json:"usage"`
}

func (s *ChatService) complete(r *http.Request, mode string, last api.ChatMessage, messages []chat.Message) (any, error) {
	completion, err := s.llm.Complete(r.Context(), messages)
	if err != nil {
		slog.Error("chat completion failed", "mode", mode, "kind", chat.ErrorKindOf(err), "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to generate response")
	}

	if last.ChatMode != "" {
		mode = last.ChatMode
	}

	meta, err := json.Marshal(completionMeta{Model: completion.Model, Usage: completion.Usage})
	if err != nil {
		slog.Error("error serializing completion metadata", "error", err)
		meta = nil
	}

	record := database.ChatHistory{
		ChatMode:       mode,
		UserName:       last.UserName,
		UserEmail:      last.UserEmail,
		ChatUUID:       sql.NullString{String: last.UniqeChatId, Valid: last.UniqeChatId != ""},
		UserMsg:        last.Text,
		AIMsg:          completion.Reply,
		UserEmotion:    last.UserEmotion,
		CompletionMeta: datatypes.JSON(meta),
	}
	if err := database.SaveChatHistory(r.Context(), s.db, &record); err != nil {
		slog.Error("error saving chat history", "mode", mode, "user_email", last.UserEmail, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to generate response")
	}

	return api.DataResponse[string]{Success: true, Data: completion.Reply}, nil
}
