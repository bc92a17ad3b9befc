package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"caresam-backend/internal/auth"
	"caresam-backend/internal/database"
	"caresam-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

const (
	loginOk          = "로그인 성공"
	loginFailed      = "로그인 실패"
	diaryAddedNotice = "일기장이 추가되었습니다."
)

type BackendService struct {
	db *gorm.DB
}

func NewBackendService(db *gorm.DB) *BackendService {
	return &BackendService{db: db}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/", RestHandler(s.Root))
	r.Get("/health", RestHandler(s.Health))

	r.Post("/userinfo", RestHandler(s.UserInfo))
	r.Get("/userinfo", RestHandler(s.UserInfoQuery))
	r.Post("/userlist", RestHandler(s.UserList))
	r.Post("/del_chat_list", RestHandler(s.DeleteChatList))

	r.Post("/thank/diary", RestHandler(s.AddDiary))
	r.Post("/login", RestHandler(s.Login))
}

func (s *BackendService) Root(r *http.Request) (any, error) {
	return api.HealthResponse{Message: "HoMemeTown Dr. CareSam API is running", Status: "healthy"}, nil
}

func (s *BackendService) Health(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, s.db); err != nil {
		slog.Error("database health check failed", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "database unavailable")
	}
	return nil, nil
}

func (s *BackendService) userInfo(ctx context.Context, email string) (any, error) {
	if err := requireField("user_email", email); err != nil {
		return nil, err
	}

	stats := database.GetDiaryStats(ctx, s.db, email)
	return api.DataResponse[api.UserInfo]{
		Success: true,
		Data:    api.UserInfo{DiaryCount: stats.Count, DiaryToken: stats.Token},
	}, nil
}

func (s *BackendService) UserInfo(r *http.Request) (any, error) {
	params, err := ParseRequest[api.UserEmailRequest](r)
	if err != nil {
		return nil, err
	}
	return s.userInfo(r.Context(), params.UserEmail)
}

func (s *BackendService) UserInfoQuery(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.UserEmailRequest](r)
	if err != nil {
		return nil, err
	}
	return s.userInfo(r.Context(), params.UserEmail)
}

func (s *BackendService) UserList(r *http.Request) (any, error) {
	summaries, err := database.ListUserSummaries(r.Context(), s.db)
	if err != nil {
		slog.Error("error listing user summaries", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to fetch user list")
	}

	return api.DataResponse[[]api.UserSummary]{Success: true, Data: convertUserSummaries(summaries)}, nil
}

func (s *BackendService) DeleteChatList(r *http.Request) (any, error) {
	params, err := ParseRequest[api.UserEmailRequest](r)
	if err != nil {
		return nil, err
	}

	if err := requireField("user_email", params.UserEmail); err != nil {
		return nil, err
	}

	if _, err := database.DeleteUserData(r.Context(), s.db, params.UserEmail); err != nil {
		slog.Error("error deleting chat history", "user_email", params.UserEmail, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to delete chat history")
	}

	return api.MessageResponse{Success: true, Message: "Chat history deleted successfully"}, nil
}

func (s *BackendService) AddDiary(r *http.Request) (any, error) {
	params, err := ParseRequest[api.DiaryRequest](r)
	if err != nil {
		return nil, err
	}

	for _, field := range []struct{ name, value string }{
		{"user_name", params.UserName},
		{"user_email", params.UserEmail},
		{"chat_uuid", params.ChatUUID},
		{"diary_text", params.DiaryText},
	} {
		if err := requireField(field.name, field.value); err != nil {
			return nil, err
		}
	}

	_, stats, err := database.CreateDiaryEntry(r.Context(), s.db, database.ThankDiary{
		UserName:  params.UserName,
		UserEmail: params.UserEmail,
		ChatUUID:  params.ChatUUID,
		DiaryText: params.DiaryText,
	})
	if err != nil {
		slog.Error("error saving diary entry", "user_email", params.UserEmail, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Failed to save diary")
	}

	return api.DiaryResponse{
		Result:     "ok",
		Message:    diaryAddedNotice,
		DiaryCount: stats.Count,
		DiaryToken: stats.Token,
	}, nil
}

func (s *BackendService) Login(r *http.Request) (any, error) {
	params, err := ParseRequest[api.LoginRequest](r)
	if err != nil {
		return nil, err
	}

	if params.Email == "" || params.Password == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "Email and password are required")
	}

	user, err := database.GetUserByEmail(r.Context(), s.db, params.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return api.LoginResponse{Result: "error", Message: loginFailed}, nil
		}
		slog.Error("error looking up user for login", "email", params.Email, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "Login failed")
	}

	if !auth.CheckPassword(user.PasswordHash, params.Password) {
		return api.LoginResponse{Result: "error", Message: loginFailed}, nil
	}

	return api.LoginResponse{
		Result:  "ok",
		Message: loginOk,
		Detail:  &api.LoginDetail{Username: user.Username, Email: user.Email},
	}, nil
}
