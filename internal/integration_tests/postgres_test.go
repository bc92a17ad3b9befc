package integrationtests

import (
	"context"
	"net/http"
	"sync"
	"testing"

	backend "caresam-backend/internal/api"
	"caresam-backend/internal/auth"
	"caresam-backend/internal/chat"
	"caresam-backend/internal/database"
	"caresam-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	db, err := database.NewDatabase(database.Options{Driver: "postgres", DSN: setupPostgresContainer(t, ctx), MaxOpenConns: 4})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())

	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, database.UpsertUser(ctx, db, &database.User{Username: "Kim", Email: "kim@example.com", PasswordHash: hash}))

	completions := setupCompletionServer(t, "감사한 하루였네요!")
	llm := chat.NewOpenAIClient("test-key", completions.URL+"/", chat.Options{})

	router := chi.NewRouter()
	backend.NewBackendService(db).AddRoutes(router)
	backend.NewChatService(db, llm).AddRoutes(router)

	var login api.LoginResponse
	require.NoError(t, httpRequest(router, http.MethodPost, "/login", api.LoginRequest{Email: "kim@example.com", Password: "secret"}, &login))
	assert.Equal(t, "ok", login.Result)

	for i := int64(1); i <= 2; i++ {
		var diary api.DiaryResponse
		require.NoError(t, httpRequest(router, http.MethodPost, "/thank/diary", api.DiaryRequest{
			UserName: "Kim", UserEmail: "kim@example.com", ChatUUID: "chat-1", DiaryText: "감사합니다",
		}, &diary))
		assert.Equal(t, i, diary.DiaryCount)
		assert.Equal(t, 100*i, diary.DiaryToken)
	}

	var reply api.DataResponse[string]
	require.NoError(t, httpRequest(router, http.MethodPost, "/thank/chat", api.ChatRequest{
		Lang: "ko",
		Messages: []api.ChatMessage{
			{From: "user", Text: "오늘 친구를 만났어요", UserName: "Kim", UserEmail: "kim@example.com", UniqeChatId: "chat-1"},
		},
	}, &reply))
	assert.Equal(t, "감사한 하루였네요!", reply.Data)

	var users api.DataResponse[[]api.UserSummary]
	require.NoError(t, httpRequest(router, http.MethodPost, "/userlist", nil, &users))
	assert.Equal(t, []api.UserSummary{
		{Username: "Kim", Email: "kim@example.com", DiaryCnt: 2, Token: 200, TotalCnt: 1, ThankChatCnt: 1},
	}, users.Data)

	require.NoError(t, httpRequest(router, http.MethodPost, "/del_chat_list", api.UserEmailRequest{UserEmail: "kim@example.com"}, nil))

	var info api.DataResponse[api.UserInfo]
	require.NoError(t, httpRequest(router, http.MethodPost, "/userinfo", api.UserEmailRequest{UserEmail: "kim@example.com"}, &info))
	assert.Equal(t, api.UserInfo{}, info.Data)
}

func TestPostgresConcurrentDiaryEntries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	db, err := database.NewDatabase(database.Options{Driver: "postgres", DSN: setupPostgresContainer(t, ctx), MaxOpenConns: 8})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())
	require.NoError(t, database.UpsertUser(ctx, db, &database.User{Username: "Kim", Email: "kim@example.com"}))

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = database.CreateDiaryEntry(ctx, db, database.ThankDiary{UserEmail: "kim@example.com", DiaryText: "t"})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var counts []int
	require.NoError(t, db.Model(&database.ThankDiary{}).Order("diary_write_count").Pluck("diary_write_count", &counts).Error)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, counts)
}
