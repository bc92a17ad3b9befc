package api

import (
	"caresam-backend/internal/chat"
	"caresam-backend/internal/database"
	"caresam-backend/pkg/api"
)

func convertUserSummary(s database.UserSummary) api.UserSummary {
	return api.UserSummary{
		Username:     s.Username,
		Email:        s.Email,
		DiaryCnt:     s.DiaryCnt,
		Token:        s.Token,
		TotalCnt:     s.TotalCnt,
		ThankChatCnt: s.ThankChatCnt,
		ConsChatCnt:  s.ConsChatCnt,
	}
}

func convertUserSummaries(summaries []database.UserSummary) []api.UserSummary {
	out := make([]api.UserSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, convertUserSummary(s))
	}
	return out
}

func convertTurns(messages []api.ChatMessage) []chat.Turn {
	turns := make([]chat.Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, chat.Turn{From: m.Sender(), Text: m.Text})
	}
	return turns
}
