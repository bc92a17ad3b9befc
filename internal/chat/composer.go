package chat

// SenderAI marks a history turn written by the assistant.
const SenderAI = "ai"

type Turn struct {
	From string
	Text string
}

func roleOf(from string) Role {
	if from == SenderAI {
		return RoleAssistant
	}
	return RoleUser
}

func appendHistory(messages []Message, history []Turn) []Message {
	for _, turn := range history {
		messages = append(messages, Message{Role: roleOf(turn.From), Content: turn.Text})
	}
	return messages
}

// GratitudeConversation builds the prompt for the gratitude journal chat: the
// persona, the user's diary statistics as an assistant turn, then the full
// history in order.
func GratitudeConversation(lang string, diaryCount, diaryToken int64, history []Turn) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages,
		Message{Role: RoleSystem, Content: PersonaPrompt(lang)},
		Message{Role: RoleAssistant, Content: diaryStatsLine(diaryCount, diaryToken)},
	)
	return appendHistory(messages, history)
}

// CounselingConversation builds the prompt for the counseling chat. The
// persona carries the risk-detection instructions; a self-reported emotion is
// added after the history as a system note.
func CounselingConversation(lang, emotion string, history []Turn) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: CounselingPrompt(lang)})
	messages = appendHistory(messages, history)

	if emotion != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: emotionLine(emotion)})
	}
	return messages
}
