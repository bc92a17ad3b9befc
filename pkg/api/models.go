package api

// ChatMessage is one turn of a conversation as sent by the client. Older
// clients send the sender tag as "from_".
type ChatMessage struct {
	From        string `json:"from"`
	LegacyFrom  string `json:"from_,omitempty"`
	Text        string `json:"text"`
	UserName    string `json:"userName,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	UniqeChatId string `json:"uniqeChatId,omitempty"`
	ChatMode    string `json:"chatMode,omitempty"`
	UserEmotion string `json:"userEmotion,omitempty"`
}

func (m ChatMessage) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.LegacyFrom
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Lang     string        `json:"lang"`
}

type UserEmailRequest struct {
	UserName  string `json:"user_name" schema:"user_name"`
	UserEmail string `json:"user_email" schema:"user_email"`
}

type DiaryRequest struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	ChatUUID  string `json:"chat_uuid"`
	DiaryText string `json:"diary_text"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type DataResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserInfo struct {
	DiaryCount int64 `json:"diaryCount"`
	DiaryToken int64 `json:"diaryToken"`
}

type UserSummary struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	DiaryCnt     int64  `json:"diary_cnt"`
	Token        int64  `json:"token"`
	TotalCnt     int64  `json:"total_cnt"`
	ThankChatCnt int64  `json:"thank_chat_cnt"`
	ConsChatCnt  int64  `json:"cons_chat_cnt"`
}

type DiaryResponse struct {
	Result     string `json:"result"`
	Message    string `json:"message"`
	DiaryCount int64  `json:"diary_count"`
	DiaryToken int64  `json:"diary_token"`
}

type LoginDetail struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Result  string       `json:"result"`
	Message string       `json:"message"`
	Detail  *LoginDetail `json:"detail,omitempty"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
