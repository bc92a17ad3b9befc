package api

import (
	"net/http"

	"caresam-backend/pkg/api"
)

// requireField rejects a request whose required field is missing or empty.
// Values are not trimmed or otherwise sanitized.
func requireField(name, value string) error {
	if value == "" {
		return CodedErrorf(http.StatusBadRequest, "%s is required", name)
	}
	return nil
}

// parseChatRequest decodes a chat request and returns its last message. Every
// chat request must name the user on its last message.
func parseChatRequest(r *http.Request) (api.ChatRequest, api.ChatMessage, error) {
	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		return req, api.ChatMessage{}, err
	}

	if len(req.Messages) == 0 {
		return req, api.ChatMessage{}, CodedErrorf(http.StatusBadRequest, "Messages are required")
	}

	last := req.Messages[len(req.Messages)-1]
	if last.UserEmail == "" {
		return req, api.ChatMessage{}, CodedErrorf(http.StatusBadRequest, "userEmail is required")
	}

	return req, last, nil
}
