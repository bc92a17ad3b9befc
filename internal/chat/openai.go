package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client openai.Client
	opts   Options
}

func NewOpenAIClient(apiKey, baseURL string, opts Options) *OpenAIClient {
	requestOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(requestOpts...),
		opts:   opts.withDefaults(),
	}
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}

func classifyOpenAIError(err error) ErrorKind {
	if kind, ok := classifyTransport(err); ok {
		return kind
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.StatusCode)
	}

	return Permanent
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:       c.opts.Model,
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   openai.Int(int64(c.opts.MaxTokens)),
		Temperature: openai.Float(c.opts.Temperature),
	}

	res, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		kind := classifyOpenAIError(err)
		slog.Error("openai error: chat completions failed", "kind", kind, "error", err)
		return Completion{}, newCompletionError(kind, "openai chat completion failed: %w", err)
	}

	if len(res.Choices) == 0 {
		return Completion{}, &CompletionError{Kind: Permanent, Err: ErrEmptyCompletion}
	}

	return Completion{
		Reply: strings.TrimSpace(res.Choices[0].Message.Content),
		Model: res.Model,
		Usage: Usage{
			PromptTokens:     res.Usage.PromptTokens,
			CompletionTokens: res.Usage.CompletionTokens,
			TotalTokens:      res.Usage.TotalTokens,
		},
	}, nil
}
