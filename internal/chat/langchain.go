package chat

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// LangchainClient sends completions through langchaingo's OpenAI backend.
type LangchainClient struct {
	llm  *lcopenai.LLM
	opts Options
}

func NewLangchainClient(apiKey, baseURL string, opts Options) (*LangchainClient, error) {
	opts = opts.withDefaults()

	lcOpts := []lcopenai.Option{
		lcopenai.WithToken(apiKey),
		lcopenai.WithModel(opts.Model),
	}
	if baseURL != "" {
		lcOpts = append(lcOpts, lcopenai.WithBaseURL(baseURL))
	}

	llm, err := lcopenai.New(lcOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not create OpenAI client: %w", err)
	}

	return &LangchainClient{llm: llm, opts: opts}, nil
}

func toLangchainMessages(messages []Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		var role llms.ChatMessageType
		switch msg.Role {
		case RoleSystem:
			role = llms.ChatMessageTypeSystem
		case RoleAssistant:
			role = llms.ChatMessageTypeAI
		default:
			role = llms.ChatMessageTypeHuman
		}
		out = append(out, llms.TextParts(role, msg.Content))
	}
	return out
}

func generationInt(info map[string]any, key string) int64 {
	switch v := info[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// langchaingo reports non-2xx responses only through the error text.
var unexpectedStatus = regexp.MustCompile(`status code: (\d{3})`)

func classifyLangchainError(err error) ErrorKind {
	if kind, ok := classifyTransport(err); ok {
		return kind
	}

	if m := unexpectedStatus.FindStringSubmatch(err.Error()); m != nil {
		if code, convErr := strconv.Atoi(m[1]); convErr == nil {
			return classifyStatus(code)
		}
	}

	return Permanent
}

func generationString(info map[string]any, key string) string {
	if v, ok := info[key].(string); ok {
		return v
	}
	return ""
}

func (c *LangchainClient) Complete(ctx context.Context, messages []Message) (Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	resp, err := c.llm.GenerateContent(ctx, toLangchainMessages(messages),
		llms.WithModel(c.opts.Model),
		llms.WithMaxTokens(c.opts.MaxTokens),
		llms.WithTemperature(c.opts.Temperature),
	)
	if err != nil {
		kind := classifyLangchainError(err)
		slog.Error("error calling OpenAI API", "kind", kind, "error", err)
		return Completion{}, newCompletionError(kind, "langchain completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Completion{}, &CompletionError{Kind: Permanent, Err: ErrEmptyCompletion}
	}

	choice := resp.Choices[0]

	// The openai backend of langchaingo does not echo the served model, so
	// the requested one is reported unless the backend provides it.
	model := generationString(choice.GenerationInfo, "Model")
	if model == "" {
		model = c.opts.Model
	}

	return Completion{
		Reply: strings.TrimSpace(choice.Content),
		Model: model,
		Usage: Usage{
			PromptTokens:     generationInt(choice.GenerationInfo, "PromptTokens"),
			CompletionTokens: generationInt(choice.GenerationInfo, "CompletionTokens"),
			TotalTokens:      generationInt(choice.GenerationInfo, "TotalTokens"),
		},
	}, nil
}
