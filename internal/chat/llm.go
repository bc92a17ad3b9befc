package chat

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

type Message struct {
	Role    Role
	Content string
}

type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

type Completion struct {
	Reply string
	Model string
	Usage Usage
}

// LLM sends one conversation to a chat completion service and returns the
// reply. Failures are returned as *CompletionError.
type LLM interface {
	Complete(ctx context.Context, messages []Message) (Completion, error)
}

const (
	DefaultModel       = "gpt-4-turbo-preview"
	DefaultMaxTokens   = 4096
	DefaultTemperature = 1.0
	DefaultTimeout     = 60 * time.Second
)

type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

const (
	ProviderOpenAI    = "openai"
	ProviderLangchain = "langchain"
)

func NewLLM(provider, apiKey, baseURL string, opts Options) (LLM, error) {
	switch strings.ToLower(provider) {
	case "", ProviderOpenAI:
		return NewOpenAIClient(apiKey, baseURL, opts), nil
	case ProviderLangchain:
		return NewLangchainClient(apiKey, baseURL, opts)
	default:
		return nil, fmt.Errorf("unsupported llm provider '%s'", provider)
	}
}
