// Package openai implements sitechat.Completer for any chat-completion
// endpoint speaking the OpenAI wire protocol, including Gemini's
// OpenAI-compatible endpoint.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/sitechat"
	goopenai "github.com/sashabaranov/go-openai"
)

// Defaults target Gemini through its OpenAI-compatible endpoint.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-2.0-flash"
)

// Ensure Completer implements sitechat.Completer at compile time.
var _ sitechat.Completer = (*Completer)(nil)

// Completer sends prompts as non-streaming chat completions.
// A single Completer is shared by all requests.
type Completer struct {
	client *goopenai.Client
	model  string
}

// Option configures a Completer.
type Option func(*options)

type options struct {
	baseURL string
	model   string
}

// WithBaseURL points the client at an alternate OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithModel sets the model identifier sent with every request.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// NewCompleter creates a Completer authenticating with apiKey.
func NewCompleter(apiKey string, opts ...Option) *Completer {
	o := options{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	config := goopenai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimRight(o.baseURL, "/")

	return &Completer{
		client: goopenai.NewClientWithConfig(config),
		model:  o.model,
	}
}

// Complete sends the instructions as the system message and the prompt as
// the only user message, and returns the first choice's content.
func (c *Completer) Complete(ctx context.Context, completion sitechat.Completion) (string, error) {
	if completion.Prompt == "" {
		return "", sitechat.Errorf(sitechat.EINVALID, "prompt required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, completion))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", sitechat.Errorf(sitechat.EUPSTREAM, "model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildRequest converts a completion into a chat completion request.
func BuildRequest(model string, completion sitechat.Completion) goopenai.ChatCompletionRequest {
	messages := make([]goopenai.ChatCompletionMessage, 0, 2)
	if completion.Instructions != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: completion.Instructions,
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: completion.Prompt,
	})

	return goopenai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}
}
