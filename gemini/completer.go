// Package gemini implements sitechat.Completer against the native Gemini API.
package gemini

import (
	"context"

	"github.com/fwojciec/sitechat"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Ensure Completer implements sitechat.Completer at compile time.
var _ sitechat.Completer = (*Completer)(nil)

// Completer implements sitechat.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends the prompt as a single user turn and returns the answer text.
func (c *Completer) Complete(ctx context.Context, completion sitechat.Completion) (string, error) {
	if completion.Prompt == "" {
		return "", sitechat.Errorf(sitechat.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: completion.Prompt}},
		}},
		BuildConfig(completion.Instructions),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sitechat.Errorf(sitechat.EUPSTREAM, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Instructions, when present, become the system instruction.
func BuildConfig(instructions string) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if instructions != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: instructions}},
		}
	}
	return config
}
