package sitechat

import "context"

// Completion is a single non-streaming request to a hosted model.
type Completion struct {
	// Instructions are sent as the system prompt where the provider supports one.
	Instructions string

	// Prompt is the fully assembled user prompt.
	Prompt string
}

// Completer sends prompts to an external chat-completion service.
type Completer interface {
	// Complete sends one prompt and returns the model's text answer.
	Complete(ctx context.Context, c Completion) (string, error)
}
