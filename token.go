package sitechat

import "context"

// TokenCounter counts tokens in text for a specific model.
// Used to report how large the cached site content is in prompt terms.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
