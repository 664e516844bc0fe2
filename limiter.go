package sitechat

import "context"

// Limiter paces outbound page fetches.
type Limiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
