package sitechat

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its body as HTML.
	// A response outside the 2xx range is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases the underlying client.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
