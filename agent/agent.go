// Package agent answers visitor questions from the cached website text.
package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/sitechat"
)

// Ensure Agent implements sitechat.Assistant at compile time.
var _ sitechat.Assistant = (*Agent)(nil)

// Agent relays questions to a Completer with the cached site content.
// The cache is a snapshot taken at startup and is only ever read.
type Agent struct {
	completer    sitechat.Completer
	cache        *sitechat.Cache
	instructions string
}

// New creates an Agent answering from cache with sitechat.Instructions.
func New(completer sitechat.Completer, cache *sitechat.Cache) *Agent {
	return &Agent{
		completer:    completer,
		cache:        cache,
		instructions: sitechat.Instructions,
	}
}

// Answer validates the request, builds the prompt and makes a single
// completion call. An empty query fails without calling the completer.
func (a *Agent) Answer(ctx context.Context, req sitechat.Request) sitechat.Result {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return sitechat.Result{Err: sitechat.Errorf(sitechat.EINVALID, "No query provided.")}
	}

	prompt := sitechat.BuildPrompt(a.instructions, req.History, a.cache, query)

	answer, err := a.completer.Complete(ctx, sitechat.Completion{
		Instructions: a.instructions,
		Prompt:       prompt,
	})
	if err != nil {
		return sitechat.Result{Err: sitechat.Errorf(sitechat.EUPSTREAM, "Agent failed: %s", describe(err))}
	}

	return sitechat.Result{Response: answer}
}

// describe prefers the user-facing message of application errors.
func describe(err error) string {
	var e *sitechat.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
