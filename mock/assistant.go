package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Assistant = (*Assistant)(nil)

// Assistant is a mock implementation of sitechat.Assistant.
type Assistant struct {
	AnswerFn func(ctx context.Context, req sitechat.Request) sitechat.Result
}

func (a *Assistant) Answer(ctx context.Context, req sitechat.Request) sitechat.Result {
	return a.AnswerFn(ctx, req)
}
