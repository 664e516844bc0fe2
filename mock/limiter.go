package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of sitechat.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
