package internal

import (
	"context"
	"time"
)

// DefaultOutboundTimeout bounds calls that leave the process, such as email
// delivery, when the caller does not pick a tighter deadline.
const DefaultOutboundTimeout = 10 * time.Second

// WithTimeout returns a context bounded by duration, falling back to
// DefaultOutboundTimeout when duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = DefaultOutboundTimeout
	}
	return context.WithTimeout(ctx, duration)
}
