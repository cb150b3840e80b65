// Package logging defines the structured, context-aware logger used by the
// server and client components.
package logging

import "context"

// Logger takes key/value pairs after the message:
//
//	log.Info(ctx, "card updated", "card_id", id, "changes", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
