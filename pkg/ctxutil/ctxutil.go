package ctxutil

import (
	"context"
)

type ctxKey string

const actorKey ctxKey = "actor"

// DefaultActor is recorded in the activity log when no actor is set,
// e.g. for operations run outside a login session.
const DefaultActor = "local"

// WithActor stores the acting username in the context.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey, name)
}

// ActorFromCtx extracts the acting username from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func ActorFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(actorKey).(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// ActorOrDefault returns the acting username, or DefaultActor when none is set.
func ActorOrDefault(ctx context.Context) string {
	if name, ok := ActorFromCtx(ctx); ok {
		return name
	}
	return DefaultActor
}
