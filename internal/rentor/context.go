package rentor

import "context"

type contextKey string

const contextKeyRequestID contextKey = "rentorRequestID"

// WithRequestID attaches an id forwarded as X-Request-Id on every API
// request made with the returned context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, id)
}

func ContextRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKeyRequestID).(string)
	return id, ok && id != ""
}
