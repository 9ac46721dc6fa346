package auth

import "context"

type contextKey struct{}

// UserContext carries the authenticated user's identity through a request.
// Session issuance lives in the external auth service; this backend only
// resolves the forwarded user id.
type UserContext struct {
	UserID   int64
	Username string
}

func WithUser(ctx context.Context, uc UserContext) context.Context {
	return context.WithValue(ctx, contextKey{}, uc)
}

func FromContext(ctx context.Context) (UserContext, bool) {
	uc, ok := ctx.Value(contextKey{}).(UserContext)
	return uc, ok
}

// UserID returns the authenticated user id, or 0 when the context carries
// no user.
func UserID(ctx context.Context) int64 {
	uc, ok := FromContext(ctx)
	if !ok {
		return 0
	}
	return uc.UserID
}
