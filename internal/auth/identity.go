package auth

import (
	"context"
	"jekomo/internal/repository"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID   string
	Username string
	Role     repository.Role
	Token    string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
