package auth

import (
	"context"
	"jekomo/internal/repository"
	tokenIssuer "jekomo/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	Validate(token string) (tokenIssuer.Claims, error)
}

//counterfeiter:generate -o fake -fake-name UserLookup . UserLookup
type UserLookup interface {
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
}
