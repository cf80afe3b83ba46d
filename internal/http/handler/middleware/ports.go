package middleware

import (
	"context"
	"jekomo/internal/auth"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Protected(op auth.Operation) bool
	Authenticate(ctx context.Context, header string) (auth.Identity, error)
	Authorize(identity auth.Identity, op auth.Operation) error
}

//counterfeiter:generate -o fake -fake-name FaultReporter . FaultReporter
type FaultReporter interface {
	Report(ctx context.Context, err error)
}
