package handler

import (
	"context"
	"jekomo/internal/auth"
	"jekomo/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, msg core.AuthMessage) (core.Result[core.PublicView], error)
	Login(ctx context.Context, msg core.AuthMessage) (core.Result[core.LoginView], error)
	Logout(ctx context.Context, caller *auth.Identity, msg core.LogoutMessage) (core.Result[core.None], error)
	LogoutAll(ctx context.Context, caller *auth.Identity, msg core.LogoutMessage) (core.Result[core.None], error)
	GrantAdmin(ctx context.Context, caller *auth.Identity, msg core.RoleMessage) (core.Result[core.None], error)
	RevokeAdmin(ctx context.Context, caller *auth.Identity, msg core.RoleMessage) (core.Result[core.None], error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name FaultReporter . FaultReporter
type FaultReporter interface {
	Report(ctx context.Context, err error)
}
