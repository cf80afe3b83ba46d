package cmd

import (
	"jekomo/internal/auth"
	"jekomo/internal/http/handler"
	"jekomo/internal/http/handler/middleware"
	"net/http"
)

type route struct {
	pattern string
	op      auth.Operation
	limited bool
}

// accountRoutes pairs every account endpoint with the operation its guard
// enforces. Limited routes are throttled per client before authentication.
var accountRoutes = []route{
	{handler.Register, auth.OpRegister, true},
	{handler.Login, auth.OpLogin, true},
	{handler.Logout, auth.OpLogout, false},
	{handler.LogoutAll, auth.OpLogoutAll, false},
	{handler.GrantAdmin, auth.OpGrantAdmin, false},
	{handler.RevokeAdmin, auth.OpRevokeAdmin, false},
}

type rateLimit struct {
	rps   float64
	burst int
}

func newRouter(hlr *handler.AccountHandler, authMw *middleware.AuthMiddleware, limit rateLimit, metrics http.Handler) *http.ServeMux {
	handlers := map[auth.Operation]http.HandlerFunc{
		auth.OpRegister:    hlr.HandleRegister,
		auth.OpLogin:       hlr.HandleLogin,
		auth.OpLogout:      hlr.HandleLogout,
		auth.OpLogoutAll:   hlr.HandleLogoutAll,
		auth.OpGrantAdmin:  hlr.HandleGrantAdmin,
		auth.OpRevokeAdmin: hlr.HandleRevokeAdmin,
	}

	mux := http.NewServeMux()
	for _, rt := range accountRoutes {
		h := authMw.Guard(rt.op, handlers[rt.op])
		if rt.limited {
			h = middleware.NewRateLimitMiddleware(limit.rps, limit.burst).Limit(h)
		}
		mux.Handle(rt.pattern, h)
	}
	mux.HandleFunc(handler.Home, hlr.HandleHome)
	mux.Handle(handler.Metrics, metrics)

	return mux
}
