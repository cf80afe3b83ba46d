package handler

import (
	"encoding/json"
	"jekomo/internal/auth"
	"jekomo/internal/core"
	"jekomo/internal/http/handler/middleware"
	"jekomo/internal/http/payload"
	"net/http"

	"go.uber.org/zap"
)

var (
	Register    = "POST /register"
	Login       = "POST /login"
	Logout      = "POST /logout"
	LogoutAll   = "POST /logoutAll"
	GrantAdmin  = "POST /grantAdmin"
	RevokeAdmin = "POST /grantUser"
	Home        = "GET /{$}"
	Metrics     = "GET /metrics"
)

type AccountHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
	faults           FaultReporter
}

func NewAccountHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService, reporter FaultReporter) *AccountHandler {
	return &AccountHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
		faults:           reporter,
	}
}

func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req payload.AuthRequest
	if !h.decode(w, r, &req, Register) {
		return
	}

	result, err := h.accounts.Register(r.Context(), req.ToMessage())
	if err != nil {
		h.internalError(w, r, err, Register)
		return
	}

	respondResult(h, w, r, result)
}

func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.AuthRequest
	if !h.decode(w, r, &req, Login) {
		return
	}

	result, err := h.accounts.Login(r.Context(), req.ToMessage())
	if err != nil {
		h.internalError(w, r, err, Login)
		return
	}

	if !result.Success {
		h.logs.Warnw("login rejected",
			"username", req.Username,
			"handler", Login,
			"request_id", middleware.RequestIDFrom(r.Context()))
	}

	respondResult(h, w, r, result)
}

func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req payload.LogoutRequest
	if !h.decode(w, r, &req, Logout) {
		return
	}

	result, err := h.accounts.Logout(r.Context(), caller(r), req.ToMessage())
	if err != nil {
		h.internalError(w, r, err, Logout)
		return
	}

	respondResult(h, w, r, result)
}

func (h *AccountHandler) HandleLogoutAll(w http.ResponseWriter, r *http.Request) {
	var req payload.LogoutRequest
	if !h.decode(w, r, &req, LogoutAll) {
		return
	}

	result, err := h.accounts.LogoutAll(r.Context(), caller(r), req.ToMessage())
	if err != nil {
		h.internalError(w, r, err, LogoutAll)
		return
	}

	respondResult(h, w, r, result)
}

func (h *AccountHandler) HandleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	var req payload.ChangeRoleRequest
	if !h.decode(w, r, &req, GrantAdmin) {
		return
	}

	result, err := h.accounts.GrantAdmin(r.Context(), caller(r), req.ToMessage())
	if err != nil {
		h.internalError(w, r, err, GrantAdmin)
		return
	}

	respondResult(h, w, r, result)
}

func (h *AccountHandler) HandleRevokeAdmin(w http.ResponseWriter, r *http.Request) {
	var req payload.ChangeRoleRequest
	if !h.decode(w, r, &req, RevokeAdmin) {
		return
	}

	result, err := h.accounts.RevokeAdmin(r.Context(), caller(r), req.ToMessage())
	if err != nil {
		h.internalError(w, r, err, RevokeAdmin)
		return
	}

	respondResult(h, w, r, result)
}

func (h *AccountHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(helloMsg))
}

// decode answers 400 with field messages when the payload is malformed.
func (h *AccountHandler) decode(w http.ResponseWriter, r *http.Request, object any, route string) bool {
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, object)
	if err == nil {
		return true
	}

	h.logs.Warnw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", middleware.RequestIDFrom(r.Context()))
	h.respond(w, r, Response{
		Success: false,
		Message: payload.Messages(err),
	}, http.StatusBadRequest)
	return false
}

func (h *AccountHandler) internalError(w http.ResponseWriter, r *http.Request, err error, route string) {
	h.faults.Report(r.Context(), err)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", middleware.RequestIDFrom(r.Context()))
	h.respond(w, r, Response{
		Success: false,
		Message: internalErrMsg,
	}, http.StatusInternalServerError)
}

func respondResult[T any](h *AccountHandler, w http.ResponseWriter, r *http.Request, result core.Result[T]) {
	resp := Response{
		Success: result.Success,
		Message: result.Message,
	}
	if result.Data != nil {
		resp.Data = result.Data
	}

	h.respond(w, r, resp, statusFor(result.Reason))
}

func statusFor(reason core.Reason) int {
	switch reason {
	case core.ReasonDuplicateUsername:
		return http.StatusBadRequest
	case core.ReasonInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusOK
	}
}

func caller(r *http.Request) *auth.Identity {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		return nil
	}
	return &identity
}

func (h *AccountHandler) respond(w http.ResponseWriter, r *http.Request, resp any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", middleware.RequestIDFrom(r.Context()))
	}
}
