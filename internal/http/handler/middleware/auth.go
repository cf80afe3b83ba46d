package middleware

import (
	"errors"
	"jekomo/internal/auth"
	"net/http"

	"go.uber.org/zap"
)

type AuthMiddleware struct {
	logs          *zap.SugaredLogger
	authenticator Authenticator
	faults        FaultReporter
}

func NewAuthMiddleware(logger *zap.SugaredLogger, authenticator Authenticator, reporter FaultReporter) *AuthMiddleware {
	return &AuthMiddleware{
		logs:          logger,
		authenticator: authenticator,
		faults:        reporter,
	}
}

// Guard authenticates and authorizes the caller of op before next runs and
// hands next the resolved identity in the request context. Public operations
// pass straight through.
func (m *AuthMiddleware) Guard(op auth.Operation, next http.Handler) http.Handler {
	if !m.authenticator.Protected(op) {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := RequestIDFrom(ctx)

		identity, err := m.authenticator.Authenticate(ctx, r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				m.logs.Warnw("unauthenticated request",
					"error", err,
					"operation", op,
					"request_id", requestID)
				writeJSON(w, http.StatusUnauthorized, unauthorizedMsg)
				return
			}

			m.faults.Report(ctx, err)
			m.logs.Errorw("failed to authenticate request",
				"error", err,
				"operation", op,
				"request_id", requestID)
			writeJSON(w, http.StatusInternalServerError, internalErrMsg)
			return
		}

		if err = m.authenticator.Authorize(identity, op); err != nil {
			m.logs.Warnw("forbidden request",
				"error", err,
				"user_id", identity.UserID,
				"operation", op,
				"request_id", requestID)
			writeJSON(w, http.StatusForbidden, forbiddenMsg)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(ctx, identity)))
	})
}
