package middleware

import (
	"errors"
	"fmt"
	"jekomo/internal/auth"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

type RecoverMiddleware struct {
	logs    *zap.SugaredLogger
	faults  FaultReporter
	reraise bool
}

// NewRecoverMiddleware builds the fault boundary. With reraise set, a
// recovered panic is raised again once the 500 response has been flushed, so
// it still surfaces in the server log. Forbidden faults are never raised again.
func NewRecoverMiddleware(logger *zap.SugaredLogger, reporter FaultReporter, reraise bool) *RecoverMiddleware {
	return &RecoverMiddleware{
		logs:    logger,
		faults:  reporter,
		reraise: reraise,
	}
}

func (m *RecoverMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)

		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			err, ok := v.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", v)
			}

			if errors.Is(err, auth.ErrForbidden) {
				if !rec.wroteHeader {
					writeJSON(rec, http.StatusForbidden, forbiddenMsg)
				}
				return
			}

			m.faults.Report(r.Context(), err)
			m.logs.Errorw("recovered from panic",
				"error", err,
				"request_id", RequestIDFrom(r.Context()),
				"stack", string(debug.Stack()))

			if !rec.wroteHeader {
				writeJSON(rec, http.StatusInternalServerError, internalErrMsg)
			}

			if m.reraise {
				rec.Flush()
				panic(v)
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
