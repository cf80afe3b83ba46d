package faults

import (
	"context"
	"fmt"
	"jekomo/internal/auth"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// Reporter forwards unexpected faults to an error capture backend.
type Reporter interface {
	Report(ctx context.Context, err error)
}

type SentryReporter struct {
	hub *sentry.Hub
}

func NewSentryReporter(opts sentry.ClientOptions) (*SentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("create sentry client: %w", err)
	}

	return &SentryReporter{
		hub: sentry.NewHub(client, sentry.NewScope()),
	}, nil
}

// Report captures err on a scope carrying the authenticated caller, if any.
func (r *SentryReporter) Report(ctx context.Context, err error) {
	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		if identity, ok := auth.IdentityFrom(ctx); ok {
			scope.SetUser(sentry.User{
				ID:       identity.UserID,
				Username: identity.Username,
			})
			scope.SetTag("role", string(identity.Role))
		}
		hub.CaptureException(err)
	})
}

func (r *SentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

// LogReporter is used when no capture backend is configured.
type LogReporter struct {
	logs *zap.SugaredLogger
}

func NewLogReporter(logger *zap.SugaredLogger) *LogReporter {
	return &LogReporter{
		logs: logger,
	}
}

func (r *LogReporter) Report(ctx context.Context, err error) {
	kv := []any{"error", err}
	if identity, ok := auth.IdentityFrom(ctx); ok {
		kv = append(kv, "user_id", identity.UserID, "username", identity.Username)
	}
	r.logs.Errorw("internal fault", kv...)
}
