package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	internalErrMsg     = "Internal server error"
	unauthorizedMsg    = "Unauthorized, session may have expired"
	forbiddenMsg       = "Forbidden resource"
	tooManyRequestsMsg = "Too many requests, please try again later"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeJSON sets Content-Length so the body is complete even when the
// handler goroutine panics right after writing it.
func writeJSON(w http.ResponseWriter, code int, message string) {
	body, err := json.Marshal(envelope{Message: message})
	if err != nil {
		http.Error(w, message, code)
		return
	}
	body = append(body, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{
		ResponseWriter: w,
		status:         http.StatusOK,
	}
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
