package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation id. An inbound value is
// reused so a caller (or the resty client) can follow one request across
// log lines; otherwise a fresh UUID is issued.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request-scoped child logger tagged with the trace
// id to the request context. Every log line produced while serving the
// request, down to the repositories, carries the same trace_id field, and
// the id is echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
