package portalsim

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-campus-login/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// withRequestID assigns every request a UUID (or adopts the one the caller
// sent) and binds a child logger carrying it to the request context, so all
// downstream log entries of one login attempt share a request_id field. The
// id is also stored under [utils.RequestIDCtxKey] for handlers that need it
// outside of logging.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), utils.RequestIDCtxKey, requestID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
