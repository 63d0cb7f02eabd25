package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/glosshub/glossary-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID propagates the caller's X-Request-Id, minting a fresh UUID when
// the header is absent. The ID goes on the request context and is echoed back
// on the response so clients can correlate logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		r = r.WithContext(ctxutil.WithRequestID(r.Context(), id))
		next.ServeHTTP(w, r)
	})
}
