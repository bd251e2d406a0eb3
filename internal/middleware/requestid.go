package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxRequestIDLength bounds what a client can inject into every log line.
const maxRequestIDLength = 128

// isValidRequestID accepts printable ASCII (0x20-0x7E) only, which rules out
// newlines and other log injection vectors.
func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}
	return true
}

// RequestID returns middleware that tags each request with an identifier,
// stored where chi's GetReqID finds it and echoed in X-Request-Id. A valid
// incoming X-Request-Id is reused; otherwise a UUIDv4 is generated.
//
// htmx forwards custom headers set through hx-headers, so a page can pin the
// ID of the request that rendered it onto its follow-up fragment requests.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(chimiddleware.RequestIDHeader)
			if !isValidRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(chimiddleware.RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
