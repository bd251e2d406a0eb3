package htmx

import (
	"net/http"

	appmiddleware "github.com/janisto/huma-htmx/internal/middleware"
	"github.com/janisto/huma-htmx/internal/respond"
)

const (
	codeNotHTMX = "FORBIDDEN"
	msgNotHTMX  = "htmx request required"
)

// RequireHTMX returns middleware that rejects requests without the HX-Request
// header with 403 Forbidden. Routes behind it serve fragments that make no
// sense as a full page.
//
// The header is read through IsRequest, so an enclosing AutoVary adds
// "Vary: hx-request" to both outcomes.
func RequireHTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsRequest(r) {
				if err := respond.WriteError(w, r.Context(), http.StatusForbidden, codeNotHTMX, msgNotHTMX, nil); err != nil {
					appmiddleware.LogError(r.Context(), "failed to render forbidden", err)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
