package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// htmxRequestHeaders are sent by htmx on every request it makes.
var htmxRequestHeaders = []string{
	"HX-Boosted",
	"HX-Current-URL",
	"HX-History-Restore-Request",
	"HX-Prompt",
	"HX-Request",
	"HX-Target",
	"HX-Trigger",
	"HX-Trigger-Name",
}

// htmxResponseHeaders must be exposed for htmx to act on cross-origin responses.
var htmxResponseHeaders = []string{
	"HX-Location",
	"HX-Push-Url",
	"HX-Redirect",
	"HX-Refresh",
	"HX-Replace-Url",
	"HX-Reswap",
	"HX-Retarget",
	"HX-Reselect",
	"HX-Trigger",
	"HX-Trigger-After-Settle",
	"HX-Trigger-After-Swap",
}

// CORS returns a middleware with permissive defaults that also lets browsers
// send htmx request headers and read htmx response headers cross-origin.
func CORS() func(http.Handler) http.Handler {
	allowed := append([]string{
		"Accept",
		"Authorization",
		"Content-Type",
		"X-CSRF-Token",
	}, htmxRequestHeaders...)
	exposed := append([]string{"Link"}, htmxResponseHeaders...)

	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: allowed,
		ExposedHeaders: exposed,
		MaxAge:         300,
	})
}
