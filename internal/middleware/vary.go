package middleware

import "net/http"

// Vary returns middleware that appends the given request headers to Vary on
// all responses, before the handler runs. With no arguments it adds Accept,
// since JSON and CBOR are negotiated from it.
//
// Headers the handler reads conditionally, such as the htmx ones, belong to
// htmx.AutoVary instead; its value is added as a separate field line.
func Vary(headers ...string) func(http.Handler) http.Handler {
	if len(headers) == 0 {
		headers = []string{"Accept"}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, name := range headers {
				h.Add("Vary", name)
			}
			next.ServeHTTP(w, r)
		})
	}
}
