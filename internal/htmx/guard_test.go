package htmx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/janisto/huma-htmx/internal/respond"
)

func TestRequireHTMX(t *testing.T) {
	h := AutoVary(AutoVaryConfig{})(RequireHTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<p>partial</p>"))
	})))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"htmx request passes", "true", http.StatusOK},
		{"plain request rejected", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/partials/greeting", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequest, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if diff := cmp.Diff([]string{"hx-request"}, rec.Header().Values("Vary")); diff != "" {
				t.Fatalf("Vary mismatch (-want +got):\n%s", diff)
			}
			if tt.status != http.StatusForbidden {
				return
			}
			var env respond.ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.Error.Code != codeNotHTMX || env.Error.Message != msgNotHTMX {
				t.Fatalf("unexpected error body %+v", env.Error)
			}
		})
	}
}
