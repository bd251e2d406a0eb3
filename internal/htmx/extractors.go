package htmx

import (
	"context"
	"net/http"
	"net/url"
)

// headerGetter abstracts over http.Header and huma.Context.
type headerGetter interface {
	Header(name string) string
}

type requestHeaders struct {
	h http.Header
}

func (r requestHeaders) Header(name string) string {
	return r.h.Get(name)
}

// readFlag marks k and reports whether its header is present and non-empty.
func readFlag(ctx context.Context, k Kind, h headerGetter) bool {
	TryMark(ctx, k)
	return h.Header(k.Header()) != ""
}

// readValue marks k and returns its header value, if any.
func readValue(ctx context.Context, k Kind, h headerGetter) (string, bool) {
	TryMark(ctx, k)
	v := h.Header(k.Header())
	return v, v != ""
}

func readURL(ctx context.Context, h headerGetter) (*url.URL, bool) {
	raw, ok := readValue(ctx, KindCurrentURL, h)
	if !ok {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// IsRequest reports whether r was made by htmx (HX-Request). A header that is
// present but empty counts as absent.
func IsRequest(r *http.Request) bool {
	return readFlag(r.Context(), KindRequest, requestHeaders{r.Header})
}

// Target returns the id of the target element (HX-Target). An empty value is
// reported as absent, so ok is false for "HX-Target:" with no value.
func Target(r *http.Request) (string, bool) {
	return readValue(r.Context(), KindTarget, requestHeaders{r.Header})
}

// TriggerID returns the id of the triggered element (HX-Trigger).
func TriggerID(r *http.Request) (string, bool) {
	return readValue(r.Context(), KindTrigger, requestHeaders{r.Header})
}

// TriggerName returns the name of the triggered element (HX-Trigger-Name).
func TriggerName(r *http.Request) (string, bool) {
	return readValue(r.Context(), KindTriggerName, requestHeaders{r.Header})
}

// IsBoosted reports whether r comes from an element using hx-boost (HX-Boosted).
func IsBoosted(r *http.Request) bool {
	return readFlag(r.Context(), KindBoosted, requestHeaders{r.Header})
}

// CurrentURL returns the browser URL sent in HX-Current-URL. A value that does
// not parse as a URL is reported as absent.
func CurrentURL(r *http.Request) (*url.URL, bool) {
	return readURL(r.Context(), requestHeaders{r.Header})
}

// IsHistoryRestoreRequest reports whether r restores history after a local
// cache miss (HX-History-Restore-Request).
func IsHistoryRestoreRequest(r *http.Request) bool {
	return readFlag(r.Context(), KindHistoryRestoreRequest, requestHeaders{r.Header})
}

// Prompt returns the user response to an hx-prompt (HX-Prompt).
func Prompt(r *http.Request) (string, bool) {
	return readValue(r.Context(), KindPrompt, requestHeaders{r.Header})
}
