package htmx

import "encoding/json"

// Location performs a client-side redirect without a full page reload.
// With Options set it targets a specific element, encoded as JSON.
// See https://htmx.org/headers/hx-location/.
type Location struct {
	Path    string
	Options *LocationOptions
}

// LocationOptions are the optional HX-Location fields. Empty fields are
// omitted from the header.
type LocationOptions struct {
	Source  string         `json:"source,omitempty"`
	Event   string         `json:"event,omitempty"`
	Handler string         `json:"handler,omitempty"`
	Target  string         `json:"target,omitempty"`
	Swap    SwapOption     `json:"swap,omitempty"`
	Values  map[string]any `json:"values,omitempty"`
	Headers map[string]any `json:"headers,omitempty"`
}

func (o *LocationOptions) isZero() bool {
	return o == nil ||
		(o.Source == "" && o.Event == "" && o.Handler == "" && o.Target == "" &&
			o.Swap == "" && len(o.Values) == 0 && len(o.Headers) == 0)
}

func (l Location) HeaderName() string { return HeaderLocation }

func (l Location) HeaderValue() (string, error) {
	if l.Options.isZero() {
		return checked(HeaderLocation, l.Path)
	}
	raw, err := json.Marshal(struct {
		Path string `json:"path"`
		*LocationOptions
	}{Path: l.Path, LocationOptions: l.Options})
	if err != nil {
		return "", &HeaderError{Header: HeaderLocation, Err: err}
	}
	return checked(HeaderLocation, string(raw))
}
