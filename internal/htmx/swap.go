package htmx

import "fmt"

// SwapOption is a value of the hx-swap attribute.
// See https://htmx.org/attributes/hx-swap/.
type SwapOption string

const (
	// SwapInnerHTML replaces the inner html of the target element.
	SwapInnerHTML SwapOption = "innerHTML"
	// SwapOuterHTML replaces the entire target element with the response.
	SwapOuterHTML SwapOption = "outerHTML"
	// SwapBeforeBegin inserts the response before the target element.
	SwapBeforeBegin SwapOption = "beforebegin"
	// SwapAfterBegin inserts the response before the first child of the target.
	SwapAfterBegin SwapOption = "afterbegin"
	// SwapBeforeEnd inserts the response after the last child of the target.
	SwapBeforeEnd SwapOption = "beforeend"
	// SwapAfterEnd inserts the response after the target element.
	SwapAfterEnd SwapOption = "afterend"
	// SwapDelete deletes the target element regardless of the response.
	SwapDelete SwapOption = "delete"
	// SwapNone does not append content from the response. Out of band items
	// are still processed.
	SwapNone SwapOption = "none"
)

// Valid reports whether s is one of the known swap options.
func (s SwapOption) Valid() bool {
	switch s {
	case SwapInnerHTML, SwapOuterHTML, SwapBeforeBegin, SwapAfterBegin,
		SwapBeforeEnd, SwapAfterEnd, SwapDelete, SwapNone:
		return true
	}
	return false
}

// MarshalText rejects unknown options so they never reach a header or a
// JSON-encoded HX-Location.
func (s SwapOption) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("htmx: unknown swap option %q", string(s))
	}
	return []byte(s), nil
}
