package htmx

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// encodeVary joins the tokens of the used kinds, which the caller passes in
// canonical order, and validates the result as a header value.
func encodeVary(used []Kind) (string, error) {
	if len(used) == 0 {
		return "", nil
	}
	tokens := make([]string, len(used))
	for i, k := range used {
		tokens[i] = k.String()
	}
	value := strings.Join(tokens, listSeparator)
	if err := validHeaderValue(headerVary, value); err != nil {
		return "", err
	}
	return value, nil
}

// validHeaderValue rejects control characters (other than tab) and DEL.
func validHeaderValue(name, value string) error {
	if !httpguts.ValidHeaderFieldValue(value) {
		return &HeaderError{Header: name, Err: ErrInvalidHeaderValue}
	}
	return nil
}
