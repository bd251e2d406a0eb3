package htmx

import (
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"
)

// Responder sets one htmx response header.
type Responder interface {
	// HeaderName returns the response header the responder sets.
	HeaderName() string
	// HeaderValue encodes the header value. An empty value with a nil error
	// means the header is omitted.
	HeaderValue() (string, error)
}

// Respond applies rs to the headers of w. Every value is encoded first, so on
// error the headers are left untouched. Call it before writing the body.
func Respond(w http.ResponseWriter, rs ...Responder) error {
	return Apply(w.Header(), rs...)
}

// Apply encodes rs and sets them on h; see Respond.
func Apply(h http.Header, rs ...Responder) error {
	return apply(h.Set, h.Add, rs)
}

// RespondHuma is Respond for huma handlers that write their own response,
// such as the Body func of a huma.StreamResponse.
func RespondHuma(ctx huma.Context, rs ...Responder) error {
	return apply(ctx.SetHeader, ctx.AppendHeader, rs)
}

func apply(set, add func(name, value string), rs []Responder) error {
	type field struct{ name, value string }
	fields := make([]field, 0, len(rs))
	for _, r := range rs {
		value, err := r.HeaderValue()
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}
		fields = append(fields, field{name: r.HeaderName(), value: value})
	}
	for _, f := range fields {
		if f.name == headerVary {
			add(f.name, f.value)
			continue
		}
		set(f.name, f.value)
	}
	return nil
}

func checked(name, value string) (string, error) {
	if err := validHeaderValue(name, value); err != nil {
		return "", err
	}
	return value, nil
}

// PushURL pushes a new URL onto the browser history stack.
type PushURL string

func (u PushURL) HeaderName() string           { return HeaderPushURL }
func (u PushURL) HeaderValue() (string, error) { return checked(HeaderPushURL, string(u)) }

// Redirect makes the client redirect to a new location.
type Redirect string

func (u Redirect) HeaderName() string           { return HeaderRedirect }
func (u Redirect) HeaderValue() (string, error) { return checked(HeaderRedirect, string(u)) }

// ReplaceURL replaces the current URL in the location bar.
type ReplaceURL string

func (u ReplaceURL) HeaderName() string           { return HeaderReplaceURL }
func (u ReplaceURL) HeaderValue() (string, error) { return checked(HeaderReplaceURL, string(u)) }

// Retarget is a CSS selector that replaces the target of the content update.
type Retarget string

func (s Retarget) HeaderName() string           { return HeaderRetarget }
func (s Retarget) HeaderValue() (string, error) { return checked(HeaderRetarget, string(s)) }

// Reselect is a CSS selector choosing which part of the response is swapped
// in. It overrides an hx-select on the triggering element.
type Reselect string

func (s Reselect) HeaderName() string           { return HeaderReselect }
func (s Reselect) HeaderValue() (string, error) { return checked(HeaderReselect, string(s)) }

// Refresh asks the client to do a full page refresh when true.
type Refresh bool

func (r Refresh) HeaderName() string { return HeaderRefresh }

func (r Refresh) HeaderValue() (string, error) {
	if r {
		return headerValueTrue, nil
	}
	return headerValueFalse, nil
}

// Reswap overrides how the response is swapped.
type Reswap SwapOption

func (s Reswap) HeaderName() string { return HeaderReswap }

func (s Reswap) HeaderValue() (string, error) {
	if !SwapOption(s).Valid() {
		return "", &HeaderError{Header: HeaderReswap, Err: ErrInvalidHeaderValue}
	}
	return string(s), nil
}

// VaryOn declares by hand that the response depends on the given htmx
// request headers. Prefer AutoVary; VaryOn serves handlers outside it. The
// value is appended to any existing Vary.
func VaryOn(kinds ...Kind) Responder {
	return varyOn(kinds)
}

type varyOn []Kind

func (v varyOn) HeaderName() string { return headerVary }

func (v varyOn) HeaderValue() (string, error) {
	kinds := slices.DeleteFunc(slices.Clone(v), func(k Kind) bool { return !k.valid() })
	slices.Sort(kinds)
	return encodeVary(slices.Compact(kinds))
}
