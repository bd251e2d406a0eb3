package htmx

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimpleResponders(t *testing.T) {
	tests := []struct {
		r     Responder
		name  string
		value string
	}{
		{PushURL("/items?cursor=abc"), HeaderPushURL, "/items?cursor=abc"},
		{Redirect("/login"), HeaderRedirect, "/login"},
		{ReplaceURL("/items"), HeaderReplaceURL, "/items"},
		{Retarget("#errors"), HeaderRetarget, "#errors"},
		{Reselect("#content"), HeaderReselect, "#content"},
		{Refresh(true), HeaderRefresh, "true"},
		{Refresh(false), HeaderRefresh, "false"},
		{Reswap(SwapOuterHTML), HeaderReswap, "outerHTML"},
	}

	for _, tt := range tests {
		if got := tt.r.HeaderName(); got != tt.name {
			t.Errorf("HeaderName() = %q, want %q", got, tt.name)
		}
		got, err := tt.r.HeaderValue()
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if got != tt.value {
			t.Errorf("%s: HeaderValue() = %q, want %q", tt.name, got, tt.value)
		}
	}
}

func TestRespondersRejectInvalidValues(t *testing.T) {
	for _, r := range []Responder{
		PushURL("/items\r\nSet-Cookie: x=1"),
		Retarget("#a\x00"),
		Reswap("sideways"),
		Trigger{Events: []Event{NewEvent("bad\nname")}},
	} {
		_, err := r.HeaderValue()
		var he *HeaderError
		if !errors.As(err, &he) || he.Header != r.HeaderName() {
			t.Fatalf("%s: expected HeaderError, got %v", r.HeaderName(), err)
		}
	}
}

func TestRespondAppliesAllOrNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Respond(rec, PushURL("/ok"), Retarget("#a\x7f"))
	if !errors.Is(err, ErrInvalidHeaderValue) {
		t.Fatalf("expected ErrInvalidHeaderValue, got %v", err)
	}
	if len(rec.Header()) != 0 {
		t.Fatalf("expected no headers on error, got %v", rec.Header())
	}
}

func TestRespondSetsHeadersAndAppendsVary(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set(HeaderPushURL, "/old")
	rec.Header().Set("Vary", "Accept")

	err := Respond(rec,
		PushURL("/new"),
		PushURL(""),
		VaryOn(KindTarget, KindRequest, KindTarget, Kind(99)),
		TriggerEvents("items-loaded"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.Header().Values(HeaderPushURL); !cmp.Equal(got, []string{"/new"}) {
		t.Fatalf("expected HX-Push-Url replaced, got %q", got)
	}
	if diff := cmp.Diff([]string{"Accept", "hx-request, hx-target"}, rec.Header().Values("Vary")); diff != "" {
		t.Fatalf("Vary mismatch (-want +got):\n%s", diff)
	}
	if got := rec.Header().Get(HeaderTrigger); got != "items-loaded" {
		t.Fatalf("unexpected HX-Trigger %q", got)
	}
}

func TestVaryOnEmpty(t *testing.T) {
	v, err := VaryOn().HeaderValue()
	if err != nil || v != "" {
		t.Fatalf("expected empty value, got %q, %v", v, err)
	}
}

func TestTriggerModes(t *testing.T) {
	tests := []struct {
		mode TriggerMode
		want string
	}{
		{TriggerNormal, HeaderTrigger},
		{TriggerAfterSettle, HeaderTriggerAfterSettle},
		{TriggerAfterSwap, HeaderTriggerAfterSwap},
	}
	for _, tt := range tests {
		if got := (Trigger{Mode: tt.mode}).HeaderName(); got != tt.want {
			t.Fatalf("mode %d: header %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestTriggerValues(t *testing.T) {
	if v, err := (Trigger{}).HeaderValue(); err != nil || v != "" {
		t.Fatalf("expected empty trigger to be omitted, got %q, %v", v, err)
	}

	v, err := TriggerEvents("saved", "closed").HeaderValue()
	if err != nil || v != "saved, closed" {
		t.Fatalf("unexpected names value %q, %v", v, err)
	}

	withData, err := NewEventWithData("greeted", map[string]string{"name": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err = Trigger{Mode: TriggerAfterSwap, Events: []Event{withData, NewEvent("closed")}}.HeaderValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(v), &got); err != nil {
		t.Fatalf("expected JSON object, got %q: %v", v, err)
	}
	want := map[string]any{"greeted": map[string]any{"name": "Ada"}, "closed": nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("trigger payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNewEventWithDataRejectsUnencodable(t *testing.T) {
	if _, err := NewEventWithData("bad", math.Inf(1)); err == nil {
		t.Fatal("expected JSON encoding error")
	}
}

func TestLocation(t *testing.T) {
	v, err := Location{Path: "/items"}.HeaderValue()
	if err != nil || v != "/items" {
		t.Fatalf("expected bare path, got %q, %v", v, err)
	}

	v, err = Location{Path: "/items", Options: &LocationOptions{}}.HeaderValue()
	if err != nil || v != "/items" {
		t.Fatalf("expected bare path for empty options, got %q, %v", v, err)
	}

	v, err = Location{
		Path:    "/items/item-001",
		Options: &LocationOptions{Target: "#detail", Swap: SwapInnerHTML, Values: map[string]any{"full": true}},
	}.HeaderValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(v), &got); err != nil {
		t.Fatalf("expected JSON, got %q: %v", v, err)
	}
	want := map[string]any{
		"path":   "/items/item-001",
		"target": "#detail",
		"swap":   "innerHTML",
		"values": map[string]any{"full": true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("location mismatch (-want +got):\n%s", diff)
	}
}

func TestLocationRejectsUnknownSwap(t *testing.T) {
	_, err := Location{Path: "/", Options: &LocationOptions{Swap: "sideways"}}.HeaderValue()
	var he *HeaderError
	if !errors.As(err, &he) || he.Header != HeaderLocation {
		t.Fatalf("expected HeaderError for HX-Location, got %v", err)
	}
}

func TestSwapOptionValid(t *testing.T) {
	for _, s := range []SwapOption{SwapInnerHTML, SwapOuterHTML, SwapBeforeBegin, SwapAfterBegin,
		SwapBeforeEnd, SwapAfterEnd, SwapDelete, SwapNone} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if SwapOption("innerhtml").Valid() {
		t.Fatal("swap options are case-sensitive")
	}
}

func TestEncodeVary(t *testing.T) {
	v, err := encodeVary(nil)
	if err != nil || v != "" {
		t.Fatalf("expected empty value, got %q, %v", v, err)
	}
	v, err = encodeVary([]Kind{KindRequest, KindPrompt})
	if err != nil || v != "hx-request, hx-prompt" {
		t.Fatalf("unexpected value %q, %v", v, err)
	}
}

func TestHeaderErrorMessage(t *testing.T) {
	err := &HeaderError{Header: "Vary", Err: ErrInvalidHeaderValue}
	if err.Error() != "htmx: Vary: invalid header value" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestApplyToPlainHeader(t *testing.T) {
	h := http.Header{}
	if err := Apply(h, Refresh(true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Get(HeaderRefresh) != "true" {
		t.Fatalf("expected HX-Refresh true, got %v", h)
	}
}
