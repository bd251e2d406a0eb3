package htmx

import (
	"fmt"
	"strings"
)

// Kind identifies an htmx request header whose use can be tracked for Vary.
// The declaration order is the canonical order used when rendering Vary.
type Kind uint8

const (
	KindRequest Kind = iota
	KindTarget
	KindTrigger
	KindTriggerName
	KindBoosted
	KindCurrentURL
	KindHistoryRestoreRequest
	KindPrompt

	kindCount
)

var kindHeaders = [kindCount]string{
	KindRequest:               HeaderRequest,
	KindTarget:                HeaderTarget,
	KindTrigger:               HeaderTrigger,
	KindTriggerName:           HeaderTriggerName,
	KindBoosted:               HeaderBoosted,
	KindCurrentURL:            HeaderCurrentURL,
	KindHistoryRestoreRequest: HeaderHistoryRestoreRequest,
	KindPrompt:                HeaderPrompt,
}

var kindTokens = [kindCount]string{
	KindRequest:               "hx-request",
	KindTarget:                "hx-target",
	KindTrigger:               "hx-trigger",
	KindTriggerName:           "hx-trigger-name",
	KindBoosted:               "hx-boosted",
	KindCurrentURL:            "hx-current-url",
	KindHistoryRestoreRequest: "hx-history-restore-request",
	KindPrompt:                "hx-prompt",
}

// String returns the lowercase header name used as a Vary token.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindTokens[k]
}

// Header returns the canonical request header name for k.
func (k Kind) Header() string {
	if !k.valid() {
		return ""
	}
	return kindHeaders[k]
}

func (k Kind) valid() bool {
	return k < kindCount
}

// DefaultKinds returns the kinds tracked by AutoVary when none are configured:
// HX-Request, HX-Target, HX-Trigger and HX-Trigger-Name.
func DefaultKinds() []Kind {
	return []Kind{KindRequest, KindTarget, KindTrigger, KindTriggerName}
}

// AllKinds returns every trackable kind in canonical order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind resolves a header name such as "HX-Trigger-Name", "hx-trigger-name"
// or "trigger-name" to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "hx-") {
		name = "hx-" + name
	}
	for k, token := range kindTokens {
		if token == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("htmx: unknown header kind %q", s)
}
