package htmx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindStringAndHeader(t *testing.T) {
	tests := []struct {
		kind   Kind
		token  string
		header string
	}{
		{KindRequest, "hx-request", "HX-Request"},
		{KindTarget, "hx-target", "HX-Target"},
		{KindTrigger, "hx-trigger", "HX-Trigger"},
		{KindTriggerName, "hx-trigger-name", "HX-Trigger-Name"},
		{KindBoosted, "hx-boosted", "HX-Boosted"},
		{KindCurrentURL, "hx-current-url", "HX-Current-URL"},
		{KindHistoryRestoreRequest, "hx-history-restore-request", "HX-History-Restore-Request"},
		{KindPrompt, "hx-prompt", "HX-Prompt"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.token {
			t.Errorf("String() = %q, want %q", got, tt.token)
		}
		if got := tt.kind.Header(); got != tt.header {
			t.Errorf("Header() = %q, want %q", got, tt.header)
		}
	}

	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("unexpected String for invalid kind: %q", got)
	}
	if got := Kind(42).Header(); got != "" {
		t.Errorf("expected empty header for invalid kind, got %q", got)
	}
}

func TestDefaultAndAllKinds(t *testing.T) {
	want := []Kind{KindRequest, KindTarget, KindTrigger, KindTriggerName}
	if diff := cmp.Diff(want, DefaultKinds()); diff != "" {
		t.Fatalf("default kinds mismatch (-want +got):\n%s", diff)
	}
	all := AllKinds()
	if len(all) != int(kindCount) || all[0] != KindRequest || all[len(all)-1] != KindPrompt {
		t.Fatalf("unexpected AllKinds: %v", all)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"HX-Request", KindRequest},
		{"hx-trigger-name", KindTriggerName},
		{" current-url ", KindCurrentURL},
		{"PROMPT", KindPrompt},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Fatalf("ParseKind(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "hx-", "accept", "HX-Redirect"} {
		if _, err := ParseKind(bad); err == nil {
			t.Fatalf("ParseKind(%q): expected error", bad)
		}
	}
}
