package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
)

type testItem struct {
	ID string
}

func testID(i testItem) string { return i.ID }

func makeTestItems(n int) []testItem {
	items := make([]testItem, n)
	for i := range items {
		items[i] = testItem{ID: fmt.Sprintf("item-%03d", i+1)}
	}
	return items
}

func TestCursorRoundTrip(t *testing.T) {
	for _, c := range []Cursor{
		{Type: "item", Value: "item-001"},
		{Type: "item", Value: "a:b:c"},
		{Type: "item", Value: ""},
		{Type: "", Value: "value+with/special=chars"},
	} {
		encoded := c.Encode()
		if strings.ContainsAny(encoded, "+/=") {
			t.Fatalf("encoded cursor %q is not URL-safe", encoded)
		}
		decoded, err := DecodeCursor(encoded)
		if err != nil {
			t.Fatalf("decode %q: %v", encoded, err)
		}
		if decoded != c {
			t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, c)
		}
	}
}

func TestDecodeCursor(t *testing.T) {
	if c, err := DecodeCursor(""); err != nil || c != (Cursor{}) {
		t.Fatalf("expected zero cursor for empty input, got %+v, %v", c, err)
	}
	for _, bad := range []string{"!!!invalid!!!", "dGVzdA", "abc def"} {
		if _, err := DecodeCursor(bad); !errors.Is(err, ErrInvalidCursor) {
			t.Fatalf("DecodeCursor(%q): expected ErrInvalidCursor, got %v", bad, err)
		}
	}
}

func TestDefaultLimit(t *testing.T) {
	tests := []struct{ in, want int }{{0, 20}, {-5, 20}, {1, 1}, {100, 100}}
	for _, tt := range tests {
		if got := (Params{Limit: tt.in}).DefaultLimit(); got != tt.want {
			t.Fatalf("DefaultLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPaginateWalksAllPages(t *testing.T) {
	items := makeTestItems(25)

	var seen []string
	cursor := Cursor{}
	pages := 0
	for {
		page := Paginate(items, cursor, 10, "item", testID)
		pages++
		for _, it := range page.Items {
			seen = append(seen, it.ID)
		}
		if page.Total != 25 {
			t.Fatalf("expected total 25, got %d", page.Total)
		}
		if page.Next == "" {
			break
		}
		next, err := DecodeCursor(page.Next)
		if err != nil {
			t.Fatalf("decode next: %v", err)
		}
		if next.Type != "item" {
			t.Fatalf("expected cursor type item, got %q", next.Type)
		}
		cursor = next
	}

	if pages != 3 || len(seen) != 25 || seen[24] != "item-025" {
		t.Fatalf("unexpected walk: %d pages, %d items", pages, len(seen))
	}
}

func TestPaginatePrevCursor(t *testing.T) {
	items := makeTestItems(30)

	first := Paginate(items, Cursor{}, 10, "item", testID)
	if first.Prev != "" {
		t.Fatalf("expected no prev on first page, got %q", first.Prev)
	}

	second := Paginate(items, Cursor{Type: "item", Value: "item-010"}, 10, "item", testID)
	if prev, _ := DecodeCursor(second.Prev); prev.Value != "" {
		t.Fatalf("expected prev of page two to point at the start, got %+v", prev)
	}

	third := Paginate(items, Cursor{Type: "item", Value: "item-020"}, 10, "item", testID)
	if prev, _ := DecodeCursor(third.Prev); prev.Value != "item-010" {
		t.Fatalf("expected prev of page three to follow item-010, got %+v", prev)
	}
	if third.Next != "" {
		t.Fatalf("expected no next on last page, got %q", third.Next)
	}
}

func TestContains(t *testing.T) {
	items := makeTestItems(3)
	if !Contains(items, "item-002", testID) || Contains(items, "item-009", testID) {
		t.Fatal("unexpected Contains result")
	}
}

func TestLinksURL(t *testing.T) {
	l := Links{Path: "/fragments/items", Query: url.Values{"category": {"tools"}}, Limit: 5}

	if got := l.URL(""); got != "/fragments/items?category=tools&limit=5" {
		t.Fatalf("unexpected first page URL %q", got)
	}
	if got := l.URL("abc"); got != "/fragments/items?category=tools&cursor=abc&limit=5" {
		t.Fatalf("unexpected URL %q", got)
	}
	if got := (Links{Path: "/items"}).URL(""); got != "/items" {
		t.Fatalf("expected bare path, got %q", got)
	}
	if l.Query.Has("cursor") {
		t.Fatal("URL must not modify the preserved query")
	}
}

func TestHeader(t *testing.T) {
	l := Links{Path: "/items", Limit: 10}
	page := Paginate(makeTestItems(30), Cursor{Type: "item", Value: "item-010"}, 10, "item", testID)

	link := Header(l, page)
	if !strings.Contains(link, `rel="next"`) || !strings.Contains(link, `rel="prev"`) {
		t.Fatalf("expected next and prev relations, got %q", link)
	}
	if !strings.HasPrefix(link, "</items?cursor=") {
		t.Fatalf("unexpected link %q", link)
	}
	if Header(l, Page[testItem]{}) != "" {
		t.Fatal("expected empty header without cursors")
	}
}
