package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Page is one page of a listing.
type Page[T any] struct {
	Items []T
	Total int
	// Next and Prev are encoded cursors; empty when there is no such page.
	Next string
	Prev string
}

// Paginate returns the page of at most limit items following cursor.
// Unknown cursor values restart from the first item; callers that must
// reject them check with Contains first.
func Paginate[T any](items []T, cursor Cursor, limit int, cursorType string, id func(T) string) Page[T] {
	total := len(items)
	start := 0
	if cursor.Value != "" {
		if i := indexOf(items, cursor.Value, id); i >= 0 {
			start = i + 1
		}
	}
	end := min(start+limit, total)
	page := Page[T]{Items: items[start:end], Total: total}

	if end < total && end > start {
		page.Next = Cursor{Type: cursorType, Value: id(items[end-1])}.Encode()
	}
	switch {
	case start == 0:
	case start <= limit:
		page.Prev = Cursor{Type: cursorType}.Encode()
	default:
		page.Prev = Cursor{Type: cursorType, Value: id(items[start-limit-1])}.Encode()
	}
	return page
}

// Contains reports whether an item with the given id exists.
func Contains[T any](items []T, value string, id func(T) string) bool {
	return indexOf(items, value, id) >= 0
}

func indexOf[T any](items []T, value string, id func(T) string) int {
	for i, item := range items {
		if id(item) == value {
			return i
		}
	}
	return -1
}

// Links builds navigation URLs for a listing served at Path.
type Links struct {
	Path  string
	Query url.Values // preserved in every URL
	Limit int        // written as the limit parameter when positive
}

// URL returns the address of the page starting after cursor. An empty cursor
// yields the first page.
func (l Links) URL(cursor string) string {
	q := cloneValues(l.Query)
	if l.Limit > 0 {
		q.Set("limit", strconv.Itoa(l.Limit))
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if len(q) == 0 {
		return l.Path
	}
	return l.Path + "?" + q.Encode()
}

// Header renders the RFC 8288 Link header value for p.
func Header[T any](l Links, p Page[T]) string {
	var links []string
	if p.Next != "" {
		links = append(links, fmt.Sprintf(`<%s>; rel="next"`, l.URL(p.Next)))
	}
	if p.Prev != "" {
		links = append(links, fmt.Sprintf(`<%s>; rel="prev"`, l.URL(p.Prev)))
	}
	return strings.Join(links, ", ")
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
