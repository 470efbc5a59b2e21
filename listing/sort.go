package listing

import (
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateKey is a parsed date. ok is false for missing or unparseable dates.
type dateKey struct {
	t  time.Time
	ok bool
}

func parseDate(s string) dateKey {
	s = strings.TrimSpace(s)
	if s == "" {
		return dateKey{}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return dateKey{}
	}
	return dateKey{t: t, ok: true}
}

// compareKeys orders dated keys by direction and always puts undated keys last.
func compareKeys(a, b dateKey, asc bool) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return 1
	case !b.ok:
		return -1
	}
	c := a.t.Compare(b.t)
	if !asc {
		c = -c
	}
	return c
}

// Compare orders a and b by date. Items without a usable date compare
// greater than any dated item in both directions and equal to each other.
func Compare(a, b Item, asc bool) int {
	return compareKeys(parseDate(a.Date), parseDate(b.Date), asc)
}

// ParseDate parses an ISO-ish date string. It reports false for empty or
// unrecognised input, which the engine treats as "no date".
func ParseDate(s string) (time.Time, bool) {
	k := parseDate(s)
	return k.t, k.ok
}

type keyed[T any] struct {
	key  dateKey
	item T
}

// Sort returns a stably sorted copy of items. With asc false the newest
// item comes first.
func Sort[T Listable](items []T, asc bool) []T {
	ks := make([]keyed[T], len(items))
	for i, it := range items {
		ks[i] = keyed[T]{key: parseDate(it.ListingItem().Date), item: it}
	}
	slices.SortStableFunc(ks, func(a, b keyed[T]) int {
		return compareKeys(a.key, b.key, asc)
	})
	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out
}
