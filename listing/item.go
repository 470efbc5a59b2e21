// Package listing filters and sorts tagged, dated content for listing pages.
//
// An Engine owns an immutable collection plus a mutable State (the selected
// tags and the sort direction). Views are derived on demand and never stored,
// so every toggle is immediately reflected by the next call to View.
package listing

// Item is the part of a content entry the engine reads.
// An empty Date means "no date" and an empty tag means "no tag".
type Item struct {
	ID    string
	Title string
	Date  string
	Tags  []string
}

// ListingItem returns the item itself, so any type embedding Item is Listable.
func (i Item) ListingItem() Item {
	return i
}

// Listable is implemented by anything that can be filtered and sorted.
type Listable interface {
	ListingItem() Item
}

// TagUniverse returns every distinct tag across items in first-seen order.
// The empty tag is skipped.
func TagUniverse[T Listable](items []T) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range items {
		for _, t := range it.ListingItem().Tags {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
