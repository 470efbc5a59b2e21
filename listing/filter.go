package listing

// Match reports whether it passes the tag filter in s.
// An empty selection matches everything; otherwise one shared tag is enough.
func Match(s *State, it Item) bool {
	if len(s.selected) == 0 {
		return true
	}
	for _, t := range it.Tags {
		if s.IsSelected(t) {
			return true
		}
	}
	return false
}

// Filter returns the items matching s, in their input order.
func Filter[T Listable](items []T, s *State) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(s, it.ListingItem()) {
			out = append(out, it)
		}
	}
	return out
}
