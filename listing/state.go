package listing

import "sort"

// State is the interactive part of a listing: which tags are selected and
// which way dates are ordered. The zero value is not usable; call NewState.
type State struct {
	selected  map[string]struct{}
	ascending bool
}

// NewState returns an empty selection ordered newest first.
func NewState() *State {
	return &State{selected: make(map[string]struct{})}
}

// ToggleTag selects tag if it is unselected and unselects it otherwise.
// The empty tag is ignored.
func (s *State) ToggleTag(tag string) {
	if tag == "" {
		return
	}
	if _, ok := s.selected[tag]; ok {
		delete(s.selected, tag)
		return
	}
	s.selected[tag] = struct{}{}
}

// ToggleSortDirection flips between newest first and oldest first.
func (s *State) ToggleSortDirection() {
	s.ascending = !s.ascending
}

// IsSelected reports whether tag is part of the current selection.
func (s *State) IsSelected(tag string) bool {
	_, ok := s.selected[tag]
	return ok
}

// Selected returns the selected tags in lexical order.
func (s *State) Selected() []string {
	out := make([]string, 0, len(s.selected))
	for t := range s.selected {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Ascending reports whether the oldest items come first.
func (s *State) Ascending() bool {
	return s.ascending
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := &State{
		selected:  make(map[string]struct{}, len(s.selected)),
		ascending: s.ascending,
	}
	for t := range s.selected {
		c.selected[t] = struct{}{}
	}
	return c
}

// Reset clears the selection and restores the default order.
func (s *State) Reset() {
	clear(s.selected)
	s.ascending = false
}
