package listing

import "slices"

// Mode selects how tag chips behave when rendered.
type Mode int

const (
	// ModeStatic chips are display only.
	ModeStatic Mode = iota
	// ModeToggleable chips link to the state with their tag toggled.
	ModeToggleable
)

// Chip is the rendering projection of one tag.
type Chip struct {
	Tag      string
	Selected bool
	Href     string // empty in ModeStatic
}

// Engine derives filtered, sorted views of a fixed collection.
// It is not safe for concurrent use; build one per request or view.
type Engine[T Listable] struct {
	items    []T
	universe []string
	state    *State
}

// Option configures an Engine built by New.
type Option func(*options)

type options struct {
	universe    []string
	hasUniverse bool
}

// WithUniverse supplies a tag universe already derived from the same items,
// such as one held by a cache, so New does not recompute it.
func WithUniverse(universe []string) Option {
	return func(o *options) {
		o.universe = universe
		o.hasUniverse = true
	}
}

// New returns an Engine over items. A nil state starts from NewState.
func New[T Listable](items []T, state *State, opts ...Option) *Engine[T] {
	if state == nil {
		state = NewState()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine[T]{state: state}
	if o.hasUniverse {
		e.items = slices.Clone(items)
		e.universe = slices.Clone(o.universe)
		return e
	}
	e.Load(items)
	return e
}

// Load replaces the collection and re-derives the tag universe.
// The selection is kept.
func (e *Engine[T]) Load(items []T) {
	e.items = slices.Clone(items)
	e.universe = TagUniverse(e.items)
}

// Universe returns all selectable tags in first-seen order.
func (e *Engine[T]) Universe() []string {
	return slices.Clone(e.universe)
}

// View returns the items passing the current filter, in the current order.
func (e *Engine[T]) View() []T {
	return Sort(Filter(e.items, e.state), e.state.ascending)
}

// Len returns the size of the full collection.
func (e *Engine[T]) Len() int {
	return len(e.items)
}

// Ascending reports the current sort direction.
func (e *Engine[T]) Ascending() bool {
	return e.state.ascending
}

// Selected returns the selected tags in lexical order.
func (e *Engine[T]) Selected() []string {
	return e.state.Selected()
}

// IsSelected reports whether tag is selected.
func (e *Engine[T]) IsSelected(tag string) bool {
	return e.state.IsSelected(tag)
}

// ToggleTag toggles tag in the selection. The empty tag is ignored.
func (e *Engine[T]) ToggleTag(tag string) {
	e.state.ToggleTag(tag)
}

// ToggleSortDirection flips the sort direction.
func (e *Engine[T]) ToggleSortDirection() {
	e.state.ToggleSortDirection()
}

// Reset clears the selection and restores newest-first order.
func (e *Engine[T]) Reset() {
	e.state.Reset()
}

// Chips returns one chip per universe tag.
func (e *Engine[T]) Chips(mode Mode, path string) []Chip {
	return e.TagChips(e.universe, mode, path)
}

// TagChips returns chips for an arbitrary tag list, such as one item's tags.
func (e *Engine[T]) TagChips(tags []string, mode Mode, path string) []Chip {
	return TagChips(e.state, tags, mode, path)
}

// TagChips builds chips for tags against s. A nil s is the empty state.
// Empty tags are skipped.
func TagChips(s *State, tags []string, mode Mode, path string) []Chip {
	if s == nil {
		s = NewState()
	}
	out := make([]Chip, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		c := Chip{Tag: t, Selected: s.IsSelected(t)}
		if mode == ModeToggleable {
			c.Href = s.ToggleTagHref(path, t)
		}
		out = append(out, c)
	}
	return out
}

// SortHref returns the link that flips the sort direction.
func (e *Engine[T]) SortHref(path string) string {
	return e.state.ToggleSortHref(path)
}

