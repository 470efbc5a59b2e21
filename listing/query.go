package listing

import "net/url"

// Query parameter names used to carry a State in a URL.
const (
	ParamTag   = "tag"
	ParamOrder = "order"

	orderAsc = "asc"
)

// ParseQuery builds a State from URL query values. Unknown or empty values
// are ignored and duplicated tags collapse into one.
func ParseQuery(q url.Values) *State {
	s := NewState()
	for _, t := range q[ParamTag] {
		if t != "" {
			s.selected[t] = struct{}{}
		}
	}
	s.ascending = q.Get(ParamOrder) == orderAsc
	return s
}

// Query encodes s. The default order is omitted so the empty state
// encodes to an empty query.
func (s *State) Query() url.Values {
	q := url.Values{}
	for _, t := range s.Selected() {
		q.Add(ParamTag, t)
	}
	if s.ascending {
		q.Set(ParamOrder, orderAsc)
	}
	return q
}

// Href returns path with s encoded as its query string.
func (s *State) Href(path string) string {
	if enc := s.Query().Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// ToggleTagHref returns the link for the state after toggling tag.
// s itself is left unchanged.
func (s *State) ToggleTagHref(path, tag string) string {
	next := s.Clone()
	next.ToggleTag(tag)
	return next.Href(path)
}

// ToggleSortHref returns the link for the state with the direction flipped.
func (s *State) ToggleSortHref(path string) string {
	next := s.Clone()
	next.ToggleSortDirection()
	return next.Href(path)
}
