package listing

import (
	"net/url"
	"reflect"
	"slices"
	"testing"
)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func scenario() []Item {
	return []Item{
		{ID: "1", Date: "2024-01-01", Tags: []string{"go"}},
		{ID: "2", Date: "2024-06-01", Tags: []string{"rust"}},
		{ID: "3", Tags: []string{"go", "rust"}},
	}
}

func TestScenario(t *testing.T) {
	e := New(scenario(), nil)

	if got, want := ids(e.View()), []string{"2", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("default view = %v, want %v", got, want)
	}

	e.ToggleTag("go")
	if got, want := ids(e.View()), []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("view with go = %v, want %v", got, want)
	}

	e.ToggleSortDirection()
	if got, want := ids(e.View()), []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascending view with go = %v, want %v", got, want)
	}

	e.ToggleTag("go")
	if got, want := ids(e.View()), []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ascending view = %v, want %v", got, want)
	}
}

func TestTagUniverse(t *testing.T) {
	items := []Item{
		{ID: "a", Tags: []string{"go", "", "web"}},
		{ID: "b"},
		{ID: "c", Tags: []string{"web", "rust", "go", ""}},
	}
	got := TagUniverse(items)
	want := []string{"go", "web", "rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagUniverse = %v, want %v", got, want)
	}
	if got := TagUniverse([]Item(nil)); len(got) != 0 {
		t.Errorf("TagUniverse(nil) = %v, want empty", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		tags     []string
		want     bool
	}{
		{"empty selection tagged", nil, []string{"go"}, true},
		{"empty selection untagged", nil, nil, true},
		{"one shared tag", []string{"go"}, []string{"go", "web"}, true},
		{"or across selection", []string{"rust", "web"}, []string{"go", "web"}, true},
		{"no shared tag", []string{"rust"}, []string{"go", "web"}, false},
		{"untagged with selection", []string{"go"}, nil, false},
		{"only empty tags", []string{"go"}, []string{""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			for _, tag := range tt.selected {
				s.ToggleTag(tag)
			}
			if got := Match(s, Item{Tags: tt.tags}); got != tt.want {
				t.Errorf("Match(%v, %v) = %v, want %v", tt.selected, tt.tags, got, tt.want)
			}
		})
	}
}

func TestFilterEmptySelectionIsIdentity(t *testing.T) {
	items := []Item{
		{ID: "x", Date: "2020-01-01"},
		{ID: "y", Tags: []string{"go"}},
		{ID: "z", Date: "2019-01-01", Tags: []string{"rust"}},
	}
	got := Filter(items, NewState())
	if !reflect.DeepEqual(got, items) {
		t.Errorf("Filter with empty selection = %v, want %v", ids(got), ids(items))
	}
}

func TestToggleTagTwiceRestoresSelection(t *testing.T) {
	for _, tag := range []string{"go", "rust", ""} {
		s := NewState()
		s.ToggleTag("web")
		before := s.Selected()
		s.ToggleTag(tag)
		s.ToggleTag(tag)
		if got := s.Selected(); !reflect.DeepEqual(got, before) {
			t.Errorf("after toggling %q twice Selected = %v, want %v", tag, got, before)
		}
	}
}

func TestToggleEmptyTagIsNoop(t *testing.T) {
	s := NewState()
	s.ToggleTag("")
	if got := s.Selected(); len(got) != 0 {
		t.Errorf("Selected = %v, want empty", got)
	}
	if s.IsSelected("") {
		t.Error("empty tag should never be selected")
	}
}

func TestToggleSortDirection(t *testing.T) {
	s := NewState()
	if s.Ascending() {
		t.Fatal("new state should be descending")
	}
	s.ToggleSortDirection()
	if !s.Ascending() {
		t.Fatal("expected ascending after one toggle")
	}
	s.ToggleSortDirection()
	if s.Ascending() {
		t.Fatal("expected descending after two toggles")
	}
}

func TestSortStableOnEqualDates(t *testing.T) {
	items := []Item{
		{ID: "a", Date: "2024-03-01"},
		{ID: "b", Date: "2024-01-01"},
		{ID: "c", Date: "2024-03-01"},
		{ID: "d", Date: "2024-03-01"},
	}
	desc := ids(Sort(items, false))
	if want := []string{"a", "c", "d", "b"}; !reflect.DeepEqual(desc, want) {
		t.Errorf("descending = %v, want %v", desc, want)
	}
	asc := ids(Sort(items, true))
	if want := []string{"b", "a", "c", "d"}; !reflect.DeepEqual(asc, want) {
		t.Errorf("ascending = %v, want %v", asc, want)
	}
}

func TestSortDatelessLast(t *testing.T) {
	items := []Item{
		{ID: "none1"},
		{ID: "old", Date: "2020-01-01"},
		{ID: "bad", Date: "someday"},
		{ID: "new", Date: "2023-01-01"},
		{ID: "none2", Date: "   "},
	}
	for _, asc := range []bool{false, true} {
		got := ids(Sort(items, asc))
		tail := got[2:]
		if want := []string{"none1", "bad", "none2"}; !reflect.DeepEqual(tail, want) {
			t.Errorf("asc=%v: dateless tail = %v, want %v", asc, tail, want)
		}
	}
}

func TestSortDirectionFlip(t *testing.T) {
	items := []Item{
		{ID: "b", Date: "2022-05-01"},
		{ID: "a", Date: "2021-01-01"},
		{ID: "n"},
		{ID: "c", Date: "2023-09-30"},
	}
	desc := ids(Sort(items, false))
	asc := ids(Sort(items, true))

	dated := slices.Clone(desc[:3])
	slices.Reverse(dated)
	if !reflect.DeepEqual(asc[:3], dated) {
		t.Errorf("ascending dated = %v, want reverse of %v", asc[:3], desc[:3])
	}
	if desc[3] != "n" || asc[3] != "n" {
		t.Errorf("dateless item should be last in both directions: desc=%v asc=%v", desc, asc)
	}
}

func TestSortIsChronological(t *testing.T) {
	items := []Item{
		{ID: "jan", Date: "2024/1/5"},
		{ID: "later", Date: "2024-01-10"},
	}
	got := ids(Sort(items, true))
	if want := []string{"jan", "later"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ascending = %v, want %v", got, want)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := scenario()
	before := ids(items)
	_ = Sort(items, false)
	if got := ids(items); !reflect.DeepEqual(got, before) {
		t.Errorf("input reordered to %v, want %v", got, before)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		asc  bool
		want int
	}{
		{"2024-01-01", "2024-06-01", true, -1},
		{"2024-01-01", "2024-06-01", false, 1},
		{"2024-01-01", "2024-01-01", false, 0},
		{"", "2024-01-01", true, 1},
		{"", "2024-01-01", false, 1},
		{"2024-01-01", "", true, -1},
		{"", "", false, 0},
	}
	for _, tt := range tests {
		got := Compare(Item{Date: tt.a}, Item{Date: tt.b}, tt.asc)
		if got != tt.want {
			t.Errorf("Compare(%q, %q, asc=%v) = %d, want %d", tt.a, tt.b, tt.asc, got, tt.want)
		}
	}
}

type post struct {
	Item
	Slug string
}

func TestEngineGenericOverEmbeddingTypes(t *testing.T) {
	posts := []post{
		{Item: Item{ID: "1", Date: "2024-01-01", Tags: []string{"go"}}, Slug: "first"},
		{Item: Item{ID: "2", Date: "2024-02-01", Tags: []string{"web"}}, Slug: "second"},
	}
	e := New(posts, nil)
	e.ToggleTag("web")
	view := e.View()
	if len(view) != 1 || view[0].Slug != "second" {
		t.Errorf("View = %+v, want only second", view)
	}
}

func TestEngineLoadRederivesUniverse(t *testing.T) {
	e := New(scenario(), nil)
	e.ToggleTag("go")
	e.Load([]Item{{ID: "9", Tags: []string{"zig", "go"}}})
	if got, want := e.Universe(), []string{"zig", "go"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Universe = %v, want %v", got, want)
	}
	if !e.IsSelected("go") {
		t.Error("Load should keep the selection")
	}
	if e.Len() != 1 {
		t.Errorf("Len = %d, want 1", e.Len())
	}
}

func TestEngineWithUniverse(t *testing.T) {
	universe := []string{"rust", "go", "web"}
	e := New(scenario(), nil, WithUniverse(universe))
	if got := e.Universe(); !reflect.DeepEqual(got, universe) {
		t.Errorf("Universe = %v, want %v", got, universe)
	}
	universe[0] = "changed"
	if e.Universe()[0] != "rust" {
		t.Error("engine should not alias the supplied universe")
	}
	if got := len(e.Chips(ModeStatic, "/")); got != 3 {
		t.Errorf("Chips = %d, want 3", got)
	}
	e.Load([]Item{{ID: "9", Tags: []string{"zig"}}})
	if got, want := e.Universe(), []string{"zig"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Load should re-derive: Universe = %v, want %v", got, want)
	}
}

func TestEngineReset(t *testing.T) {
	e := New(scenario(), nil)
	e.ToggleTag("rust")
	e.ToggleSortDirection()
	e.Reset()
	if e.Ascending() || len(e.Selected()) != 0 {
		t.Errorf("after Reset ascending=%v selected=%v", e.Ascending(), e.Selected())
	}
}

func TestChips(t *testing.T) {
	e := New(scenario(), nil)
	e.ToggleTag("go")

	chips := e.Chips(ModeToggleable, "/blog/")
	want := []Chip{
		{Tag: "go", Selected: true, Href: "/blog/"},
		{Tag: "rust", Selected: false, Href: "/blog/?tag=go&tag=rust"},
	}
	if !reflect.DeepEqual(chips, want) {
		t.Errorf("Chips = %+v, want %+v", chips, want)
	}

	static := e.TagChips([]string{"rust", "", "go"}, ModeStatic, "/blog/")
	wantStatic := []Chip{{Tag: "rust"}, {Tag: "go", Selected: true}}
	if !reflect.DeepEqual(static, wantStatic) {
		t.Errorf("TagChips = %+v, want %+v", static, wantStatic)
	}
}

func TestQuery(t *testing.T) {
	q := url.Values{"tag": {"rust", "go", "", "go"}, "order": {"asc"}}
	s := ParseQuery(q)
	if got, want := s.Selected(), []string{"go", "rust"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Selected = %v, want %v", got, want)
	}
	if !s.Ascending() {
		t.Error("expected ascending")
	}
	if got, want := s.Href("/blog/"), "/blog/?order=asc&tag=go&tag=rust"; got != want {
		t.Errorf("Href = %q, want %q", got, want)
	}
	if got, want := NewState().Href("/blog/"), "/blog/"; got != want {
		t.Errorf("empty Href = %q, want %q", got, want)
	}
}

func TestToggleHrefsLeaveStateUnchanged(t *testing.T) {
	s := NewState()
	s.ToggleTag("go")

	if got, want := s.ToggleTagHref("/p/", "web"), "/p/?tag=go&tag=web"; got != want {
		t.Errorf("ToggleTagHref = %q, want %q", got, want)
	}
	if got, want := s.ToggleSortHref("/p/"), "/p/?order=asc&tag=go"; got != want {
		t.Errorf("ToggleSortHref = %q, want %q", got, want)
	}
	if s.IsSelected("web") || s.Ascending() {
		t.Error("href helpers must not mutate the state")
	}
}
