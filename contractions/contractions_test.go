package contractions

import "testing"

func TestExpand(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"don't stop", "do not stop"},
		{"I can't do it", "I cannot do it"},
		{"Don't", "do not"}, // case-insensitive, expansion as written
		{"don’t stop", "do not stop"}, // curly apostrophe
		{"gonna be late", "going to be late"},
		{"it's 3:30", "it is 3:30"},
		{"y'all won't", "you all will not"},
		{"jan. 15", "january 15"},
		{"Sept. 2024", "september 2024"},
		{"nothing to expand", "nothing to expand"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Expand(tt.in); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// A contraction inside a longer word is left alone.
func TestExpandWordBoundary(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"contracting", "contracting"},
		{"wont", "wont"}, // no apostrophe, not the contraction
		{"janitor", "janitor"}, // not the dotted abbreviation
	}
	for _, tt := range tests {
		if got := Expand(tt.in); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
