package toc

import "testing"

func TestRegisterAppendsInOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("First", 1)
	r.Register("Second", 2)

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Text != "First" || entries[0].Level != 1 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].AnchorID != "second" {
		t.Errorf("entries[1].AnchorID = %q, want %q", entries[1].AnchorID, "second")
	}
}

func TestRegisterDeduplicatesAnchors(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	first := r.Register("Overview", 1)
	second := r.Register("Overview", 2)
	third := r.Register("Overview", 3)

	if first != "overview" {
		t.Errorf("first anchor = %q, want %q", first, "overview")
	}
	if second != "overview-2" || third != "overview-3" {
		t.Errorf("duplicate anchors = %q, %q; want suffixed", second, third)
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{"Getting Started", "getting-started"},
		{"API & Usage!", "api-usage"},
		{"  spaced  out  ", "spaced-out"},
		{"CamelCase2", "camelcase2"},
		{"---", "section"},
		{"", "section"},
	}

	for _, tt := range tests {
		if got := slugify(tt.text); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
