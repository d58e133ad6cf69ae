package core

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestNamePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Pratik Preetam", "PRAPRE"},
		{"Jo Li", "JOXLIX"},     // short names padded with X
		{"Madonna", "MADONN"},   // single word: first six letters
		{"Bo", "BOXXXX"},        // short single word padded to six
		{"Anna Maria Gomez", "ANNGOM"}, // first and last name only
		{"", "XXXXXX"},
	}
	for _, tt := range tests {
		if got := NamePrefix(tt.name); got != tt.want {
			t.Errorf("NamePrefix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNamePrefix_MultibyteNames(t *testing.T) {
	t.Parallel()

	// Slicing must respect rune boundaries; "É" is two bytes in UTF-8.
	tests := []struct {
		name string
		want string
	}{
		{"Abé Zola", "ABÉZOL"},
		{"Émile Durand", "ÉMIDUR"},
		{"Åse", "ÅSEXXX"},
		{"Žofia Černá", "ŽOFČER"},
	}
	for _, tt := range tests {
		got := NamePrefix(tt.name)
		if !utf8.ValidString(got) {
			t.Errorf("NamePrefix(%q) = %q is not valid UTF-8", tt.name, got)
		}
		if got != tt.want {
			t.Errorf("NamePrefix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNameBasedID(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000123, 0)
	id := NameBasedID("Pratik Preetam", now)
	if id != "PRAPRE0123" {
		t.Errorf("NameBasedID = %q, want PRAPRE0123", id)
	}
	if !strings.HasPrefix(id, NamePrefix("Pratik Preetam")) {
		t.Errorf("id %q does not start with the name prefix", id)
	}
}

func TestRandomID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := RandomID()
		if len(id) != 8 {
			t.Fatalf("RandomID length = %d, want 8", len(id))
		}
		if id != strings.ToUpper(id) {
			t.Fatalf("RandomID %q is not uppercase", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Fatalf("RandomID produced no variation over 100 draws")
	}
}
