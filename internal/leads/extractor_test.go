package leads

import (
	"testing"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name  string
		full  string
		first string
		last  string
	}{
		{"two tokens", "Alice Nguyen", "Alice", "Nguyen"},
		{"middle names collapse", "Juan Carlos de la Cruz", "Juan", "Cruz"},
		{"single token", "Madonna", "Madonna", ""},
		{"empty", "", "", ""},
		{"surrounding whitespace", "  Bob   Tran  ", "Bob", "Tran"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.full)
			if first != tt.first || last != tt.last {
				t.Errorf("got (%q, %q), want (%q, %q)", first, last, tt.first, tt.last)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"collapses whitespace", "Coatings\n\n  Engineer ", "Coatings Engineer"},
		{"strips zero-width characters", "Ali​ce Ngu‍yen", "Alice Nguyen"},
		{"keeps accents", "José Müller", "José Müller"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.in); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
