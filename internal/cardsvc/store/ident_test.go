package store

import "testing"

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		want  bool
	}{
		{"plain word", "cards", true},
		{"underscore and digits", "card_table_2", true},
		{"uppercase", "Cards", true},
		{"empty", "", false},
		{"space", "my cards", false},
		{"quote", `cards"`, false},
		{"semicolon injection", "cards; DROP TABLE cards", false},
		{"dot qualified", "public.cards", false},
		{"dash", "card-table", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidIdentifier(tt.ident); got != tt.want {
				t.Errorf("ValidIdentifier(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	if got := SanitizeIdentifier("my_cards", DefaultTable); got != "my_cards" {
		t.Errorf("safe name replaced: got %q", got)
	}

	if got := SanitizeIdentifier("cards; --", DefaultTable); got != DefaultTable {
		t.Errorf("unsafe name kept: got %q", got)
	}

	if got := SanitizeIdentifier("", DefaultTable); got != DefaultTable {
		t.Errorf("empty name kept: got %q", got)
	}
}
