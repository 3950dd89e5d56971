package advisor

import "testing"

func TestKeywordCategory(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Uber ride downtown", "Transport"},
		{"Pizza with friends", "Food"},
		{"GROCERY run", "Food"},
		{"Concert tickets", "Fun"},
		{"Amazon order", "Shopping"},
		{"lol", "Other"},
		{"", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := KeywordCategory(tt.description); got != tt.want {
				t.Errorf("KeywordCategory(%q) = %v, want %v", tt.description, got, tt.want)
			}
		})
	}
}

func TestKeywordCategoryFirstListWins(t *testing.T) {
	// "bus to the restaurant" hits both Food and Transport words; the
	// Food list is checked first.
	if got := KeywordCategory("bus to the restaurant"); got != "Food" {
		t.Errorf("KeywordCategory() = %v, want Food", got)
	}
}

func TestCanonicalCategory(t *testing.T) {
	tests := []struct {
		answer string
		want   string
		wantOK bool
	}{
		{"Food", "Food", true},
		{"food", "Food", true},
		{" Transport. ", "Transport", true},
		{"Groceries", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, ok := canonicalCategory(tt.answer)
			if ok != tt.wantOK {
				t.Fatalf("canonicalCategory(%q) ok = %v, want %v", tt.answer, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("canonicalCategory(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}
