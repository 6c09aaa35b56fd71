package lexicon

import (
	"testing"

	"github.com/layaalk/PVI-AU/phonetic"
)

func TestPhoneEditDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "aw", "aw", 0},
		{"empty_both", "", "", 0},
		{"empty_a", "", "aj", 2},
		{"empty_b", "ɔ", "", 1},
		{"substitution", "aj", "aɪ", 1},
		{"insertion", "ɫ", "ɫ̩", 1},
		{"deletion", "tʷ", "t", 1},
		{"ligature", "ʧ", "tʃ", 2},
		{"tie_bar", "a͡ʊ", "aʊ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhoneEditDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("PhoneEditDistance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	inv := phonetic.NewInventory("tʃ", "k", "aj", "ow")

	tests := []struct {
		phone string
		want  string
	}{
		{"aɪ", "aj"},
		{"oʊ", "ow"},
		{"k", "k"},
		{"tʃʰ", "tʃ"},
	}
	for _, tt := range tests {
		if got := Nearest(tt.phone, inv); got != tt.want {
			t.Errorf("Nearest(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}

	if got := Nearest("k", phonetic.Inventory{}); got != "" {
		t.Errorf("Nearest on empty inventory = %q, want empty", got)
	}
}
