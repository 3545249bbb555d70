package service

import (
	"testing"
)

func TestSimilarityIdentical(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{
			name: "Simple phrase",
			s:    "Help rebuild the community center",
		},
		{
			name: "Single word",
			s:    "donate",
		},
		{
			name: "With punctuation",
			s:    "Save the whales! Now!!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.s, tt.s)
			if got <= 0.9 {
				t.Errorf("Similarity(%q, %q) = %v, want > 0.9", tt.s, tt.s, got)
			}
		})
	}
}

func TestSimilarityEmpty(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{
			name: "First empty",
			a:    "",
			b:    "some campaign text",
		},
		{
			name: "Second empty",
			a:    "some campaign text",
			b:    "",
		},
		{
			name: "Both empty",
			a:    "",
			b:    "",
		},
		{
			name: "Only punctuation",
			a:    "!!! ... ???",
			b:    "some campaign text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if got != 0 {
				t.Errorf("Similarity(%q, %q) = %v, want 0", tt.a, tt.b, got)
			}
		})
	}
}

func TestSimilarityCaseAndPunctuationInsensitive(t *testing.T) {
	got := Similarity("Help Local Families!", "help local families")
	if got <= 0.9 {
		t.Errorf("Similarity() = %v, want > 0.9 for case/punctuation variants", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "Medical fund for children in need"
	b := "Medical funds for the children in need"

	ab := Similarity(a, b)
	ba := Similarity(b, a)
	if ab != ba {
		t.Errorf("Similarity not symmetric: %v vs %v", ab, ba)
	}
}

func TestSimilarityNearDuplicate(t *testing.T) {
	got := Similarity(
		"Urgent medical fund for sick children",
		"Urgent medical funds for sick children!",
	)
	if got <= 0.8 {
		t.Errorf("Similarity() = %v, want > 0.8 for near-duplicates", got)
	}
}

func TestSimilarityUnrelated(t *testing.T) {
	got := Similarity(
		"Community garden project",
		"Quantum blockchain yield vault",
	)
	if got >= 0.2 {
		t.Errorf("Similarity() = %v, want < 0.2 for unrelated strings", got)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Lowercases",
			input: "HELP Kids",
			want:  "help kids",
		},
		{
			name:  "Strips punctuation",
			input: "act now!!!",
			want:  "act now",
		},
		{
			name:  "Collapses whitespace",
			input: "  act \t now \n please ",
			want:  "act now please",
		},
		{
			name:  "Keeps digits",
			input: "100% Profit",
			want:  "100 profit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeText(tt.input)
			if got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
