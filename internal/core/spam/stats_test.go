package spam

import (
	"math"
	"testing"
)

func TestShannonEntropy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "empty", in: "", want: 0},
		{name: "single rune", in: "aaaa", want: 0},
		{name: "two runes even", in: "abab", want: 1},
		{name: "four runes even", in: "abcd", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shannonEntropy(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("shannonEntropy(%q) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}

	t.Run("natural text clears default floor", func(t *testing.T) {
		if got := shannonEntropy("the quick brown fox jumps over the lazy dog"); got < 3 {
			t.Fatalf("expected entropy >= 3, got %f", got)
		}
	})
}

func TestUniqueTokenRatio(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "empty", in: "", want: 0},
		{name: "punctuation only", in: "... ---", want: 0},
		{name: "all distinct", in: "one two three four", want: 1},
		{name: "half distinct", in: "spam ham spam ham", want: 0.5},
		{name: "all same", in: "spam spam spam spam", want: 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueTokenRatio(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("uniqueTokenRatio(%q) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	t.Run("issue numbers collapse", func(t *testing.T) {
		a := canonicalize("Duplicate of #27058")
		b := canonicalize("duplicate of #27059")
		if a != b {
			t.Fatalf("cross-references should share a key: %q vs %q", a, b)
		}
	})

	t.Run("tracker urls collapse", func(t *testing.T) {
		a := canonicalize("see https://github.com/mdn/content/issues/1 please")
		b := canonicalize("See https://github.com/mdn/content/issues/2 please")
		if a != b {
			t.Fatalf("tracker URLs should share a key: %q vs %q", a, b)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"Duplicate of #27058",
			"see https://github.com/mdn/content/issues/1",
			"plain answer with no references",
			"",
		}
		for _, in := range inputs {
			once := canonicalize(in)
			twice := canonicalize(once)
			if once != twice {
				t.Fatalf("canonicalize not idempotent for %q: %q -> %q", in, once, twice)
			}
		}
	})
}

func TestMaxRepeat(t *testing.T) {
	t.Run("counts canonical duplicates", func(t *testing.T) {
		answers := []string{"Duplicate of #1", "duplicate of #2", "something else entirely ok"}
		if got := maxRepeat(answers, false); got != 2 {
			t.Fatalf("maxRepeat = %d, want 2", got)
		}
	})

	t.Run("skips empty and no response", func(t *testing.T) {
		answers := []string{"", "_No response_", "_No response_"}
		if got := maxRepeat(answers, false); got != 0 {
			t.Fatalf("maxRepeat = %d, want 0", got)
		}
	})

	t.Run("strong section exempts short keys", func(t *testing.T) {
		answers := []string{"same thing", "same thing"}
		if got := maxRepeat(answers, true); got != 0 {
			t.Fatalf("short boilerplate should not count with a strong section, got %d", got)
		}
		if got := maxRepeat(answers, false); got != 2 {
			t.Fatalf("without a strong section duplicates count, got %d", got)
		}
	})
}

func TestStrongSections(t *testing.T) {
	cfg := Default()
	long := detailedAnswer // > 200 normalized chars

	tests := []struct {
		name    string
		answers []string
		want    int
	}{
		{name: "none", answers: []string{"n/a", "short answer"}, want: 0},
		{name: "by length", answers: []string{long}, want: 1},
		{
			name: "by token count",
			answers: []string{"a b c d e f g h i j k l m n o p q r s t " +
				"u v w x y z aa bb cc dd ee ff gg hh ii jj kk ll mm nn oo"},
			want: 1,
		},
		{name: "mixed", answers: []string{long, "n/a"}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strongSections(tt.answers, cfg); got != tt.want {
				t.Fatalf("strongSections = %d, want %d", got, tt.want)
			}
		})
	}
}
