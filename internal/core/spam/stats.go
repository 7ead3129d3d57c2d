package spam

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"issuegate/internal/core/normalize"
)

const (
	// placeholders substituted during canonicalization. Both survive
	// normalize.Text unchanged, which keeps canonicalization idempotent
	issueRefPlaceholder   = "issueref"
	trackerURLPlaceholder = "githuburl"

	// noResponseFiller is what GitHub inserts for a skipped optional field
	// once normalization strips the underscores from "_No response_"
	noResponseFiller = "no response"

	// shortCanonicalMax: repeated canonical keys at or below this length are
	// ignored once a strong section exists. Short boilerplate duplication is
	// not suspicious when a genuine answer is present
	shortCanonicalMax = 50
)

var (
	reIssueRef   = regexp.MustCompile(`#\d+`)
	reTrackerURL = regexp.MustCompile(`(?i)https?://github\.com/[^\s)]+`)
	reNonWord    = regexp.MustCompile(`\W+`)
)

// joinNormalized normalizes each answer, drops empties, and joins with spaces
func joinNormalized(answers []string) string {
	parts := make([]string, 0, len(answers))
	for _, a := range answers {
		if t := normalize.Text(a); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// shannonEntropy is the base-2 entropy of the rune distribution of s,
// 0 for empty input. Runes are visited in sorted order so the floating
// point sum is identical across runs
func shannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}
	runes := make([]rune, 0, len(freq))
	for r := range freq {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	h := 0.0
	for _, r := range runes {
		p := float64(freq[r]) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// uniqueTokenRatio is distinct tokens over total tokens, 0 when there are none
func uniqueTokenRatio(s string) float64 {
	total := 0
	seen := make(map[string]struct{})
	for _, tok := range reNonWord.Split(s, -1) {
		if tok == "" {
			continue
		}
		total++
		seen[tok] = struct{}{}
	}
	if total == 0 {
		return 0
	}
	return float64(len(seen)) / float64(total)
}

// strongSections counts answers long or verbose enough to indicate genuine
// content under cfg's thresholds
func strongSections(answers []string, cfg Config) int {
	n := 0
	for _, a := range answers {
		t := normalize.Text(a)
		if utf8.RuneCountInString(t) >= cfg.StrongSectionMinChars ||
			len(strings.Fields(t)) >= cfg.StrongSectionMinTokens {
			n++
		}
	}
	return n
}

// canonicalize builds the repeat-detection key for an answer: issue numbers
// and issue-tracker URLs become fixed placeholders before normalization, so
// near-identical cross-references collapse to the same key
func canonicalize(s string) string {
	s = reIssueRef.ReplaceAllString(s, " "+issueRefPlaceholder+" ")
	s = reTrackerURL.ReplaceAllString(s, " "+trackerURLPlaceholder+" ")
	return normalize.Text(s)
}

// maxRepeat tallies canonical keys across answers and returns the highest
// tally, 0 if no keys survive. Empty keys and the "no response" filler are
// skipped always; short keys are skipped only when a strong section exists
func maxRepeat(answers []string, hasStrong bool) int {
	counts := make(map[string]int, len(answers))
	best := 0
	for _, a := range answers {
		canon := canonicalize(a)
		if canon == "" || canon == noResponseFiller {
			continue
		}
		if hasStrong && utf8.RuneCountInString(canon) <= shortCanonicalMax {
			continue
		}
		counts[canon]++
		if counts[canon] > best {
			best = counts[canon]
		}
	}
	return best
}
