package spam

import (
	"regexp"
	"unicode/utf8"

	"issuegate/internal/core/normalize"
)

// normalize.Text strips "#", so the issue number may arrive bare
var reDuplicateOf = regexp.MustCompile(`^duplicate of\s+#?\d+$`)

// fillerAnswers are the tokens authors type to skip a field.
// "no response" is deliberately absent: GitHub inserts "_No response_" for
// skipped optional fields and flagging it caused false positives. Repeat
// counting still skips it, see maxRepeat
var fillerAnswers = map[string]struct{}{
	"n/a":  {},
	"na":   {},
	"none": {},
	"nil":  {},
	"-":    {},
	"--":   {},
	".":    {},
	"…":    {},
}

// isMinimalContent reports whether the normalized answer carries no real
// information: empty, a bare duplicate cross-reference, a filler token,
// emoji-only, or at most ten characters
func isMinimalContent(s string) bool {
	t := normalize.Text(s)
	if t == "" {
		return true
	}
	if reDuplicateOf.MatchString(t) {
		return true
	}
	if _, ok := fillerAnswers[t]; ok {
		return true
	}
	if isEmojiOnly(t) {
		return true
	}
	return utf8.RuneCountInString(t) <= 10
}
