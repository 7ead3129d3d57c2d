// Package normalize provides deterministic text normalization for issue bodies.
//
// Two levels are exposed. StripComments only removes HTML comment blocks and
// is used for structural checks where case and punctuation still matter
// (blank, blockquote-only, image-only detection). Text is the stronger form
// used for all content comparisons: it additionally strips code spans,
// images, HTML tags, block-quote lines, markdown link syntax and punctuation,
// collapses whitespace, and lower-cases
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	reComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	reCodeSpan  = regexp.MustCompile("(?s)`{1,3}.*?`{1,3}")
	reMdImage   = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	reImgTag    = regexp.MustCompile(`(?i)<img[^>]*>`)
	reHTMLTag   = regexp.MustCompile(`<[^>]+>`)
	reQuoteLine = regexp.MustCompile(`(?m)^>\s?.*$`)
	reMdLink    = regexp.MustCompile(`\[([^\]]+)\]\(.*?\)`)
	reMdPunct   = regexp.MustCompile(`[*_#>~\-]`)
	reSpaceRun  = regexp.MustCompile(`\s+`)
)

// lower uses x/text so case folding is identical on every platform
var lower = cases.Lower(language.Und)

// CRLF rewrites Windows line endings to plain newlines
func CRLF(s string) string { return strings.ReplaceAll(s, "\r\n", "\n") }

// StripComments removes HTML comment blocks entirely, content included.
// This must run before any other processing so comment text never scores
func StripComments(s string) string {
	return reComment.ReplaceAllString(s, "")
}

// Text returns the strong normalized form of s used for content comparisons
func Text(s string) string {
	s = StripComments(s)
	s = reCodeSpan.ReplaceAllString(s, "")
	s = reMdImage.ReplaceAllString(s, "")
	s = reImgTag.ReplaceAllString(s, "")
	s = reHTMLTag.ReplaceAllString(s, " ") // a space, not deletion, to avoid token collision
	s = reQuoteLine.ReplaceAllString(s, " ")
	s = reMdLink.ReplaceAllString(s, "$1")
	s = reMdPunct.ReplaceAllString(s, " ")
	s = CollapseSpaces(s)
	return lower.String(s)
}

// CollapseSpaces converts whitespace runs to single spaces and trims
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reSpaceRun.ReplaceAllString(s, " "))
}
