package spam

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"issuegate/internal/core/normalize"
)

// fastPathScore is stamped on any verdict decided by a fast-path rule
const fastPathScore = 99

// minBodyRunes is the floor below which a trimmed body is "too short"
const minBodyRunes = 20

var (
	reWrapQuotes   = regexp.MustCompile("(?s)^['\"`]\\s*(.*?)\\s*['\"`]$")
	reMdImageLink  = regexp.MustCompile(`(?i)!\[[^\]]*\]\(\s*https?://[^)\s]+(?:\s+"[^"]*")?\s*\)`)
	reMdImageAny   = regexp.MustCompile(`(?i)!\[[^\]]*\]\(\s*https?://[^)]+\)`)
	reMdLinkHTTP   = regexp.MustCompile(`(?i)\[[^\]]*\]\(\s*https?://[^)\s]+(?:\s+"[^"]*")?\s*\)`)
	reMdLinkTarget = regexp.MustCompile(`\[[^\]]*\]\((https?://[^)\s]+)\)`)
	reRawURL       = regexp.MustCompile(`(?i)https?://[^\s)]+`)
	rePunctRun     = regexp.MustCompile(`[\s.,;:!?"'(){}\[\]<>-]+`)
	reLinkedImg    = regexp.MustCompile(`(?is)<a[^>]*>\s*<img[^>]*>\s*</a>`)
	reImgTag       = regexp.MustCompile(`(?i)<img[^>]*>`)
	reDecorLine    = regexp.MustCompile(`(?m)^[>\s-]*$`)
	reOrigPosted   = regexp.MustCompile(`(?i)^_?Originally posted by @`)
	reQuotedIssue  = regexp.MustCompile(
		`(?i)_?Originally posted by @\w+ in (?:#\d+|\[#\d+\]\([^)]*\)|https?://github\.com/[^\s)\]]+)\s?$`)
	reCensored = regexp.MustCompile(`(?i)^\[\s*spam\s*\]$`)
)

// fastRule is a whole-body structural check that short-circuits the pipeline.
// eval returns the human-readable reason and whether the rule fired
type fastRule struct {
	name string
	eval func(body string, cfg Config) (string, bool)
}

// fastRules are evaluated in order on the CRLF-normalized, trimmed body.
// All firing rules are reported, not just the first. Adding a rule is a
// list entry, never a control-flow change
var fastRules = []fastRule{
	{name: "blank", eval: func(b string, _ Config) (string, bool) {
		return "blank body", strings.TrimSpace(normalize.StripComments(b)) == ""
	}},
	{name: "link_only", eval: func(b string, _ Config) (string, bool) {
		return "only a link", isLinkOnly(b)
	}},
	{name: "too_short", eval: func(b string, _ Config) (string, bool) {
		return "body too short", utf8.RuneCountInString(strings.TrimSpace(b)) < minBodyRunes
	}},
	{name: "blockquotes_only", eval: func(b string, _ Config) (string, bool) {
		return "body is only blockquotes", onlyBlockquotes(b)
	}},
	{name: "images_only", eval: func(b string, _ Config) (string, bool) {
		return "body is only images", onlyImages(b)
	}},
	{name: "quoted_issue", eval: func(b string, _ Config) (string, bool) {
		return "quote of another issue", reQuotedIssue.MatchString(b)
	}},
	{name: "censored_placeholder", eval: func(b string, _ Config) (string, bool) {
		t := strings.Trim(normalize.StripComments(b), "'\"` \t\r\n")
		return "censored spam placeholder", reCensored.MatchString(t)
	}},
	{name: "banned_domain", eval: func(b string, cfg Config) (string, bool) {
		d := bannedDomain(b, cfg.BadDomains)
		return "contains banned domain: " + d, d != ""
	}},
}

// fastPath evaluates every rule and returns the reasons that fired
func fastPath(body string, cfg Config) []string {
	var reasons []string
	for _, r := range fastRules {
		if reason, ok := r.eval(body, cfg); ok {
			reasons = append(reasons, reason)
		}
	}
	return reasons
}

// isLinkOnly reports whether s is nothing but links/URLs once images and
// residual punctuation are removed. Images never count as links
func isLinkOnly(s string) bool {
	raw := strings.TrimSpace(normalize.StripComments(s))
	if raw == "" {
		return false
	}

	// unwrap optional quotes/backticks around the whole text
	unwrapped := strings.TrimSpace(reWrapQuotes.ReplaceAllString(raw, "$1"))

	tmp := reMdImageLink.ReplaceAllString(unwrapped, " ")

	hadLink := reMdLinkHTTP.MatchString(tmp) || reRawURL.MatchString(tmp)

	tmp = reMdLinkHTTP.ReplaceAllString(tmp, " ")
	tmp = reRawURL.ReplaceAllString(tmp, " ")

	leftover := strings.TrimSpace(rePunctRun.ReplaceAllString(tmp, " "))
	return hadLink && leftover == ""
}

// isImageOnly reports whether s is nothing but markdown/HTML images,
// optionally wrapped in links
func isImageOnly(s string) bool {
	noComments := strings.TrimSpace(normalize.StripComments(s))
	if noComments == "" {
		return false
	}

	stripped := reMdImageLink.ReplaceAllString(noComments, " ")
	stripped = reLinkedImg.ReplaceAllString(stripped, " ")
	stripped = reImgTag.ReplaceAllString(stripped, " ")

	stripped = strings.TrimSpace(rePunctRun.ReplaceAllString(stripped, " "))
	return stripped == ""
}

// onlyBlockquotes reports whether every non-blank line is a block-quote or an
// "Originally posted by @user" attribution
func onlyBlockquotes(s string) bool {
	noComments := normalize.StripComments(s)
	seen := false
	for _, line := range strings.Split(noComments, "\n") {
		l := strings.TrimSpace(line)
		if l == "" {
			continue
		}
		seen = true
		if !strings.HasPrefix(l, ">") && !reOrigPosted.MatchString(l) {
			return false
		}
	}
	return seen
}

// onlyImages reports whether the whole body is images plus decorative
// line-only punctuation
func onlyImages(s string) bool {
	noComments := strings.TrimSpace(normalize.StripComments(s))
	if noComments == "" {
		return false
	}

	stripped := strings.TrimSpace(reMdImageAny.ReplaceAllString(noComments, ""))
	stripped = reLinkedImg.ReplaceAllString(stripped, "")
	stripped = strings.TrimSpace(reImgTag.ReplaceAllString(stripped, ""))
	stripped = reDecorLine.ReplaceAllString(stripped, "")

	return strings.TrimSpace(stripped) == ""
}

// bannedDomain returns the configured domain hosted by some URL in body, or
// "". A cheap substring check prefilters; a hit must then be confirmed
// against parsed hostnames so substrings inside unrelated domains do not
// match. Unparseable candidate URLs are skipped, never treated as a match
func bannedDomain(body string, domains []string) string {
	if len(domains) == 0 {
		return ""
	}
	lower := strings.ToLower(body)

	flat := make([]string, 0, len(domains))
	hit := false
	for _, d := range domains {
		d = strings.TrimPrefix(strings.ToLower(d), "www.")
		flat = append(flat, d)
		if strings.Contains(lower, d) {
			hit = true
		}
	}
	if !hit {
		return ""
	}

	var urls []string
	for _, m := range reMdLinkTarget.FindAllStringSubmatch(lower, -1) {
		urls = append(urls, m[1])
	}
	urls = append(urls, reRawURL.FindAllString(lower, -1)...)

	for _, u := range urls {
		parsed, err := url.Parse(u)
		if err != nil {
			continue
		}
		host := strings.TrimPrefix(parsed.Hostname(), "www.")
		for _, d := range flat {
			if host == d {
				return d
			}
		}
	}
	return ""
}
