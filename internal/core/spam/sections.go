package spam

import (
	"regexp"
	"strings"
)

// Section is a titled answer block from a template-structured body
type Section struct {
	Title  string `json:"title"`
	Answer string `json:"answer"`
}

var reHeading = regexp.MustCompile(`^###\s+`)

// Split decomposes body into ordered title/answer pairs. A level-3 heading
// line starts a new section; content before any heading lands in an implicit
// "Body" section. No reordering, no deduplication by title
func Split(body string) []Section {
	if body == "" {
		return nil
	}

	var out []Section
	var title string
	var acc []string
	open := false

	flush := func() {
		if open {
			out = append(out, Section{Title: title, Answer: strings.TrimSpace(strings.Join(acc, "\n"))})
		}
	}

	for _, line := range strings.Split(body, "\n") {
		if reHeading.MatchString(line) {
			flush()
			title = strings.TrimSpace(reHeading.ReplaceAllString(line, ""))
			acc = acc[:0:0]
			open = true
			continue
		}
		if !open {
			title = "Body"
			open = true
		}
		acc = append(acc, line)
	}
	flush()
	return out
}
