// Package spam classifies issue-report text as spam / low-quality versus
// legitimate. The pipeline is a pure function of (body, Config): fast-path
// structural rules first, then template-aware section scoring over entropy,
// repetition, and per-answer content signals. It never returns an error;
// uncertainty resolves to a not-spam verdict
package spam

import (
	"fmt"
	"math"
	"strings"

	"issuegate/internal/core/normalize"
	pstrings "issuegate/internal/platform/strings"
)

// Version stamps verdicts so downstream consumers can tell which pipeline
// revision produced a score
const Version = 1

// Verdict is the sole output of a check, fully determined by its inputs.
// Sections is the full split, including ignored titles, for caller inspection
type Verdict struct {
	IsSpam   bool      `json:"is_spam"`
	Score    int       `json:"score"`
	Reasons  []string  `json:"reasons"`
	Sections []Section `json:"sections"`
}

// Detector runs the pipeline with a merged configuration.
// It is stateless and safe for concurrent use
type Detector struct {
	cfg Config
}

// New creates a Detector, merging cfg over the built-in defaults
func New(cfg Config) *Detector {
	return &Detector{cfg: cfg.withDefaults()}
}

// Config returns the merged configuration the detector runs with
func (d *Detector) Config() Config { return d.cfg }

// Detect is a convenience for one-shot checks
func Detect(body string, cfg Config) Verdict {
	return New(cfg).Check(body)
}

// Check classifies raw issue text. It never fails: empty or malformed input
// yields a verdict, not an error
func (d *Detector) Check(raw string) Verdict {
	body := strings.TrimSpace(normalize.CRLF(raw))

	if reasons := fastPath(body, d.cfg); len(reasons) > 0 {
		return Verdict{IsSpam: true, Score: fastPathScore, Reasons: reasons, Sections: []Section{}}
	}

	all := Split(body)

	ignored := make(map[string]struct{}, len(d.cfg.IgnoredSections))
	for _, t := range pstrings.LowerAll(d.cfg.IgnoredSections) {
		ignored[t] = struct{}{}
	}
	answers := make([]string, 0, len(all))
	for _, s := range all {
		if _, skip := ignored[strings.ToLower(s.Title)]; !skip {
			answers = append(answers, s.Answer)
		}
	}

	var minimalCount, linkOnlyCount, imageOnlyCount int
	for _, a := range answers {
		if isMinimalContent(a) {
			minimalCount++
		}
		if isLinkOnly(a) {
			linkOnlyCount++
		}
		if isImageOnly(a) {
			imageOnlyCount++
		}
	}

	strong := strongSections(answers, d.cfg)

	joined := joinNormalized(answers)
	entropy := shannonEntropy(joined)
	uniqueRatio := uniqueTokenRatio(joined)
	repeat := maxRepeat(answers, strong > 0)

	score := 0
	reasons := []string{}

	// a single strong section vouches for the report, so minimal answers
	// alone stop counting against it
	if strong == 0 && minimalCount >= 2 {
		score += minimalCount
		reasons = append(reasons, fmt.Sprintf("%d minimal answers", minimalCount))
	}
	if linkOnlyCount >= 2 {
		score += linkOnlyCount
		reasons = append(reasons, fmt.Sprintf("%d link-only answers", linkOnlyCount))
	}
	if imageOnlyCount >= 2 {
		score += imageOnlyCount
		reasons = append(reasons, fmt.Sprintf("%d image-only answers", imageOnlyCount))
	}
	if repeat >= 2 {
		score += repeat
		reasons = append(reasons, fmt.Sprintf("same answer repeated %d times (canonical)", repeat))
	}
	if entropy < d.cfg.EntropyFloor {
		score++
		reasons = append(reasons, fmt.Sprintf("low entropy (%.2f)", entropy))
	}
	if uniqueRatio < d.cfg.UniqueTokenFloor {
		score++
		reasons = append(reasons, fmt.Sprintf("low unique-token ratio (%.2f)", uniqueRatio))
	}

	templated := len(answers) >= 2
	junkCount := minimalCount + linkOnlyCount
	if templated && junkCount >= int(math.Ceil(float64(len(answers))*d.cfg.SectionMinJunkRatio)) {
		score += 2
		reasons = append(reasons, "most sections are minimal/link-only")
	}

	threshold := d.cfg.NonTemplateThreshold
	if templated {
		threshold = d.cfg.SpamThreshold
	}

	return Verdict{
		IsSpam:   score >= threshold,
		Score:    score,
		Reasons:  reasons,
		Sections: all,
	}
}
