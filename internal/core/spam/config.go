package spam

import (
	pstrings "issuegate/internal/platform/strings"
)

// Config holds the tunable thresholds and lists for the detector.
// Zero-valued fields fall back to defaults field by field; a supplied list
// replaces the default list wholly (no partial merges inside collections)
type Config struct {
	// SpamThreshold is the verdict bar for template-structured bodies
	SpamThreshold int
	// NonTemplateThreshold is the lower bar for free-form bodies
	NonTemplateThreshold int
	// SectionMinJunkRatio is the fraction of scored sections that must be
	// minimal/link-only before the junk-ratio penalty fires
	SectionMinJunkRatio float64
	// EntropyFloor penalizes joined answers below this Shannon entropy
	EntropyFloor float64
	// UniqueTokenFloor penalizes joined answers below this distinct-token ratio
	UniqueTokenFloor float64
	// IgnoredSections are lower-cased titles excluded from the scored set
	IgnoredSections []string
	// BadDomains are hostnames that short-circuit the verdict when linked
	BadDomains []string
	// StrongSectionMinChars marks an answer as strong at this normalized length
	StrongSectionMinChars int
	// StrongSectionMinTokens marks an answer as strong at this token count
	StrongSectionMinTokens int
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		SpamThreshold:        3,
		NonTemplateThreshold: 1,
		SectionMinJunkRatio:  0.6,
		EntropyFloor:         3,
		UniqueTokenFloor:     0.35,
		IgnoredSections: []string{
			"mdn url",
			"mdn metadata",
			"mdn page report details",
			"what type of issue is this?",
			"what browsers does this problem apply to, if applicable?",
		},
		BadDomains:             []string{"onlyfans.com", "pornhub.com"},
		StrongSectionMinChars:  200,
		StrongSectionMinTokens: 40,
	}
}

// withDefaults merges c over Default, field by field
func (c Config) withDefaults() Config {
	d := Default()
	if c.SpamThreshold > 0 {
		d.SpamThreshold = c.SpamThreshold
	}
	if c.NonTemplateThreshold > 0 {
		d.NonTemplateThreshold = c.NonTemplateThreshold
	}
	if c.SectionMinJunkRatio > 0 {
		d.SectionMinJunkRatio = c.SectionMinJunkRatio
	}
	if c.EntropyFloor > 0 {
		d.EntropyFloor = c.EntropyFloor
	}
	if c.UniqueTokenFloor > 0 {
		d.UniqueTokenFloor = c.UniqueTokenFloor
	}
	d.IgnoredSections = pstrings.IfEmpty(c.IgnoredSections, d.IgnoredSections)
	d.BadDomains = pstrings.IfEmpty(c.BadDomains, d.BadDomains)
	if c.StrongSectionMinChars > 0 {
		d.StrongSectionMinChars = c.StrongSectionMinChars
	}
	if c.StrongSectionMinTokens > 0 {
		d.StrongSectionMinTokens = c.StrongSectionMinTokens
	}
	return d
}
