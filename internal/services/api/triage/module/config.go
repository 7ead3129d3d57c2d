package module

import (
	"issuegate/internal/core/spam"
	"issuegate/internal/platform/config"
)

// FromConfig reads detector settings from the CORE_TRIAGE_* namespace
// unset keys fall through to the built-in detector defaults
func FromConfig(cfg config.Conf) spam.Config {
	c := cfg.Prefix("CORE_TRIAGE_")
	return spam.Config{
		SpamThreshold:          c.MayInt("SPAM_THRESHOLD", 0),
		NonTemplateThreshold:   c.MayInt("NON_TEMPLATE_THRESHOLD", 0),
		SectionMinJunkRatio:    c.MayFloat64("SECTION_MIN_JUNK_RATIO", 0),
		EntropyFloor:           c.MayFloat64("ENTROPY_FLOOR", 0),
		UniqueTokenFloor:       c.MayFloat64("UNIQUE_TOKEN_FLOOR", 0),
		IgnoredSections:        c.MayStrings("IGNORED_SECTIONS", nil),
		BadDomains:             c.MayStrings("BAD_DOMAINS", nil),
		StrongSectionMinChars:  c.MayInt("STRONG_SECTION_MIN_CHARS", 0),
		StrongSectionMinTokens: c.MayInt("STRONG_SECTION_MIN_TOKENS", 0),
	}
}
