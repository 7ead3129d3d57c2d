// Package domain holds DTOs for triage http and service contracts
package domain

import "issuegate/internal/core/spam"

// ConfigInput carries optional per-request detector overrides
// nil fields keep the server defaults; a supplied list replaces the default list wholly
type ConfigInput struct {
	SpamThreshold          *int     `json:"spam_threshold"            validate:"omitempty,min=1,max=100" example:"3"`
	NonTemplateThreshold   *int     `json:"non_template_threshold"    validate:"omitempty,min=1,max=100" example:"1"`
	SectionMinJunkRatio    *float64 `json:"section_min_junk_ratio"    validate:"omitempty,gt=0,lte=1"    example:"0.6"`
	EntropyFloor           *float64 `json:"entropy_floor"             validate:"omitempty,gt=0,lte=8"    example:"3"`
	UniqueTokenFloor       *float64 `json:"unique_token_floor"        validate:"omitempty,gt=0,lte=1"    example:"0.35"`
	IgnoredSections        []string `json:"ignored_sections"          validate:"omitempty,dive,min=1,max=200"`
	BadDomains             []string `json:"bad_domains"               validate:"omitempty,dive,hostname_rfc1123"`
	StrongSectionMinChars  *int     `json:"strong_section_min_chars"  validate:"omitempty,min=1"         example:"200"`
	StrongSectionMinTokens *int     `json:"strong_section_min_tokens" validate:"omitempty,min=1"         example:"40"`
}

// CheckInput asks the service to classify one issue body
// a blank body is valid input and classifies as spam, so body carries no required tag
type CheckInput struct {
	Body   string       `json:"body"   validate:"max=262144"`
	Config *ConfigInput `json:"config" validate:"omitempty"`
}

// CheckResult is the classification verdict plus bookkeeping
type CheckResult struct {
	CheckID         string `json:"check_id" example:"7b0d6d12-9c0f-4a7e-b2e3-1f8a2a0c9d44"`
	DetectorVersion int    `json:"detector_version" example:"1"`
	spam.Verdict
}

// ToConfig maps overrides onto a base configuration
func (c *ConfigInput) ToConfig(base spam.Config) spam.Config {
	if c == nil {
		return base
	}
	out := base
	if c.SpamThreshold != nil {
		out.SpamThreshold = *c.SpamThreshold
	}
	if c.NonTemplateThreshold != nil {
		out.NonTemplateThreshold = *c.NonTemplateThreshold
	}
	if c.SectionMinJunkRatio != nil {
		out.SectionMinJunkRatio = *c.SectionMinJunkRatio
	}
	if c.EntropyFloor != nil {
		out.EntropyFloor = *c.EntropyFloor
	}
	if c.UniqueTokenFloor != nil {
		out.UniqueTokenFloor = *c.UniqueTokenFloor
	}
	if len(c.IgnoredSections) > 0 {
		out.IgnoredSections = c.IgnoredSections
	}
	if len(c.BadDomains) > 0 {
		out.BadDomains = c.BadDomains
	}
	if c.StrongSectionMinChars != nil {
		out.StrongSectionMinChars = *c.StrongSectionMinChars
	}
	if c.StrongSectionMinTokens != nil {
		out.StrongSectionMinTokens = *c.StrongSectionMinTokens
	}
	return out
}
