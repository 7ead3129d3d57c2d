package module

import (
	"testing"

	modkit "issuegate/internal/modkit"
	"issuegate/internal/platform/config"
)

func TestFromConfigDefaults(t *testing.T) {
	c := FromConfig(config.New())
	if c.SpamThreshold != 0 || c.EntropyFloor != 0 {
		t.Fatalf("unset env should map to zero values: %+v", c)
	}
	if c.IgnoredSections != nil || c.BadDomains != nil {
		t.Fatalf("unset lists should stay nil: %+v", c)
	}
}

func TestFromConfigEnvOverrides(t *testing.T) {
	t.Setenv("CORE_TRIAGE_SPAM_THRESHOLD", "5")
	t.Setenv("CORE_TRIAGE_ENTROPY_FLOOR", "2.5")
	t.Setenv("CORE_TRIAGE_BAD_DOMAINS", "spam.example, junk.example")

	c := FromConfig(config.New())
	if c.SpamThreshold != 5 {
		t.Fatalf("spam threshold = %d", c.SpamThreshold)
	}
	if c.EntropyFloor != 2.5 {
		t.Fatalf("entropy floor = %v", c.EntropyFloor)
	}
	if len(c.BadDomains) != 2 || c.BadDomains[0] != "spam.example" || c.BadDomains[1] != "junk.example" {
		t.Fatalf("bad domains = %v", c.BadDomains)
	}
}

func TestNewModulePorts(t *testing.T) {
	m := New(modkit.Deps{})
	if m.Name() != "triage" {
		t.Fatalf("name = %q", m.Name())
	}
	p, ok := m.Ports().(Ports)
	if !ok || p.Checker == nil {
		t.Fatalf("ports = %#v", m.Ports())
	}
}
