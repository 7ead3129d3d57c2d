package spam

import (
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.SpamThreshold != 3 || d.NonTemplateThreshold != 1 {
		t.Fatalf("unexpected thresholds: %+v", d)
	}
	if d.SectionMinJunkRatio != 0.6 || d.EntropyFloor != 3 || d.UniqueTokenFloor != 0.35 {
		t.Fatalf("unexpected floors: %+v", d)
	}
	if d.StrongSectionMinChars != 200 || d.StrongSectionMinTokens != 40 {
		t.Fatalf("unexpected strong-section thresholds: %+v", d)
	}
	if len(d.IgnoredSections) != 5 || len(d.BadDomains) != 2 {
		t.Fatalf("unexpected default lists: %+v", d)
	}
}

func TestConfigMerge(t *testing.T) {
	t.Run("zero config takes all defaults", func(t *testing.T) {
		got := New(Config{}).Config()
		if !reflect.DeepEqual(got, Default()) {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("fields override independently", func(t *testing.T) {
		got := New(Config{SpamThreshold: 7, EntropyFloor: 2.5}).Config()
		if got.SpamThreshold != 7 || got.EntropyFloor != 2.5 {
			t.Fatalf("overrides lost: %+v", got)
		}
		if got.NonTemplateThreshold != 1 || got.UniqueTokenFloor != 0.35 {
			t.Fatalf("defaults clobbered: %+v", got)
		}
	})

	t.Run("lists replace wholly", func(t *testing.T) {
		got := New(Config{BadDomains: []string{"bad.example"}}).Config()
		if !reflect.DeepEqual(got.BadDomains, []string{"bad.example"}) {
			t.Fatalf("expected whole-list replacement, got %v", got.BadDomains)
		}
		// untouched list keeps its default
		if !reflect.DeepEqual(got.IgnoredSections, Default().IgnoredSections) {
			t.Fatalf("ignored sections should default, got %v", got.IgnoredSections)
		}
	})
}
