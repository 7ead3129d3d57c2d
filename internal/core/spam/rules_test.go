package spam

import "testing"

func TestIsLinkOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "raw url", in: "https://example.com/x", want: true},
		{name: "markdown link", in: "[docs](https://docs.example.com/page)", want: true},
		{name: "two urls with bullets", in: "- https://a.example\n- https://b.example", want: true},
		{name: "quoted url", in: `"https://example.com/x"`, want: true},
		{name: "url plus prose", in: "see https://example.com/x for the repro steps", want: false},
		{name: "image does not count as link", in: "![shot](https://example.com/a.png)", want: false},
		{name: "plain text", in: "the table renders twice", want: false},
		{name: "empty", in: "", want: false},
		{name: "comment only", in: "<!-- https://example.com -->", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLinkOnly(tt.in); got != tt.want {
				t.Fatalf("isLinkOnly(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsImageOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "markdown image", in: "![shot](https://example.com/a.png)", want: true},
		{name: "html img", in: `<img src="https://example.com/a.png">`, want: true},
		{name: "linked img", in: `<a href="https://example.com"><img src="a.png"></a>`, want: true},
		{name: "image plus prose", in: "![shot](https://example.com/a.png) and it crashes", want: false},
		{name: "empty", in: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isImageOnly(tt.in); got != tt.want {
				t.Fatalf("isImageOnly(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOnlyBlockquotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "single quote line", in: "> quoted", want: true},
		{name: "quote with blank lines", in: "> a\n\n> b", want: true},
		{name: "attribution line counts", in: "> a\n_Originally posted by @user in #1_", want: true},
		{name: "own text present", in: "> a\nmy comment", want: false},
		{name: "empty", in: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onlyBlockquotes(tt.in); got != tt.want {
				t.Fatalf("onlyBlockquotes(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBannedDomain(t *testing.T) {
	domains := []string{"onlyfans.com", "WWW.pornhub.com"}

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "raw url",
			body: "visit https://onlyfans.com/foo today",
			want: "onlyfans.com",
		},
		{
			name: "markdown link target",
			body: "[click](https://www.onlyfans.com/bar)",
			want: "onlyfans.com",
		},
		{
			name: "config www prefix ignored",
			body: "https://pornhub.com/x",
			want: "pornhub.com",
		},
		{
			name: "substring inside unrelated domain",
			body: "see https://notonlyfans.com.example.org/x plus words",
			want: "",
		},
		{
			name: "bare mention without url",
			body: "I keep hearing about onlyfans.com from somewhere",
			want: "",
		},
		{
			name: "malformed url is skipped not matched",
			body: "spam at https://onlyfans.com/%zz trailing words",
			want: "",
		},
		{name: "clean body", body: "nothing suspicious here at all", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bannedDomain(tt.body, domains); got != tt.want {
				t.Fatalf("bannedDomain(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}

	t.Run("no domains configured", func(t *testing.T) {
		if got := bannedDomain("https://onlyfans.com/x", nil); got != "" {
			t.Fatalf("expected no match with empty list, got %q", got)
		}
	})
}

func TestFastPath_Ordering(t *testing.T) {
	// blank wins the first slot when several rules could apply
	reasons := fastPath("", Default())
	if len(reasons) == 0 || reasons[0] != "blank body" {
		t.Fatalf("unexpected reasons %v", reasons)
	}
}

func TestFastRules_ReasonByName(t *testing.T) {
	fixtures := map[string]struct {
		body   string
		reason string
	}{
		"blank":                {"", "blank body"},
		"link_only":            {"https://example.com/some/long/path", "only a link"},
		"too_short":            {"tiny", "body too short"},
		"blockquotes_only":     {"> the whole report is quoted\n> nothing new added", "body is only blockquotes"},
		"images_only":          {"![shot](https://example.com/a.png)", "body is only images"},
		"quoted_issue":         {"Originally posted by @alice in #123", "quote of another issue"},
		"censored_placeholder": {"[spam]", "censored spam placeholder"},
		"banned_domain":        {"see https://onlyfans.com/promo for more", "contains banned domain: onlyfans.com"},
	}

	for _, r := range fastRules {
		t.Run(r.name, func(t *testing.T) {
			fx, ok := fixtures[r.name]
			if !ok {
				t.Fatalf("no fixture for rule %q", r.name)
			}
			reason, fired := r.eval(fx.body, Default())
			if !fired {
				t.Fatalf("rule %q did not fire on %q", r.name, fx.body)
			}
			if reason != fx.reason {
				t.Fatalf("rule %q reason = %q, want %q", r.name, reason, fx.reason)
			}
		})
	}
	if len(fixtures) != len(fastRules) {
		t.Fatalf("fixtures cover %d rules, list has %d", len(fixtures), len(fastRules))
	}
}
