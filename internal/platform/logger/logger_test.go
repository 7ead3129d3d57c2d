package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "trace", want: zerolog.TraceLevel},
		{in: "DEBUG", want: zerolog.DebugLevel},
		{in: " info ", want: zerolog.InfoLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "bogus", want: zerolog.DebugLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetAndChildren(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get returned nil")
	}
	if Named("triage") == nil {
		t.Fatal("Named returned nil")
	}
	ctx := WithRequest(context.Background(), "req-1")
	if C(ctx) == nil {
		t.Fatal("C returned nil")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "INFO")
	t.Setenv("LOG_FORMAT", "json")
	opt := FromEnv()
	if opt.Level != "info" || opt.Format != "json" {
		t.Fatalf("unexpected options: %+v", opt)
	}
}
