// Command issuegate-check classifies issue text from a file or stdin and
// prints the verdict as JSON. Exit status is 0 for clean, 2 for spam
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"issuegate/internal/core/spam"
	"issuegate/internal/platform/config"
	triagemod "issuegate/internal/services/api/triage/module"
)

func main() {
	var (
		file      = flag.String("file", "", "read issue body from file instead of stdin")
		pretty    = flag.Bool("pretty", false, "indent JSON output")
		quiet     = flag.Bool("quiet", false, "suppress output, exit status only")
		threshold = flag.Int("threshold", 0, "override spam threshold for templated bodies")
		freeform  = flag.Int("freeform-threshold", 0, "override threshold for free-form bodies")
	)
	flag.Parse()

	body, err := readBody(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issuegate-check:", err)
		os.Exit(1)
	}

	// env-driven config (CORE_TRIAGE_*), flags win
	cfg := triagemod.FromConfig(config.New())
	if *threshold > 0 {
		cfg.SpamThreshold = *threshold
	}
	if *freeform > 0 {
		cfg.NonTemplateThreshold = *freeform
	}

	verdict := spam.Detect(body, cfg)

	if !*quiet {
		enc := json.NewEncoder(os.Stdout)
		if *pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(verdict); err != nil {
			fmt.Fprintln(os.Stderr, "issuegate-check:", err)
			os.Exit(1)
		}
	}

	if verdict.IsSpam {
		os.Exit(2)
	}
}

func readBody(file string) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
