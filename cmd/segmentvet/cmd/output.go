package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// parseOutput validates the --output flag value.
func parseOutput(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", outputText:
		return outputText, nil
	case outputJSON:
		return outputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text or json)", raw)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newPrinter formats numbers with en-US digit grouping.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
