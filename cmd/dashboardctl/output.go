package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// structured reports whether the output format bypasses tables.
func structured() bool {
	return outputFmt == "json" || outputFmt == "yaml"
}

func printOutput(w io.Writer, v any) error {
	switch outputFmt {
	case "json":
		return printJSON(w, v)
	case "yaml":
		return printYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format for structured data: %s (use json or yaml)", outputFmt)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	// Convert through JSON to get consistent keys (json tags).
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc.Encode(m)
}

func printTable(out io.Writer, headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	upperHeaders := make([]string, len(headers))
	for i, h := range headers {
		upperHeaders[i] = strings.ToUpper(h)
	}
	fmt.Fprintln(w, strings.Join(upperHeaders, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
}

// truncate shortens a string to max length, appending "..." if truncated.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return s[:limit]
	}
	return s[:limit-3] + "..."
}
