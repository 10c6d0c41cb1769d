// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Output formats understood by [Render].
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// RenderTable renders the report as a two-column markdown table, one row
// per field, in the order the fields appear in the JSON form.
func RenderTable(r *Report) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Field", "Value"})
	table.Bulk([][]string{
		{"Validity Status", strconv.FormatBool(r.ValidityStatus)},
		{"Expiration Date", r.ExpirationDate},
		{"Issuer", r.Issuer},
		{"Subject", r.Subject},
		{"Valid For Domain", strconv.FormatBool(r.ValidForDomain)},
		{"CA Valid", strconv.FormatBool(r.CAValid)},
		{"Self Signed", strconv.FormatBool(r.SelfSigned)},
		{"Revocation Status", r.RevocationStatus},
	})
	table.Render()

	return buf.String()
}

// RenderJSON renders the report as indented JSON.
func RenderJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

// Render renders the report in format. An empty format means JSON.
func Render(r *Report, format string) (string, error) {
	switch format {
	case "", FormatJSON:
		return RenderJSON(r)
	case FormatTable:
		return RenderTable(r), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want %s or %s)", format, FormatJSON, FormatTable)
	}
}

// RenderAll renders several reports: a JSON array, or one table per report
// separated by a blank line.
func RenderAll(reports []*Report, format string) (string, error) {
	switch format {
	case "", FormatJSON:
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal reports: %w", err)
		}
		return string(data), nil
	case FormatTable:
		tables := make([]string, 0, len(reports))
		for _, r := range reports {
			tables = append(tables, RenderTable(r))
		}
		return strings.Join(tables, "\n"), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want %s or %s)", format, FormatJSON, FormatTable)
	}
}
