package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/zen-systems/medtriage/pkg/schema"
)

func severityLabel(s schema.Severity) string {
	switch s {
	case schema.SeverityHigh:
		return color.New(color.FgRed, color.OpBold).Render(string(s))
	case schema.SeverityMedium:
		return color.Yellow.Render(string(s))
	default:
		return color.Green.Render(string(s))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRecord(w io.Writer, rec schema.Record, lang string) {
	fmt.Fprintf(w, "Category:  %s\n", rec.MedicalCategory)
	fmt.Fprintf(w, "Severity:  %s\n", severityLabel(rec.Severity))
	fmt.Fprintf(w, "Doctor:    %s\n", rec.AssignedDoctor)
	fmt.Fprintf(w, "Room:      %s\n", rec.RoomAllotted)
	fmt.Fprintf(w, "Status:    %s\n", rec.Status)
	if len(rec.Explainability.KeyKeywords) > 0 {
		fmt.Fprintf(w, "Keywords:  %s\n", strings.Join(rec.Explainability.KeyKeywords, ", "))
	}
	fmt.Fprintf(w, "Language:  %s (method %s, confidence %.2f)\n",
		rec.Metadata.Language, rec.Metadata.Method, rec.Metadata.Confidence)

	explanations := []struct{ code, text string }{
		{schema.LangEnglish, rec.Explainability.ExplanationEN},
		{schema.LangKannada, rec.Explainability.ExplanationKN},
		{schema.LangHindi, rec.Explainability.ExplanationHI},
	}
	for _, e := range explanations {
		if lang == "all" || lang == e.code {
			fmt.Fprintf(w, "[%s] %s\n", e.code, e.text)
		}
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
