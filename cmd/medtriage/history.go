package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zen-systems/medtriage/pkg/schema"
	"github.com/zen-systems/medtriage/pkg/store"
)

func historyCmd() *cobra.Command {
	var (
		patientID string
		limit     int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List stored triage results",
		Long: `Lists stored results, newest first. With --patient only that patient's
results are listed. With an id argument the single record is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, appOptions{store: true})
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireStore(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid record id %q: %w", args[0], err)
				}
				stored, err := a.repo.Get(ctx, id)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(out, stored)
				}
				fmt.Fprintf(out, "ID:        %s\n", stored.ID)
				fmt.Fprintf(out, "At:        %s\n", stored.At.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "Symptoms:  %s\n", stored.Symptoms)
				printRecord(out, stored.Record(), "all")
				return nil
			}

			var records []store.StoredRecord
			if patientID != "" {
				records, err = a.repo.History(ctx, patientID, limit)
			} else {
				records, err = a.repo.Recent(ctx, limit)
			}
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(out, records)
			}

			table := newTable(out, []string{"ID", "At", "Patient", "Category", "Severity", "Keywords", "Symptoms"})
			for _, r := range records {
				table.Append([]string{
					r.ID.String(), r.At.Format("2006-01-02 15:04"), r.PatientID, r.Result.MedicalCategory,
					severityLabel(r.Result.Severity), strings.Join(r.Result.Explainability.KeyKeywords, ","),
					truncate(r.Symptoms, 40),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&patientID, "patient", "", "only list this patient's results")
	cmd.Flags().IntVar(&limit, "limit", store.DefaultHistoryLimit, "maximum number of results")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print as JSON")
	return cmd
}

func searchCmd() *cobra.Command {
	var (
		category string
		severity string
		limit    int
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Full-text search over stored symptoms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, appOptions{store: true})
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireStore(); err != nil {
				return err
			}

			hits, err := a.index.Search(ctx, store.Query{
				Text:     strings.Join(args, " "),
				Category: category,
				Severity: severity,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, hits)
			}
			table := newTable(out, []string{"ID", "Score", "Category", "Severity", "Symptoms"})
			for _, h := range hits {
				table.Append([]string{
					h.ID.String(), fmt.Sprintf("%.3f", h.Score), h.Category,
					severityLabel(schema.Severity(h.Severity)), truncate(h.Symptoms, 48),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only match this medical category")
	cmd.Flags().StringVar(&severity, "severity", "", "only match this severity (LOW, MEDIUM, HIGH)")
	cmd.Flags().IntVar(&limit, "limit", store.DefaultSearchLimit, "maximum number of hits")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print as JSON")
	return cmd
}
