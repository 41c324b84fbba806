package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/zen-systems/medtriage/pkg/intake"
	"github.com/zen-systems/medtriage/pkg/router"
	"github.com/zen-systems/medtriage/pkg/schema"
)

func analyzeCmd() *cobra.Command {
	var (
		age       int
		gender    string
		patientID string
		lang      string
		jsonOut   bool
		explain   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [symptoms]",
		Short: "Triage a single symptom description",
		Long: `Assigns severity, department, room and a trilingual explanation to the
given symptoms. Symptoms may be English, Kannada or Hindi.

Use --explain to print every department's keyword score.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, appOptions{engine: true, store: true})
			if err != nil {
				return err
			}
			defer a.close()

			c := schema.Case{
				Symptoms:  strings.Join(args, " "),
				Gender:    schema.Gender(gender),
				PatientID: patientID,
			}
			if cmd.Flags().Changed("age") {
				c.Age = lo.ToPtr(age)
			}
			c, err = intake.Validate(c)
			if err != nil {
				return err
			}

			rec := a.engine.Analyze(c.Symptoms, c.Age, c.Gender)
			stored, err := a.persist(ctx, rec, c.PatientID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, rec)
			}
			printRecord(out, rec, lang)
			if stored != nil {
				fmt.Fprintf(out, "Stored:    %s\n", stored.ID)
			}
			if explain {
				fmt.Fprintln(out)
				table := newTable(out, []string{"Department", "Score", "Matches"})
				for _, cand := range a.engine.Candidates(c.Symptoms) {
					matches := lo.Map(cand.Matches, func(m router.Match, _ int) string {
						return fmt.Sprintf("%s(%s)", m.Keyword, m.Kind)
					})
					table.Append([]string{cand.Department.String(), fmt.Sprintf("%d", cand.Score), strings.Join(matches, " ")})
				}
				table.Render()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 0, "patient age in years")
	cmd.Flags().StringVar(&gender, "gender", "", "patient gender (M, F, Male, Female, Other)")
	cmd.Flags().StringVar(&patientID, "patient", "", "patient identifier stored with the result")
	cmd.Flags().StringVar(&lang, "lang", "all", "explanation language to print (en, kn, hi, all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the record as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the keyword score of every department")

	return cmd
}
