package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zen-systems/medtriage/pkg/engine"
	"github.com/zen-systems/medtriage/pkg/evidence"
	"github.com/zen-systems/medtriage/pkg/intake"
	"github.com/zen-systems/medtriage/pkg/schema"
)

type caseFile struct {
	Cases []schema.Case `yaml:"cases"`
}

// readCases accepts a YAML or JSON list of cases, or an object with a "cases" list.
func readCases(path string) ([]schema.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []schema.Case
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var file caseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse cases from %s: %w", path, err)
	}
	return file.Cases, nil
}

// batchResult is one line of batch output.
type batchResult struct {
	Index    int           `json:"index"`
	ID       string        `json:"id,omitempty"`
	Error    string        `json:"error,omitempty"`
	Record   schema.Record `json:"record"`
	Language string        `json:"detected_language"`
}

func batchCmd() *cobra.Command {
	var (
		casesFile string
		outDir    string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Triage a file of cases",
		Long: `Reads a YAML or JSON list of cases (symptoms, age, gender, patient_id)
and triages them in parallel. Results keep the input order.

Invalid cases get the referral fallback record instead of an error.
Use --out to write an evidence bundle (run.json plus one file per case).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if casesFile == "" {
				return fmt.Errorf("cases file is required")
			}
			started := time.Now()
			ctx := cmd.Context()

			cases, err := readCases(casesFile)
			if err != nil {
				return err
			}

			a, err := newApp(ctx, appOptions{engine: true, store: true})
			if err != nil {
				return err
			}
			defer a.close()

			validated := make([]schema.Case, 0, len(cases))
			positions := make([]int, 0, len(cases))
			invalid := make(map[int]error)
			for i, c := range cases {
				v, err := intake.Validate(c)
				if err != nil {
					invalid[i] = err
					continue
				}
				validated = append(validated, v)
				positions = append(positions, i)
			}

			analyzed, err := a.engine.BatchAnalyze(ctx, validated)
			if err != nil {
				return err
			}

			results := make([]batchResult, len(cases))
			for i, c := range cases {
				if verr, ok := invalid[i]; ok {
					rec := engine.FallbackRecord(c.Symptoms, c.Age, c.Gender)
					results[i] = batchResult{Index: i, Error: verr.Error(), Record: rec, Language: rec.Metadata.Language}
				}
			}
			for j, i := range positions {
				rec := analyzed[j]
				result := batchResult{Index: i, Record: rec, Language: rec.Metadata.Language}
				stored, err := a.persist(ctx, rec, validated[j].PatientID)
				if err != nil {
					return err
				}
				if stored != nil {
					result.ID = stored.ID.String()
				}
				results[i] = result
			}

			if outDir != "" {
				runDir, err := writeEvidence(outDir, casesFile, a.engine, cases, results, len(invalid), time.Since(started))
				if err != nil {
					return fmt.Errorf("failed to write evidence: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Batch complete. Evidence: %s\n", runDir)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, results)
			}
			table := newTable(out, []string{"#", "Category", "Severity", "Status", "Lang", "Symptoms"})
			for _, r := range results {
				symptoms := truncate(cases[r.Index].Symptoms, 48)
				if r.Error != "" {
					symptoms = "(" + r.Error + ")"
				}
				table.Append([]string{
					fmt.Sprintf("%d", r.Index), r.Record.MedicalCategory, severityLabel(r.Record.Severity),
					string(r.Record.Status), r.Language, symptoms,
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&casesFile, "file", "f", "", "cases file, YAML or JSON (required)")
	cmd.Flags().StringVar(&outDir, "out", "", "evidence output base directory")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	return cmd
}

func writeEvidence(baseDir, casesFile string, e *engine.Engine, cases []schema.Case, results []batchResult, invalid int, took time.Duration) (string, error) {
	runID := uuid.NewString()
	writer, err := evidence.NewWriter(baseDir, runID)
	if err != nil {
		return "", err
	}
	inputHash, err := evidence.HashFile(casesFile)
	if err != nil {
		return "", err
	}

	run := evidence.RunRecord{
		ID:         runID,
		Timestamp:  time.Now().UTC(),
		InputFile:  casesFile,
		InputHash:  inputHash,
		Capability: e.Capability().String(),
		Cases:      len(cases),
		Invalid:    invalid,
		DurationMs: took.Milliseconds(),
	}
	if e.Capability().Available() {
		run.ModelHash = e.Capability().ModelVersion()
	}

	for _, r := range results {
		c := cases[r.Index]
		ref, sha, err := writer.WriteBlob("symptoms", []byte(c.Symptoms))
		if err != nil {
			return "", err
		}
		run.Tally(r.Record)
		if err := writer.WriteCase(evidence.CaseRecord{
			Index:           r.Index,
			PatientID:       c.PatientID,
			SymptomsRef:     ref,
			SymptomsHash:    sha,
			Age:             c.Age,
			Gender:          string(c.Gender),
			ValidationError: r.Error,
			Result:          r.Record,
			Metadata:        r.Record.Metadata,
			StoredID:        r.ID,
		}); err != nil {
			return "", err
		}
	}
	if err := writer.WriteRun(run); err != nil {
		return "", err
	}
	return writer.RunDir(), nil
}
