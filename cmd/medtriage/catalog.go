package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zen-systems/medtriage/pkg/artifact"
	"github.com/zen-systems/medtriage/pkg/language"
	"github.com/zen-systems/medtriage/pkg/patterns"
	"github.com/zen-systems/medtriage/pkg/schema"
)

type departmentInfo struct {
	Name     string               `json:"name"`
	Names    patterns.Translation `json:"names"`
	Keywords int                  `json:"keywords"`
}

func departmentsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "departments",
		Short: "List departments with their Kannada and Hindi names",
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []departmentInfo
			for _, d := range schema.Departments() {
				infos = append(infos, departmentInfo{
					Name:     d.String(),
					Names:    patterns.DepartmentTranslation(d),
					Keywords: len(patterns.DepartmentKeywords(d)),
				})
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return writeJSON(out, infos)
			}
			table := newTable(out, []string{"Department", "Kannada", "Hindi", "Keywords"})
			for _, info := range infos {
				table.Append([]string{info.Name, info.Names.KN, info.Names.HI, fmt.Sprintf("%d", info.Keywords)})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print as JSON")
	return cmd
}

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [text]",
		Short: "Detect the dominant script of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), language.Detect(strings.Join(args, " ")))
		},
	}
}

func modelCmd() *cobra.Command {
	var predict string

	cmd := &cobra.Command{
		Use:   "model [artifact]",
		Short: "Inspect a fallback model artifact",
		Long: `Loads and validates a model artifact and prints its classes, feature
dimension and content hash. Defaults to the configured model_path.

Use --predict to run the model alone on a text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				path = cfg.ModelPath
			}
			if path == "" {
				return fmt.Errorf("no model artifact given and model_path is not configured")
			}

			bundle, err := artifact.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path:        %s\n", bundle.Path)
			fmt.Fprintf(out, "Name:        %s\n", bundle.Name)
			fmt.Fprintf(out, "Hash:        %s\n", bundle.Hash)
			if !bundle.TrainedAt.IsZero() {
				fmt.Fprintf(out, "Trained at:  %s\n", bundle.TrainedAt.Format("2006-01-02 15:04:05"))
			}
			fmt.Fprintf(out, "Vectorizer:  %s (%d features)\n", bundle.Vectorizer.Kind, bundle.Features())
			fmt.Fprintf(out, "Classifier:  %s\n", bundle.Classifier.Kind)
			fmt.Fprintf(out, "Classes:     %s\n", strings.Join(bundle.Classifier.Classes, ", "))

			var unknown []string
			for _, class := range bundle.Classifier.Classes {
				if _, ok := schema.ParseDepartment(class); !ok {
					unknown = append(unknown, class)
				}
			}
			if len(unknown) > 0 {
				fmt.Fprintf(out, "Ignored:     %s (not hospital departments)\n", strings.Join(unknown, ", "))
			}

			if predict != "" {
				label, err := bundle.Predict(predict)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Prediction:  %s\n", label)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&predict, "predict", "", "text to classify with the model alone")
	return cmd
}
