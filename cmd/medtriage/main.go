package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	modelPath  string
	storeFlag  string
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not read .env: %v\n", err)
	}

	rootCmd := &cobra.Command{
		Use:   "medtriage",
		Short: "Rule-based multilingual medical triage",
		Long: `medtriage assigns a severity, a hospital department and a trilingual
explanation (English, Kannada, Hindi) to free-text symptom descriptions.

An optional offline-trained model is consulted when keyword scoring is not
confident. Results can be stored for history and full-text search.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file (default ~/.medtriage/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "override fallback model artifact path")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "override store backend (none, badger, postgres)")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(departmentsCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(modelCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
