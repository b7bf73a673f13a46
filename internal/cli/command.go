package cli

import (
	"github.com/spf13/cobra"

	"codeberg.org/snonux/polytrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polytrans",
		Short: "Ollama-backed document translation",
		Long: `polytrans translates documents through a locally hosted Ollama model.

It detects the source language, splits long documents into overlapping
chunks, translates chunk by chunk and merges the results, optionally
adding a short summary.

Examples:
  polytrans --text "Hello, world." --target-lang Chinese
  polytrans --text "..." --domain legal --glossary "term=译法"
  polytrans --batch --input-dir ./input --output-dir ./completed
  polytrans --batch --batch-config job.yaml
  polytrans --cache-stats`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)
	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is ./config.yaml)")

	// Single document flags
	cmd.Flags().StringVarP(&flags.Text, "text", "t", "", "Text to translate")
	cmd.Flags().StringVarP(&flags.TargetLang, "target-lang", "l", "", "Target language (default from config)")
	cmd.Flags().StringVar(&flags.Domain, "domain", "", "Domain hint for terminology, e.g. legal or medical")
	cmd.Flags().StringVar(&flags.Glossary, "glossary", "", `Glossary as JSON object or "Key=Value,..." pairs`)
	cmd.Flags().BoolVar(&flags.Summary, "summary", false, "Generate a summary even if disabled in config")
	cmd.Flags().BoolVar(&flags.NoSummary, "no-summary", false, "Skip summary generation")

	// Cache maintenance flags
	cmd.Flags().BoolVar(&flags.ClearCache, "clear-cache", false, "Clear the language detection cache and exit")
	cmd.Flags().BoolVar(&flags.CacheStats, "cache-stats", false, "Print language detection cache statistics and exit")

	// Batch flags
	cmd.Flags().BoolVar(&flags.Batch, "batch", false, "Translate all matching files from the input directory")
	cmd.Flags().StringVar(&flags.BatchConfig, "batch-config", "", "YAML job file with batch options")
	cmd.Flags().StringVar(&flags.InputDir, "input-dir", "", "Batch input directory (default from config)")
	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", "", "Batch output directory (default from config)")
	cmd.Flags().StringVar(&flags.FilePattern, "file-pattern", "", "Batch file glob, e.g. *.txt (default from config)")
	cmd.Flags().BoolVar(&flags.DeleteAfter, "delete-after", false, "Delete input files after successful translation")
	cmd.Flags().BoolVar(&flags.NoDelete, "no-delete", false, "Keep input files, archiving them instead")

	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List models available on the Ollama instance")

	cmd.MarkFlagsMutuallyExclusive("text", "batch")
	cmd.MarkFlagsMutuallyExclusive("summary", "no-summary")
	cmd.MarkFlagsMutuallyExclusive("delete-after", "no-delete")
}
