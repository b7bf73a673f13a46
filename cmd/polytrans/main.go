package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/polytrans/internal/batch"
	"codeberg.org/snonux/polytrans/internal/cli"
	"codeberg.org/snonux/polytrans/internal/config"
	"codeberg.org/snonux/polytrans/internal/engine"
	"codeberg.org/snonux/polytrans/internal/models"
	"codeberg.org/snonux/polytrans/internal/ollama"
)

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Sync()

	cfg, err := config.Load(flags.CfgFile)
	if err != nil {
		return err
	}

	// Handle --list-models flag
	if flags.ListModels {
		return models.NewLister(cfg).Print(cmd.Context(), cmd.OutOrStdout())
	}

	client := ollama.NewClient(cfg, log)
	eng, err := engine.New(cfg, client, log)
	if err != nil {
		return err
	}

	switch {
	case flags.ClearCache:
		cleared := eng.ClearLanguageCache()
		return emit(map[string]any{
			"message":         "language detection cache cleared",
			"cleared_entries": cleared,
		})

	case flags.CacheStats:
		return emit(eng.CacheStats())

	case flags.Text != "":
		return runSingle(cmd, flags, eng)

	default:
		return runBatch(cmd, flags, eng, cfg, log)
	}
}

func runSingle(cmd *cobra.Command, flags *cli.Flags, eng *engine.Engine) error {
	glossary, err := engine.ParseGlossary(flags.Glossary)
	if err != nil {
		return err
	}

	result, err := eng.Translate(cmd.Context(), engine.Request{
		Text:       flags.Text,
		TargetLang: flags.TargetLang,
		Domain:     flags.Domain,
		Glossary:   glossary,
		Summary:    flags.SummaryFlag(),
	})
	if err != nil {
		return emitError(err)
	}
	return emit(result)
}

func runBatch(cmd *cobra.Command, flags *cli.Flags, eng *engine.Engine, cfg *config.Config, log *zap.Logger) error {
	opts := batch.Options{
		InputDir:    flags.InputDir,
		OutputDir:   flags.OutputDir,
		FilePattern: flags.FilePattern,
		TargetLang:  flags.TargetLang,
		Domain:      flags.Domain,
		Glossary:    flags.Glossary,
		Summary:     flags.SummaryFlag(),
		DeleteAfter: flags.DeleteFlag(),
	}

	// A job file provides the base options; explicit flags win.
	if flags.BatchConfig != "" {
		loaded, err := batch.LoadJobFile(flags.BatchConfig)
		if err != nil {
			return err
		}
		mergeOptions(loaded, &opts)
		opts = *loaded
	}

	report, err := batch.Process(cmd.Context(), eng, cfg, opts, log)
	if err != nil {
		return emitError(err)
	}
	return emit(report)
}

// mergeOptions overlays the flag-provided options onto the job file options.
func mergeOptions(base *batch.Options, override *batch.Options) {
	if override.InputDir != "" {
		base.InputDir = override.InputDir
	}
	if override.OutputDir != "" {
		base.OutputDir = override.OutputDir
	}
	if override.ArchiveDir != "" {
		base.ArchiveDir = override.ArchiveDir
	}
	if override.FilePattern != "" {
		base.FilePattern = override.FilePattern
	}
	if override.TargetLang != "" {
		base.TargetLang = override.TargetLang
	}
	if override.Domain != "" {
		base.Domain = override.Domain
	}
	if override.Glossary != "" {
		base.Glossary = override.Glossary
	}
	if override.Summary != nil {
		base.Summary = override.Summary
	}
	if override.DeleteAfter != nil {
		base.DeleteAfter = override.DeleteAfter
	}
}

// emit writes v as indented JSON to stdout.
func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emitError reports a failure as JSON on stdout and still returns the error
// so the process exits non-zero.
func emitError(err error) error {
	_ = emit(map[string]string{"error": err.Error()})
	return err
}
