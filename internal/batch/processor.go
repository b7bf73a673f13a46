// Package batch translates every matching file in an input directory and
// writes one JSON sidecar per input next to the configured output directory.
// Files fail independently; one bad document never aborts the run.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/polytrans/internal/archive"
	"codeberg.org/snonux/polytrans/internal/config"
	"codeberg.org/snonux/polytrans/internal/engine"
)

// Options selects the files to process and how to translate them. Zero
// values fall back to the file_management section of the configuration.
// The pointer fields distinguish "not set" from an explicit false.
type Options struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	ArchiveDir  string `yaml:"archive_dir"`
	FilePattern string `yaml:"file_pattern"`
	TargetLang  string `yaml:"target_lang"`
	Domain      string `yaml:"domain"`
	Glossary    string `yaml:"glossary"`
	Summary     *bool  `yaml:"summary"`
	DeleteAfter *bool  `yaml:"delete_after"`
}

// LoadJobFile reads batch options from a YAML job file.
func LoadJobFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return &opts, nil
}

// FileResult is the outcome for one input file. Status is one of success,
// skipped or failed.
type FileResult struct {
	InputFile   string         `json:"input_file"`
	OutputFile  string         `json:"output_file,omitempty"`
	Status      string         `json:"status"`
	Error       string         `json:"error,omitempty"`
	Translation *engine.Result `json:"translation,omitempty"`
	Deleted     bool           `json:"deleted,omitempty"`
	Archived    bool           `json:"archived,omitempty"`
	ArchivePath string         `json:"archive_path,omitempty"`
}

// Report summarizes a batch run.
type Report struct {
	TotalFiles   int          `json:"total_files"`
	SuccessCount int          `json:"success_count"`
	FailedCount  int          `json:"failed_count"`
	Results      []FileResult `json:"results"`
	Message      string       `json:"message,omitempty"`
}

// Process translates every file in the input directory matching the
// pattern. Per-file failures are recorded in the report; only setup
// problems, like a missing input directory, return an error.
func Process(ctx context.Context, eng *engine.Engine, cfg *config.Config, opts Options, log *zap.Logger) (*Report, error) {
	fm := cfg.FileManagement
	inputDir := fallback(opts.InputDir, fm.InputDir)
	outputDir := fallback(opts.OutputDir, fm.CompletedDir)
	archiveDir := fallback(opts.ArchiveDir, fm.ArchiveDir)
	pattern := fallback(opts.FilePattern, fm.FilePattern)
	deleteAfter := fm.DeleteAfterTranslation
	if opts.DeleteAfter != nil {
		deleteAfter = *opts.DeleteAfter
	}

	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("input directory does not exist: %s", inputDir)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	glossary, err := engine.ParseGlossary(opts.Glossary)
	if err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(inputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}
	sort.Strings(files)

	report := &Report{Results: make([]FileResult, 0, len(files))}
	if len(files) == 0 {
		report.Message = fmt.Sprintf("no files matching %q in %s", pattern, inputDir)
		return report, nil
	}

	log.Info("starting batch run",
		zap.String("input_dir", inputDir),
		zap.String("pattern", pattern),
		zap.Int("files", len(files)))

	for _, file := range files {
		report.TotalFiles++
		result := processFile(ctx, eng, file, outputDir, archiveDir, opts, glossary, deleteAfter, log)
		switch result.Status {
		case "failed":
			report.FailedCount++
		case "success":
			report.SuccessCount++
		}
		report.Results = append(report.Results, result)
	}
	return report, nil
}

func processFile(ctx context.Context, eng *engine.Engine, file, outputDir, archiveDir string, opts Options, glossary map[string]string, deleteAfter bool, log *zap.Logger) FileResult {
	result := FileResult{InputFile: file}

	data, err := os.ReadFile(file)
	if err != nil {
		result.Status = "failed"
		result.Error = err.Error()
		return result
	}
	if strings.TrimSpace(string(data)) == "" {
		result.Status = "skipped"
		result.Error = "file is empty"
		log.Warn("skipping empty file", zap.String("file", file))
		return result
	}

	translation, err := eng.Translate(ctx, engine.Request{
		Text:       string(data),
		TargetLang: opts.TargetLang,
		Domain:     opts.Domain,
		Glossary:   glossary,
		Summary:    opts.Summary,
	})
	if err != nil {
		result.Status = "failed"
		result.Error = err.Error()
		log.Error("file translation failed", zap.String("file", file), zap.Error(err))
		return result
	}
	result.Translation = translation

	outPath := sidecarPath(outputDir, file)
	if err := writeSidecar(outPath, translation); err != nil {
		result.Status = "failed"
		result.Error = err.Error()
		return result
	}
	result.OutputFile = outPath
	result.Status = "success"

	if deleteAfter {
		if err := os.Remove(file); err != nil {
			log.Warn("failed to delete input file", zap.String("file", file), zap.Error(err))
		} else {
			result.Deleted = true
		}
	} else if archiveDir != "" {
		archived, err := archive.MoveFile(file, archiveDir)
		if err != nil {
			log.Warn("failed to archive input file", zap.String("file", file), zap.Error(err))
		} else {
			result.Archived = true
			result.ArchivePath = archived
		}
	}

	log.Info("file translated",
		zap.String("file", file),
		zap.String("output", outPath),
		zap.Int("chunks", translation.ChunkCount))
	return result
}

// sidecarPath derives the output file name: the input name with a
// _translated suffix before the extension.
func sidecarPath(outputDir, inputFile string) string {
	name := filepath.Base(inputFile)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return filepath.Join(outputDir, stem+"_translated"+ext)
}

func writeSidecar(path string, translation *engine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(translation); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
