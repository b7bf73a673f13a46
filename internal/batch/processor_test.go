package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"codeberg.org/snonux/polytrans/internal/config"
	"codeberg.org/snonux/polytrans/internal/engine"
	"codeberg.org/snonux/polytrans/internal/testutil"
)

func respondByPrompt(translation string) func(testutil.ModelCall) (string, error) {
	return func(call testutil.ModelCall) (string, error) {
		if strings.Contains(call.SystemPrompt, "language identification") {
			return "English", nil
		}
		return translation, nil
	}
}

func newTestSetup(t *testing.T) (*engine.Engine, *config.Config, string) {
	t.Helper()
	cfg := config.Default()
	model := &testutil.MockModel{Respond: respondByPrompt("【翻译结果】你好。【摘要】问候。")}
	eng, err := engine.New(cfg, model, zap.NewNop())
	require.NoError(t, err)
	return eng, cfg, t.TempDir()
}

func TestProcess(t *testing.T) {
	eng, cfg, dir := newTestSetup(t)
	inputDir := filepath.Join(dir, "input")
	outputDir := filepath.Join(dir, "completed")
	archiveDir := filepath.Join(dir, "archive")

	testutil.CreateTestFile(t, filepath.Join(inputDir, "doc.txt"), []byte("Hello, world."))
	testutil.CreateTestFile(t, filepath.Join(inputDir, "empty.txt"), []byte("   \n"))
	// Not matching the pattern, must be ignored.
	testutil.CreateTestFile(t, filepath.Join(inputDir, "notes.md"), []byte("ignored"))

	report, err := Process(context.Background(), eng, cfg, Options{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 0, report.FailedCount)
	require.Len(t, report.Results, 2)

	// Glob output is sorted, doc.txt before empty.txt.
	success := report.Results[0]
	assert.Equal(t, "success", success.Status)
	assert.Equal(t, filepath.Join(outputDir, "doc_translated.txt"), success.OutputFile)
	require.NotNil(t, success.Translation)
	assert.Equal(t, "你好。", success.Translation.TranslatedText)

	skipped := report.Results[1]
	assert.Equal(t, "skipped", skipped.Status)
	assert.Empty(t, skipped.OutputFile)

	// The sidecar holds the indented result record.
	testutil.AssertFileExists(t, success.OutputFile)
	testutil.AssertFileContains(t, success.OutputFile, `"translated_text": "你好。"`)
	testutil.AssertFileContains(t, success.OutputFile, `"detected_language": "English"`)

	// Default is archive, not delete.
	assert.True(t, success.Archived)
	testutil.AssertFileNotExists(t, filepath.Join(inputDir, "doc.txt"))
	testutil.AssertFileExists(t, filepath.Join(archiveDir, "doc.txt"))
	// Skipped files stay in place.
	testutil.AssertFileExists(t, filepath.Join(inputDir, "empty.txt"))
}

func TestProcess_DeleteAfter(t *testing.T) {
	eng, cfg, dir := newTestSetup(t)
	inputDir := filepath.Join(dir, "input")
	testutil.CreateTestFile(t, filepath.Join(inputDir, "doc.txt"), []byte("Hello."))

	yes := true
	report, err := Process(context.Background(), eng, cfg, Options{
		InputDir:    inputDir,
		OutputDir:   filepath.Join(dir, "completed"),
		DeleteAfter: &yes,
	}, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Deleted)
	assert.False(t, report.Results[0].Archived)
	testutil.AssertFileNotExists(t, filepath.Join(inputDir, "doc.txt"))
}

func TestProcess_FailureIsolation(t *testing.T) {
	cfg := config.Default()
	// Calls per file are detection + translation; fail the second file's
	// detection so the first succeeds and the second does not.
	model := &testutil.MockModel{
		Respond: respondByPrompt("【翻译结果】你好。【摘要】问候。"),
		ErrAt:   map[int]error{2: assert.AnError},
	}
	eng, err := engine.New(cfg, model, zap.NewNop())
	require.NoError(t, err)

	dir := t.TempDir()
	inputDir := filepath.Join(dir, "input")
	testutil.CreateTestFile(t, filepath.Join(inputDir, "a.txt"), []byte("First document."))
	testutil.CreateTestFile(t, filepath.Join(inputDir, "b.txt"), []byte("Second document."))

	report, err := Process(context.Background(), eng, cfg, Options{
		InputDir:   inputDir,
		OutputDir:  filepath.Join(dir, "completed"),
		ArchiveDir: filepath.Join(dir, "archive"),
	}, zap.NewNop())
	require.NoError(t, err, "per-file failures must not abort the batch")

	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailedCount)
	assert.Equal(t, "failed", report.Results[1].Status)
	assert.NotEmpty(t, report.Results[1].Error)
}

func TestProcess_MissingInputDir(t *testing.T) {
	eng, cfg, dir := newTestSetup(t)

	_, err := Process(context.Background(), eng, cfg, Options{
		InputDir:  filepath.Join(dir, "nope"),
		OutputDir: filepath.Join(dir, "completed"),
	}, zap.NewNop())
	assert.Error(t, err)
}

func TestProcess_NoMatchingFiles(t *testing.T) {
	eng, cfg, dir := newTestSetup(t)
	inputDir := filepath.Join(dir, "input")
	require.NoError(t, os.MkdirAll(inputDir, 0755))

	report, err := Process(context.Background(), eng, cfg, Options{
		InputDir:  inputDir,
		OutputDir: filepath.Join(dir, "completed"),
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, report.TotalFiles)
	assert.Contains(t, report.Message, "no files matching")
}

func TestLoadJobFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	content := `
input_dir: ./docs
target_lang: German
domain: legal
summary: false
delete_after: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadJobFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./docs", opts.InputDir)
	assert.Equal(t, "German", opts.TargetLang)
	assert.Equal(t, "legal", opts.Domain)
	require.NotNil(t, opts.Summary)
	assert.False(t, *opts.Summary)
	require.NotNil(t, opts.DeleteAfter)
	assert.True(t, *opts.DeleteAfter)
	// Unset fields stay zero so configuration defaults apply.
	assert.Empty(t, opts.OutputDir)
	assert.Empty(t, opts.Glossary)
}

func TestLoadJobFile_Missing(t *testing.T) {
	_, err := LoadJobFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
