package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProject lays out files (slash paths relative to dir) with the given contents.
func writeProject(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func sampleProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeProject(t, dir, map[string]string{
		"abc/tune.abc":        "X:1\nT:Greensleeves\nK:Em\n",
		"abc/reels/fast.abc":  "T:Fast Reel\nK:D\n",
		"docs/guide.md":       "# User Guide\n\nHow to play.\n",
		"docs/setup_notes.md": "No heading here.\n",
		"abc/reels/notes.txt": "ignored",
	})
	return dir
}

func TestRootCommand(t *testing.T) {
	output, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "tunecat")
	assert.Contains(t, output, "catalog")
	assert.Contains(t, output, "--dir")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "tunecat", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"generate", "validate", "tree", "listing", "watch"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, output, Version)
}

func TestRootCommand_GeneratesBothCatalogs(t *testing.T) {
	dir := sampleProject(t)

	output, err := execute(t, "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "Generated file list with 1 ABC files\n")
	assert.Contains(t, output, "Generated docs file list with 2 markdown files\n")

	tunes, err := os.ReadFile(filepath.Join(dir, "js", "data", "abc-file-list.js"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(tunes), "// Auto-generated file list - do not edit manually\nclass AbcFileList {\n"))
	assert.Contains(t, string(tunes), `"name": "Greensleeves"`)
	assert.Contains(t, string(tunes), `"category": "General"`)
	assert.NotContains(t, string(tunes), "fast.abc")

	docs, err := os.ReadFile(filepath.Join(dir, "js", "data", "docs-file-list.js"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(docs), "// Auto-generated docs file list - do not edit manually\nclass DocsFileList {\n"))
	assert.Contains(t, string(docs), `"name": "User Guide"`)
	assert.Contains(t, string(docs), `"name": "Setup Notes"`)
	assert.NotContains(t, string(docs), "category")
}

func TestRootCommand_Idempotent(t *testing.T) {
	dir := sampleProject(t)
	out := filepath.Join(dir, "js", "data", "abc-file-list.js")

	_, err := execute(t, "--dir", dir)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = execute(t, "--dir", dir)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRootCommand_BootstrapsMissingDirectories(t *testing.T) {
	dir := t.TempDir()

	output, err := execute(t, "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "Created "+filepath.Join(dir, "abc")+" directory")
	assert.Contains(t, output, "Created "+filepath.Join(dir, "docs")+" directory")
	assert.Contains(t, output, "Generated file list with 0 ABC files")
	assert.Contains(t, output, "Generated docs file list with 0 markdown files")

	assert.DirExists(t, filepath.Join(dir, "abc"))
	assert.DirExists(t, filepath.Join(dir, "docs"))

	tunes, err := os.ReadFile(filepath.Join(dir, "js", "data", "abc-file-list.js"))
	require.NoError(t, err)
	assert.Contains(t, string(tunes), "return [];")
}

func TestRootCommand_BadConfigUsesDefaults(t *testing.T) {
	dir := sampleProject(t)
	writeProject(t, dir, map[string]string{".tunecat.yaml": "content_dir: [unterminated\n"})

	output, err := execute(t, "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "using defaults")
	assert.Contains(t, output, "Generated file list with 1 ABC files")
}

func TestRootCommand_ConfigOverridesLayout(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, map[string]string{
		".tunecat.yaml":    "content_dir: tunes\ntune_output: out/tunes.js\n",
		"tunes/jigs/a.abc": "X:7\nT:Jig A\n",
	})

	output, err := execute(t, "--dir", dir, "generate", "tunes")
	require.NoError(t, err)
	assert.Contains(t, output, "Generated file list with 1 ABC files")
	assert.NotContains(t, output, "markdown files")

	data, err := os.ReadFile(filepath.Join(dir, "out", "tunes.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"file": "jigs/a.abc"`)
	assert.Contains(t, string(data), `"category": "jigs"`)
	assert.NoFileExists(t, filepath.Join(dir, "js", "data", "docs-file-list.js"))
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	_, err := execute(t, "--dir", t.TempDir(), "bogus")
	assert.Error(t, err)
}

func TestRootCommand_LogLevelFlag(t *testing.T) {
	dir := sampleProject(t)

	output, err := execute(t, "--dir", dir, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, output, "[DEBUG]")

	output, err = execute(t, "--dir", t.TempDir(), "--log-level", "error")
	require.NoError(t, err)
	assert.NotContains(t, output, "Created")
	assert.Contains(t, output, "Generated file list with 0 ABC files")
}

func TestRootCommand_WriteFailureKeepsGoing(t *testing.T) {
	dir := sampleProject(t)
	writeProject(t, dir, map[string]string{
		".tunecat.yaml":          "tune_output: js/data/tunes\n",
		"js/data/tunes/keep.txt": "occupies the output path",
	})

	output, err := execute(t, "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "[ERROR] Failed to generate tunes catalog")
	assert.NotContains(t, output, "Generated file list with")
	assert.Contains(t, output, "Generated docs file list with 2 markdown files")
	assert.FileExists(t, filepath.Join(dir, "js", "data", "docs-file-list.js"))
}
