package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashikant800/Hands-Free-Web/config"
	"github.com/shashikant800/Hands-Free-Web/deck"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&app{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunWithoutArguments(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t)
	require.NoError(t, err)

	info, err := os.Stat(config.DefaultOutputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Creating Nutshell Hackathon Presentation...", lines[0])
	assert.Equal(t, "✅ Presentation saved to: "+config.DefaultOutputPath, lines[1])
	assert.Equal(t, "📊 Total slides: 8", lines[2])
}

func TestBuildThenInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")

	_, err := execute(t, "build", "-o", path)
	require.NoError(t, err)

	out, err := execute(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Nutshell")
	assert.Contains(t, out, "Thank You!")
	assert.Contains(t, out, "🎥 Demo: youtu.be/KVOM2VvWypE")
}

func TestBuildRejectsNonPPTX(t *testing.T) {
	_, err := execute(t, "-o", filepath.Join(t.TempDir(), "deck.pdf"))
	assert.ErrorIs(t, err, config.ErrNotPPTX)
}

func TestDumpRoundTrip(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "dump")
	require.NoError(t, err)

	reloaded, err := deck.LoadYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, deck.Nutshell(), reloaded)

	descriptor := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(descriptor, []byte(out), 0644))

	pptx := filepath.Join(dir, "custom.pptx")
	out, err = execute(t, "build", "--deck", descriptor, "-o", pptx)
	require.NoError(t, err)
	assert.Contains(t, out, descriptor)
	assert.FileExists(t, pptx)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	pptx := filepath.Join(dir, "from-config.pptx")
	cfgPath := filepath.Join(dir, "nutdeck.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output_path: "+pptx+"\nlanguage: 简体中文\n"), 0644))

	out, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, pptx)
	assert.Contains(t, out, "幻灯片总数: 8")
}

func TestBuildWritesRunLog(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")

	_, err := execute(t, "build", "-o", filepath.Join(dir, "deck.pptx"), "--log-dir", logDir)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(logDir, "nutdeck_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "building 8 slides")
	assert.Contains(t, string(data), "run finished")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestInspectNeedsFile(t *testing.T) {
	_, err := execute(t, "inspect")
	assert.Error(t, err)
}
