package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"testing/quick"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Nutshell_HackJNU4_Presentation.pptx", cfg.OutputPath)
	assert.Equal(t, LanguageEnglish, cfg.Language)
	assert.Empty(t, cfg.DeckFile)
	assert.Empty(t, cfg.LogDir)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`output_path: build/deck.pptx
language: 简体中文
verbose: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build/deck.pptx", cfg.OutputPath)
	assert.Equal(t, LanguageChinese, cfg.Language)
	assert.True(t, cfg.Verbose)
	// untouched keys keep their defaults
	assert.Equal(t, 1280, cfg.PreviewWidth)
	assert.Equal(t, "previews", cfg.PreviewDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: Klingon\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"empty output", func(c *Config) { c.OutputPath = "  " }, ErrNoOutput},
		{"wrong extension", func(c *Config) { c.OutputPath = "deck.pdf" }, ErrNotPPTX},
		{"unknown language", func(c *Config) { c.Language = "Deutsch" }, ErrUnknownLanguage},
		{"zero preview width", func(c *Config) { c.PreviewWidth = 0 }, ErrPreviewWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}

	upper := Default()
	upper.OutputPath = "DECK.PPTX"
	assert.NoError(t, upper.Validate())
}

// Feature: config, Property 1: any non-empty base name with a .pptx extension is accepted
func TestProperty1_PPTXOutputAccepted(t *testing.T) {
	cfg := &quick.Config{
		MaxCount: 100,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		const chars = "abcdefghijklmnopqrstuvwxyz0123456789_-"
		name := make([]byte, r.Intn(16)+1)
		for i := range name {
			name[i] = chars[r.Intn(len(chars))]
		}

		c := Default()
		c.OutputPath = filepath.Join("out", string(name)+".pptx")
		if err := c.Validate(); err != nil {
			t.Logf("seed=%d: %q rejected: %v", seed, c.OutputPath, err)
			return false
		}
		return true
	}

	if err := quick.Check(f, cfg); err != nil {
		t.Errorf("Property 1 (.pptx output accepted) failed: %v", err)
	}
}
