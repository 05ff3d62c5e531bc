package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultOutputPath is where a bare run writes the deck.
const DefaultOutputPath = "Nutshell_HackJNU4_Presentation.pptx"

// Supported console languages.
const (
	LanguageEnglish = "English"
	LanguageChinese = "简体中文"
)

// Config structure
type Config struct {
	OutputPath   string `yaml:"output_path" json:"outputPath"`
	DeckFile     string `yaml:"deck_file,omitempty" json:"deckFile,omitempty"` // optional YAML deck replacing the built-in one
	LogDir       string `yaml:"log_dir,omitempty" json:"logDir,omitempty"`     // empty logs to stderr only
	Language     string `yaml:"language" json:"language"`
	Verbose      bool   `yaml:"verbose" json:"verbose"`
	PreviewDir   string `yaml:"preview_dir" json:"previewDir"`
	PreviewWidth int    `yaml:"preview_width" json:"previewWidth"`
}

// Default returns the configuration of a run without arguments.
func Default() *Config {
	return &Config{
		OutputPath:   DefaultOutputPath,
		Language:     LanguageEnglish,
		PreviewDir:   "previews",
		PreviewWidth: 1280,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

var (
	ErrNoOutput        = errors.New("output path is empty")
	ErrNotPPTX         = errors.New("output path must end in .pptx")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrPreviewWidth    = errors.New("preview width must be positive")
)

// Validate checks the settings a build depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputPath) == "" {
		return ErrNoOutput
	}
	if !strings.EqualFold(filepath.Ext(c.OutputPath), ".pptx") {
		return fmt.Errorf("%w: %q", ErrNotPPTX, c.OutputPath)
	}
	switch c.Language {
	case LanguageEnglish, LanguageChinese:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, c.Language)
	}
	if c.PreviewWidth <= 0 {
		return ErrPreviewWidth
	}
	return nil
}
