package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/tunecat/internal/logger"
)

// FileName is the optional per-project configuration file.
const FileName = ".tunecat.yaml"

// ListingConfig configures the source listing dump
type ListingConfig struct {
	// Dirs are walked recursively and every file is concatenated
	Dirs []string `yaml:"dirs"`

	// Files are concatenated after the directories
	Files []string `yaml:"files"`

	// ExcludeDirs are directory names skipped while walking Dirs
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// SkipHidden skips directories whose name starts with "." while walking Dirs
	SkipHidden bool `yaml:"skip_hidden"`

	// Output is the listing file that is written
	Output string `yaml:"output"`
}

// Config represents tunecat configuration options.
// Relative paths are resolved against the project directory.
type Config struct {
	// ContentDir holds the ABC tune tree
	ContentDir string `yaml:"content_dir"`

	// DocsDir holds the Markdown documentation
	DocsDir string `yaml:"docs_dir"`

	// TuneOutput is the generated tune catalog module
	TuneOutput string `yaml:"tune_output"`

	// DocsOutput is the generated docs catalog module
	DocsOutput string `yaml:"docs_output"`

	// TuneExtension selects tune files
	TuneExtension string `yaml:"tune_extension"`

	// DocsExtension selects documentation files
	DocsExtension string `yaml:"docs_extension"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// WatchDebounce coalesces bursts of file events in watch mode
	WatchDebounce time.Duration `yaml:"watch_debounce"`

	// Listing configures the listing command
	Listing ListingConfig `yaml:"listing"`
}

// DefaultConfig returns the layout the front end expects
func DefaultConfig() *Config {
	return &Config{
		ContentDir:    "abc",
		DocsDir:       "docs",
		TuneOutput:    "js/data/abc-file-list.js",
		DocsOutput:    "js/data/docs-file-list.js",
		TuneExtension: ".abc",
		DocsExtension: ".md",
		LogLevel:      "info",
		WatchDebounce: 300 * time.Millisecond,
		Listing: ListingConfig{
			Dirs:   []string{"js", "css"},
			Files:  []string{"index.html"},
			Output: "list_files.txt",
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are strings in YAML ("300ms")
	type yamlConfig struct {
		ContentDir    string         `yaml:"content_dir"`
		DocsDir       string         `yaml:"docs_dir"`
		TuneOutput    string         `yaml:"tune_output"`
		DocsOutput    string         `yaml:"docs_output"`
		TuneExtension string         `yaml:"tune_extension"`
		DocsExtension string         `yaml:"docs_extension"`
		LogLevel      string         `yaml:"log_level"`
		WatchDebounce string         `yaml:"watch_debounce"`
		Listing       *ListingConfig `yaml:"listing"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.ContentDir != "" {
		cfg.ContentDir = yamlCfg.ContentDir
	}
	if yamlCfg.DocsDir != "" {
		cfg.DocsDir = yamlCfg.DocsDir
	}
	if yamlCfg.TuneOutput != "" {
		cfg.TuneOutput = yamlCfg.TuneOutput
	}
	if yamlCfg.DocsOutput != "" {
		cfg.DocsOutput = yamlCfg.DocsOutput
	}
	if yamlCfg.TuneExtension != "" {
		cfg.TuneExtension = normalizeExt(yamlCfg.TuneExtension)
	}
	if yamlCfg.DocsExtension != "" {
		cfg.DocsExtension = normalizeExt(yamlCfg.DocsExtension)
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.WatchDebounce != "" {
		d, err := time.ParseDuration(yamlCfg.WatchDebounce)
		if err != nil {
			return nil, fmt.Errorf("invalid watch_debounce format %q: %w", yamlCfg.WatchDebounce, err)
		}
		cfg.WatchDebounce = d
	}
	if yamlCfg.Listing != nil {
		// An explicit empty list disables that part of the listing
		if yamlCfg.Listing.Dirs != nil {
			cfg.Listing.Dirs = yamlCfg.Listing.Dirs
		}
		if yamlCfg.Listing.Files != nil {
			cfg.Listing.Files = yamlCfg.Listing.Files
		}
		if yamlCfg.Listing.Output != "" {
			cfg.Listing.Output = yamlCfg.Listing.Output
		}
		if yamlCfg.Listing.ExcludeDirs != nil {
			cfg.Listing.ExcludeDirs = yamlCfg.Listing.ExcludeDirs
		}
		cfg.Listing.SkipHidden = yamlCfg.Listing.SkipHidden
	}

	return cfg, nil
}

// LoadConfigFromDir loads .tunecat.yaml from the specified project directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	required := []struct {
		key   string
		value string
	}{
		{"content_dir", c.ContentDir},
		{"docs_dir", c.DocsDir},
		{"tune_output", c.TuneOutput},
		{"docs_output", c.DocsOutput},
		{"tune_extension", c.TuneExtension},
		{"docs_extension", c.DocsExtension},
		{"listing.output", c.Listing.Output},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s cannot be empty", r.key)
		}
	}

	if c.TuneOutput == c.DocsOutput {
		return fmt.Errorf("tune_output and docs_output must differ, both are %q", c.TuneOutput)
	}

	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must be >= 0, got %v", c.WatchDebounce)
	}

	return nil
}

// Resolve returns path joined to projectDir unless it is already absolute.
func Resolve(projectDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, filepath.FromSlash(path))
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
