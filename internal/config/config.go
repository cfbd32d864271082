// Package config loads and validates redcarpet configuration.
// Configuration lives in a single YAML file (default .redcarpet/config.yaml)
// with one sub-struct per concern. Every field has a usable default so the
// binary runs without any config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all redcarpet configuration.
type Config struct {
	// Ceremony identifies the event being analyzed.
	Ceremony CeremonyConfig `yaml:"ceremony"`

	// Corpus configures tweet ingestion.
	Corpus CorpusConfig `yaml:"corpus"`

	// Extract configures the extraction thresholds.
	Extract ExtractConfig `yaml:"extract"`

	// Store configures the SQLite store.
	Store StoreConfig `yaml:"store"`

	// Logging configures categorized debug logging.
	Logging LoggingConfig `yaml:"logging"`
}

// CeremonyConfig identifies the ceremony and its official award categories.
type CeremonyConfig struct {
	Year string `yaml:"year" validate:"required,len=4,numeric"`

	// TemplateAwards are the official category names. Winner, nominee and
	// presenter extraction runs against these to avoid cascading errors from
	// award discovery; the discovered list is still reported separately.
	TemplateAwards []string `yaml:"template_awards" validate:"min=1"`

	// ExpectedAwardCount bounds award discovery output.
	ExpectedAwardCount int `yaml:"expected_award_count" validate:"gt=0"`
}

// CorpusConfig configures tweet ingestion.
type CorpusConfig struct {
	// DataDir holds the corpus files (gg<year>.json or gg<year>.json.zip).
	DataDir string `yaml:"data_dir" validate:"required"`

	// OutputDir receives the results files.
	OutputDir string `yaml:"output_dir" validate:"required"`

	// Workers is the number of concurrent pipeline workers.
	Workers int `yaml:"workers" validate:"gte=1,lte=64"`

	// DropRetweets rejects tweets containing the RT marker.
	DropRetweets bool `yaml:"drop_retweets"`

	// Dedupe drops tweets whose normalized text hash was already seen.
	Dedupe bool `yaml:"dedupe"`
}

// ExtractConfig holds per-extractor thresholds. Zero values mean "use the
// extractor default"; these exist so a run can be tuned without recompiling.
type ExtractConfig struct {
	HostMinMentions      int     `yaml:"host_min_mentions"`
	HostTopN             int     `yaml:"host_top_n"`
	AwardMinMentions     int     `yaml:"award_min_mentions"`
	AwardClusterSim      float64 `yaml:"award_cluster_similarity" validate:"gte=0,lte=1"`
	WinnerMinMentions    int     `yaml:"winner_min_mentions"`
	NomineeMinMentions   int     `yaml:"nominee_min_mentions"`
	NomineeTopN          int     `yaml:"nominee_top_n"`
	PresenterMinMentions int     `yaml:"presenter_min_mentions"`
	PresenterTopN        int     `yaml:"presenter_top_n"`
	ExtrasMinMentions    int     `yaml:"extras_min_mentions"`
}

// StoreConfig configures the SQLite store.
type StoreConfig struct {
	// DatabasePath is the SQLite file. Empty disables persistence.
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures categorized debug logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Categories map[string]bool `yaml:"categories"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Ceremony: CeremonyConfig{
			Year:               "2013",
			TemplateAwards:     GoldenGlobes2013Awards(),
			ExpectedAwardCount: 26,
		},
		Corpus: CorpusConfig{
			DataDir:      "data",
			OutputDir:    ".",
			Workers:      4,
			DropRetweets: true,
			Dedupe:       true,
		},
		Extract: ExtractConfig{
			HostMinMentions:      30,
			HostTopN:             2,
			AwardMinMentions:     5,
			AwardClusterSim:      0.8,
			WinnerMinMentions:    3,
			NomineeMinMentions:   3,
			NomineeTopN:          5,
			PresenterMinMentions: 3,
			PresenterTopN:        2,
			ExtrasMinMentions:    5,
		},
		Store: StoreConfig{
			DatabasePath: filepath.Join(".redcarpet", "redcarpet.db"),
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Fields absent from the file keep their default values.
// Environment variables REDCARPET_DATA_DIR, REDCARPET_OUTPUT_DIR and
// REDCARPET_DB override the corresponding paths after the file is read.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REDCARPET_DATA_DIR"); v != "" {
		cfg.Corpus.DataDir = v
	}
	if v := os.Getenv("REDCARPET_OUTPUT_DIR"); v != "" {
		cfg.Corpus.OutputDir = v
	}
	if v := os.Getenv("REDCARPET_DB"); v != "" {
		cfg.Store.DatabasePath = v
	}
}

// Validate checks structural constraints via struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// CorpusFile returns the path to the tweet corpus for the configured year,
// preferring the plain JSON file over the zip archive.
func (c *Config) CorpusFile() string {
	plain := filepath.Join(c.Corpus.DataDir, fmt.Sprintf("gg%s.json", c.Ceremony.Year))
	if _, err := os.Stat(plain); err == nil {
		return plain
	}
	return plain + ".zip"
}

// ResultsJSONPath returns the autograder-facing results file path.
func (c *Config) ResultsJSONPath() string {
	return filepath.Join(c.Corpus.OutputDir, fmt.Sprintf("gg%s_results.json", c.Ceremony.Year))
}

// ResultsTextPath returns the human-readable results file path.
func (c *Config) ResultsTextPath() string {
	return filepath.Join(c.Corpus.OutputDir, fmt.Sprintf("gg%s_results.txt", c.Ceremony.Year))
}

// AnswersPath returns the ground-truth file path used by the autograder.
func (c *Config) AnswersPath() string {
	return filepath.Join(c.Corpus.OutputDir, fmt.Sprintf("gg%sanswers.json", c.Ceremony.Year))
}
