package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultTemplateAwards(t *testing.T) {
	cfg := Default()
	if len(cfg.Ceremony.TemplateAwards) != 26 {
		t.Errorf("got %d template awards, want 26", len(cfg.Ceremony.TemplateAwards))
	}
	if cfg.Ceremony.ExpectedAwardCount != 26 {
		t.Errorf("ExpectedAwardCount = %d", cfg.Ceremony.ExpectedAwardCount)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ceremony.Year != "2013" {
		t.Errorf("Year = %q", cfg.Ceremony.Year)
	}
	if cfg.Corpus.Workers != 4 {
		t.Errorf("Workers = %d", cfg.Corpus.Workers)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
ceremony:
  year: "2015"
corpus:
  workers: 8
  drop_retweets: false
extract:
  host_min_mentions: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ceremony.Year != "2015" {
		t.Errorf("Year = %q", cfg.Ceremony.Year)
	}
	if cfg.Corpus.Workers != 8 {
		t.Errorf("Workers = %d", cfg.Corpus.Workers)
	}
	if cfg.Corpus.DropRetweets {
		t.Error("DropRetweets should be overridden to false")
	}
	if cfg.Extract.HostMinMentions != 10 {
		t.Errorf("HostMinMentions = %d", cfg.Extract.HostMinMentions)
	}
	// Untouched fields keep their defaults.
	if cfg.Extract.NomineeTopN != 5 {
		t.Errorf("NomineeTopN = %d", cfg.Extract.NomineeTopN)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad year", "ceremony:\n  year: \"13\"\n"},
		{"bad workers", "corpus:\n  workers: 500\n"},
		{"bad level", "logging:\n  level: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ceremony: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REDCARPET_DATA_DIR", "/srv/tweets")
	t.Setenv("REDCARPET_DB", "/srv/state/rc.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Corpus.DataDir != "/srv/tweets" {
		t.Errorf("DataDir = %q", cfg.Corpus.DataDir)
	}
	if cfg.Store.DatabasePath != "/srv/state/rc.db" {
		t.Errorf("DatabasePath = %q", cfg.Store.DatabasePath)
	}
}

func TestCorpusFilePrefersPlainJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Corpus.DataDir = dir

	// Without the plain file, the zip path is assumed.
	if got := cfg.CorpusFile(); got != filepath.Join(dir, "gg2013.json.zip") {
		t.Errorf("CorpusFile = %q", got)
	}

	plain := filepath.Join(dir, "gg2013.json")
	if err := os.WriteFile(plain, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := cfg.CorpusFile(); got != plain {
		t.Errorf("CorpusFile = %q, want %q", got, plain)
	}
}

func TestOutputPaths(t *testing.T) {
	cfg := Default()
	cfg.Corpus.OutputDir = "out"
	cfg.Ceremony.Year = "2015"

	if got := cfg.ResultsJSONPath(); got != filepath.Join("out", "gg2015_results.json") {
		t.Errorf("ResultsJSONPath = %q", got)
	}
	if got := cfg.ResultsTextPath(); got != filepath.Join("out", "gg2015_results.txt") {
		t.Errorf("ResultsTextPath = %q", got)
	}
	if got := cfg.AnswersPath(); got != filepath.Join("out", "gg2015answers.json") {
		t.Errorf("AnswersPath = %q", got)
	}
}
