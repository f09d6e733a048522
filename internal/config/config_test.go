package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.SilenceThreshold != 4 || cfg.Suffix != "-transcript.txt" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	opts, err := cfg.NotesOptions()
	if err != nil {
		t.Fatalf("notes options: %v", err)
	}
	if got := opts.Cues.End(); len(got) != 2 {
		t.Fatalf("expected two end cues, got %q", got)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "takenotes.yaml")
	body := strings.Join([]string{
		"silence_threshold: 2.5",
		"start_cues: [Acción, action]",
		"labels:",
		"  silence: SILENCE",
		"workers: 2",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TAKENOTES_END_CUES", "cut, corten ")
	t.Setenv("TAKENOTES_WORKERS", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SilenceThreshold != 2.5 {
		t.Fatalf("threshold = %v, want 2.5", cfg.SilenceThreshold)
	}
	if len(cfg.StartCues) != 2 || cfg.StartCues[0] != "Acción" {
		t.Fatalf("unexpected start cues: %q", cfg.StartCues)
	}
	if len(cfg.EndCues) != 2 || cfg.EndCues[0] != "cut" || cfg.EndCues[1] != "corten" {
		t.Fatalf("unexpected end cues: %q", cfg.EndCues)
	}
	if cfg.Labels.Silence != "SILENCE" || cfg.Labels.NotesHeader != "NOTAS" {
		t.Fatalf("expected partial label override, got %+v", cfg.Labels)
	}
	if cfg.Workers != 3 {
		t.Fatalf("workers = %d, want env override 3", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoad_CommentOnlyFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"empty.yaml":    "",
		"comments.yaml": "# only comments\n# silence_threshold: 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.SilenceThreshold != 4 || cfg.Suffix != DefaultSuffix || len(cfg.EndCues) != 2 {
				t.Fatalf("expected defaults, got %+v", cfg)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("threshold: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(unknown); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	t.Setenv("TAKENOTES_SILENCE_THRESHOLD", "four")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "TAKENOTES_SILENCE_THRESHOLD") {
		t.Fatalf("expected threshold env error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative threshold", func(c *Config) { c.SilenceThreshold = -1 }, "silence threshold"},
		{"no start cues", func(c *Config) { c.StartCues = nil }, "start cues are empty"},
		{"blank cue", func(c *Config) { c.EndCues = []string{"corten", " "} }, "must not be empty"},
		{"overlapping cues", func(c *Config) { c.EndCues = []string{"ACCIÓN"} }, "both a start and an end cue"},
		{"empty label", func(c *Config) { c.Labels.Silence = "" }, "labels"},
		{"empty suffix", func(c *Config) { c.Suffix = "" }, "suffix is empty"},
		{"suffix with dir", func(c *Config) { c.Suffix = "/x.txt" }, "path separator"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers must be > 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}
