package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forPelevin/takenotes/internal/domain/notes"
)

const (
	DefaultSuffix  = "-transcript.txt"
	DefaultWorkers = 4
)

// Config is the run configuration of the notes compiler.
type Config struct {
	SilenceThreshold float64      `yaml:"silence_threshold"`
	StartCues        []string     `yaml:"start_cues"`
	EndCues          []string     `yaml:"end_cues"`
	Labels           notes.Labels `yaml:"labels"`

	// Suffix replaces the input extension to name the output document.
	Suffix string `yaml:"suffix"`
	// OutDir, when set, receives every output document. Otherwise each
	// document is written next to its input.
	OutDir  string `yaml:"out_dir"`
	Workers int    `yaml:"workers"`
	LogMode string `yaml:"log"`
}

func Default() Config {
	cues := notes.DefaultCues()
	return Config{
		SilenceThreshold: notes.DefaultSilenceThreshold,
		StartCues:        cues.Start(),
		EndCues:          cues.End(),
		Labels:           notes.DefaultLabels(),
		Suffix:           DefaultSuffix,
		Workers:          DefaultWorkers,
		LogMode:          "dev",
	}
}

// Load layers defaults, the optional YAML file at path and TAKENOTES_*
// environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty or comment-only file: nothing to override.
			return nil
		}
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from TAKENOTES_* variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("TAKENOTES_SILENCE_THRESHOLD")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("TAKENOTES_SILENCE_THRESHOLD: %w", err)
		}
		c.SilenceThreshold = f
	}
	if v := getenv("TAKENOTES_START_CUES"); strings.TrimSpace(v) != "" {
		c.StartCues = splitList(v)
	}
	if v := getenv("TAKENOTES_END_CUES"); strings.TrimSpace(v) != "" {
		c.EndCues = splitList(v)
	}
	if v := strings.TrimSpace(getenv("TAKENOTES_SUFFIX")); v != "" {
		c.Suffix = v
	}
	if v := strings.TrimSpace(getenv("TAKENOTES_OUT")); v != "" {
		c.OutDir = v
	}
	if v := strings.TrimSpace(getenv("TAKENOTES_WORKERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TAKENOTES_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := strings.TrimSpace(getenv("TAKENOTES_LOG")); v != "" {
		c.LogMode = v
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) Validate() error {
	if math.IsNaN(c.SilenceThreshold) || math.IsInf(c.SilenceThreshold, 0) || c.SilenceThreshold < 0 {
		return fmt.Errorf("silence threshold must be a non-negative number")
	}
	for _, k := range append(append([]string(nil), c.StartCues...), c.EndCues...) {
		if strings.TrimSpace(k) == "" {
			return errors.New("cue keywords must not be empty")
		}
	}
	if _, err := notes.NewCueSet(c.StartCues, c.EndCues); err != nil {
		return err
	}
	if c.Labels.DialogueStart == "" || c.Labels.DialogueEnd == "" || c.Labels.Silence == "" || c.Labels.NotesHeader == "" {
		return errors.New("marker labels must not be empty")
	}
	if strings.TrimSpace(c.Suffix) == "" {
		return errors.New("suffix is empty")
	}
	if strings.ContainsAny(c.Suffix, `/\`) {
		return fmt.Errorf("suffix %q must not contain a path separator", c.Suffix)
	}
	if c.Workers <= 0 {
		return errors.New("workers must be > 0")
	}
	return nil
}

// NotesOptions converts the configuration into compiler options.
func (c Config) NotesOptions() (notes.Options, error) {
	cues, err := notes.NewCueSet(c.StartCues, c.EndCues)
	if err != nil {
		return notes.Options{}, err
	}
	return notes.Options{
		SilenceThreshold: c.SilenceThreshold,
		Cues:             cues,
		Labels:           c.Labels,
	}, nil
}
