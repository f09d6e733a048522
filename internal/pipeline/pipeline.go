package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/forPelevin/takenotes/internal/domain/notes"
	"github.com/forPelevin/takenotes/internal/logger"
	"github.com/forPelevin/takenotes/internal/ports"
	"github.com/forPelevin/takenotes/internal/ports/adapters/jsonfile"
	"github.com/forPelevin/takenotes/internal/types"
	"github.com/forPelevin/takenotes/internal/usecase"
)

type Config struct {
	Inputs []string
	// OutDir receives the documents. If empty, each document is written next
	// to its input.
	OutDir  string
	Suffix  string
	Workers int
	Notes   notes.Options

	// Stdout, when set, receives the document of the single input instead of
	// a file.
	Stdout io.Writer

	Logf func(format string, args ...any)
	Log  *logger.Logger

	// Source overrides the transcript loader. Defaults to JSON files.
	Source ports.TranscriptSource
}

func (c Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("no inputs")
	}
	for _, in := range c.Inputs {
		if strings.TrimSpace(in) == "" {
			return errors.New("input is empty")
		}
	}
	if c.Stdout != nil && len(c.Inputs) != 1 {
		return fmt.Errorf("stdout output needs exactly one input, got %d", len(c.Inputs))
	}
	if c.Suffix == "" {
		return errors.New("suffix is empty")
	}
	if c.Workers <= 0 {
		return errors.New("workers must be > 0")
	}
	if c.Stdout == nil {
		seen := make(map[string]string, len(c.Inputs))
		for _, in := range c.Inputs {
			out := filepath.Clean(OutputPath(in, c.OutDir, c.Suffix))
			if prev, ok := seen[out]; ok {
				return fmt.Errorf("inputs %s and %s both write %s", prev, in, out)
			}
			seen[out] = in
		}
	}
	if c.OutDir != "" {
		fi, err := os.Stat(c.OutDir)
		switch {
		case err == nil && !fi.IsDir():
			return fmt.Errorf("out %s: not a directory", c.OutDir)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("stat out: %w", err)
		}
	}
	return nil
}

// Output is the outcome of one input.
type Output struct {
	Input   string
	OutPath string
	Stats   types.Stats
	Err     error
}

type Result struct {
	Outputs []Output
}

// Failed returns the outputs whose input could not be compiled.
func (r Result) Failed() []Output {
	var out []Output
	for _, o := range r.Outputs {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Run compiles every input independently. A failing input never stops the
// others; the returned error joins all per-input failures.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	src := cfg.Source
	if src == nil {
		src = jsonfile.New()
	}

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return Result{}, err
		}
		logf("output dir: %s", cfg.OutDir)
	}

	uc := usecase.New(usecase.Deps{Source: src})
	outs := make([]Output, len(cfg.Inputs))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, in := range cfg.Inputs {
		i, in := i, in
		g.Go(func() error {
			outs[i] = runOne(ctx, uc, cfg, in, logf)
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Outputs: outs}
	var errs []error
	for _, o := range res.Outputs {
		if o.Err != nil {
			log.Error("transcript failed", "input", o.Input, "err", o.Err)
			errs = append(errs, fmt.Errorf("%s: %w", o.Input, o.Err))
			continue
		}
		if o.Stats.Skipped > 0 {
			log.Warn("segments skipped", "input", o.Input, "skipped", o.Stats.Skipped)
		}
		log.Info("notes written",
			"input", o.Input,
			"out", o.OutPath,
			"segments", o.Stats.Segments,
			"skipped", o.Stats.Skipped,
			"cues", o.Stats.Cues,
			"silences", o.Stats.Silences,
		)
	}
	return res, errors.Join(errs...)
}

func runOne(ctx context.Context, uc usecase.Usecase, cfg Config, input string, logf func(string, ...any)) Output {
	o := Output{Input: input}
	if err := ctx.Err(); err != nil {
		o.Err = err
		return o
	}

	in := usecase.Input{Ref: input, Options: cfg.Notes}
	if cfg.Stdout != nil {
		in.Out = cfg.Stdout
	} else {
		in.OutPath = OutputPath(input, cfg.OutDir, cfg.Suffix)
	}
	logf("compiling %s", input)

	res, err := uc.Run(ctx, in)
	if err != nil {
		o.Err = err
		return o
	}
	o.OutPath = res.OutPath
	o.Stats = res.Stats
	return o
}

// OutputPath names the notes document of input: its base name without
// extension plus suffix, in outDir or next to the input.
func OutputPath(input, outDir, suffix string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if name == "" {
		name = "transcript"
	}
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name+suffix)
}
