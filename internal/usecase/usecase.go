package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/forPelevin/takenotes/internal/domain/notes"
	"github.com/forPelevin/takenotes/internal/ports"
	"github.com/forPelevin/takenotes/internal/types"
)

type Deps struct {
	Source ports.TranscriptSource
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	// Ref identifies the transcript for the source.
	Ref string
	// OutPath is where the notes document is written. Ignored when Out is set.
	OutPath string
	// Out, when non-nil, receives the document instead of OutPath.
	Out     io.Writer
	Options notes.Options
}

type Result struct {
	OutPath string
	Stats   types.Stats
}

// Run compiles one transcript into a notes document. Nothing is written to
// OutPath unless the whole document was produced.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	tr, err := u.d.Source.Load(ctx, in.Ref)
	if err != nil {
		return Result{}, err
	}

	if in.Out != nil {
		st, err := notes.Compile(in.Out, tr.Segments, in.Options)
		if err != nil {
			return Result{}, fmt.Errorf("write notes: %w", err)
		}
		return Result{Stats: st}, nil
	}

	if in.OutPath == "" {
		return Result{}, errors.New("output path is empty")
	}
	var st types.Stats
	err = writeFileAtomic(in.OutPath, func(w io.Writer) error {
		var err error
		st, err = notes.Compile(w, tr.Segments, in.Options)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("write notes: %w", err)
	}
	return Result{OutPath: in.OutPath, Stats: st}, nil
}

// writeFileAtomic writes through a temp file in the destination directory and
// renames it into place only when fill succeeded. The temp file is closed and
// removed on every other path.
func writeFileAtomic(path string, fill func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = fill(f); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
