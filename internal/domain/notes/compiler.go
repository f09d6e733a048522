package notes

import (
	"io"

	"github.com/forPelevin/takenotes/internal/types"
)

// Options configures one compilation.
type Options struct {
	SilenceThreshold float64
	Cues             CueSet
	Labels           Labels
}

func DefaultOptions() Options {
	return Options{
		SilenceThreshold: DefaultSilenceThreshold,
		Cues:             DefaultCues(),
		Labels:           DefaultLabels(),
	}
}

// runState is owned by a single Compiler and dropped with it.
type runState struct {
	headerEmitted bool
	gaps          *GapTracker
}

// Compiler turns an ordered stream of segments into a notes document.
// A Compiler is single-use and not safe for concurrent use; run one per
// transcript.
type Compiler struct {
	opts  Options
	w     *Writer
	state runState
	stats types.Stats
}

func NewCompiler(w io.Writer, opts Options) *Compiler {
	return &Compiler{
		opts:  opts,
		w:     NewWriter(w, opts.Labels),
		state: runState{gaps: NewGapTracker(opts.SilenceThreshold)},
	}
}

// Add processes the next segment. Invalid segments are counted and skipped
// without touching the run state.
func (c *Compiler) Add(s types.Segment) {
	c.stats.Segments++
	if !s.Valid {
		c.stats.Skipped++
		return
	}

	switch c.opts.Cues.Classify(Normalize(s.Text)) {
	case StartCue:
		c.marker(DialogueStart)
		c.w.Cue(s)
		c.stats.Cues++
	case EndCue:
		c.w.Cue(s)
		c.stats.Cues++
		c.marker(DialogueEnd)
		// Not guarded by headerEmitted: a later plain line may add a second
		// header.
		c.marker(NotesHeader)
	default:
		if c.state.gaps.Check(s.Start, s.End) {
			c.marker(Silence)
			c.stats.Silences++
		}
		if !c.state.headerEmitted {
			c.marker(NotesHeader)
			c.state.headerEmitted = true
		}
		c.w.Plain(s)
		c.stats.Plain++
	}
}

func (c *Compiler) marker(m Marker) {
	c.w.Marker(m)
	c.stats.Markers++
}

// Close flushes the document. It does not close the underlying stream.
func (c *Compiler) Close() (types.Stats, error) {
	return c.stats, c.w.Flush()
}

// Compile runs a full compilation of segs into w.
func Compile(w io.Writer, segs []types.Segment, opts Options) (types.Stats, error) {
	c := NewCompiler(w, opts)
	for _, s := range segs {
		c.Add(s)
	}
	return c.Close()
}
