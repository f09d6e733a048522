package notes

import (
	"bufio"
	"fmt"
	"io"

	"github.com/forPelevin/takenotes/internal/types"
)

// Marker is a structural line of the notes document.
type Marker int

const (
	DialogueStart Marker = iota
	DialogueEnd
	Silence
	NotesHeader
)

// Labels are the texts rendered for each marker.
type Labels struct {
	DialogueStart string `yaml:"dialogue_start"`
	DialogueEnd   string `yaml:"dialogue_end"`
	Silence       string `yaml:"silence"`
	NotesHeader   string `yaml:"notes_header"`
}

func DefaultLabels() Labels {
	return Labels{
		DialogueStart: "COMIENZO DEL DIÁLOGO",
		DialogueEnd:   "FIN DEL DIÁLOGO",
		Silence:       "SILENCIO",
		NotesHeader:   "NOTAS",
	}
}

func (l Labels) text(m Marker) string {
	switch m {
	case DialogueStart:
		return l.DialogueStart
	case DialogueEnd:
		return l.DialogueEnd
	case Silence:
		return l.Silence
	default:
		return l.NotesHeader
	}
}

// Writer appends notes lines to an underlying stream in call order. The
// first write error is kept and every later call becomes a no-op.
type Writer struct {
	bw     *bufio.Writer
	labels Labels
	err    error
}

func NewWriter(w io.Writer, labels Labels) *Writer {
	return &Writer{bw: bufio.NewWriter(w), labels: labels}
}

// Marker writes a marker surrounded by blank lines.
func (w *Writer) Marker(m Marker) {
	w.printf("\n%s\n\n", w.labels.text(m))
}

// Cue writes a cue line: "HH:MM:SS speaker text".
func (w *Writer) Cue(s types.Segment) {
	w.printf("%s %s %s\n", FormatTimecode(s.Start), s.Speaker, s.Text)
}

// Plain writes an ordinary line: "HH:MM:SS - speaker text".
func (w *Writer) Plain(s types.Segment) {
	w.printf("%s - %s %s\n", FormatTimecode(s.Start), s.Speaker, s.Text)
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.bw, format, args...)
}

// Flush pushes buffered lines to the underlying stream and returns the first
// error seen by the writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.Flush()
	return w.err
}
