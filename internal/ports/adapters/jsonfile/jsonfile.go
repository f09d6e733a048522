package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/forPelevin/takenotes/internal/types"
)

// ErrFormat is returned when the document parses but has no "segments" array.
var ErrFormat = errors.New(`transcript has no "segments" array`)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Load(ctx context.Context, path string) (types.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return types.Transcript{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return types.Transcript{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a transcript document of the form {"segments": [...]}.
// Segment records missing text, start, end or speaker, or carrying them with
// the wrong JSON type, are returned with Valid=false.
func Decode(r io.Reader) (types.Transcript, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("read transcript: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return types.Transcript{}, fmt.Errorf("parse transcript: %w", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return types.Transcript{}, ErrFormat
	}
	raw, ok := obj["segments"].([]any)
	if !ok {
		return types.Transcript{}, ErrFormat
	}

	tr := types.Transcript{Segments: make([]types.Segment, 0, len(raw))}
	for _, item := range raw {
		tr.Segments = append(tr.Segments, decodeSegment(item))
	}
	return tr, nil
}

func decodeSegment(item any) types.Segment {
	rec, ok := item.(map[string]any)
	if !ok {
		return types.Segment{}
	}
	text, okText := rec["text"].(string)
	start, okStart := rec["start"].(float64)
	end, okEnd := rec["end"].(float64)
	speaker, okSpeaker := rec["speaker"].(string)
	return types.Segment{
		Text:    text,
		Start:   start,
		End:     end,
		Speaker: speaker,
		Valid:   okText && okStart && okEnd && okSpeaker,
	}
}
