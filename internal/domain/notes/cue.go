package notes

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the classification of a segment's text.
type Kind int

const (
	Plain Kind = iota
	StartCue
	EndCue
)

func (k Kind) String() string {
	switch k {
	case StartCue:
		return "start-cue"
	case EndCue:
		return "end-cue"
	default:
		return "plain"
	}
}

// CueSet holds the normalized start and end keywords of one run.
type CueSet struct {
	start []string
	end   []string
}

// DefaultCues is "accion" to open a take and "corten"/"corte" to close it.
func DefaultCues() CueSet {
	return CueSet{
		start: []string{"accion"},
		end:   []string{"corten", "corte"},
	}
}

// NewCueSet normalizes the keywords and checks that both sets are usable.
func NewCueSet(start, end []string) (CueSet, error) {
	cs := CueSet{start: normalizeAll(start), end: normalizeAll(end)}
	if len(cs.start) == 0 {
		return CueSet{}, errors.New("start cues are empty")
	}
	if len(cs.end) == 0 {
		return CueSet{}, errors.New("end cues are empty")
	}
	for _, s := range cs.start {
		for _, e := range cs.end {
			if s == e {
				return CueSet{}, fmt.Errorf("cue %q is both a start and an end cue", s)
			}
		}
	}
	return cs, nil
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		k = strings.TrimSpace(Normalize(k))
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	return out
}

// Start returns a copy of the start keywords.
func (c CueSet) Start() []string { return append([]string(nil), c.start...) }

// End returns a copy of the end keywords.
func (c CueSet) End() []string { return append([]string(nil), c.end...) }

// Classify reports whether normalized text contains a start or end keyword.
// Matching is plain substring containment; start keywords are checked first.
func (c CueSet) Classify(normalized string) Kind {
	for _, k := range c.start {
		if strings.Contains(normalized, k) {
			return StartCue
		}
	}
	for _, k := range c.end {
		if strings.Contains(normalized, k) {
			return EndCue
		}
	}
	return Plain
}
