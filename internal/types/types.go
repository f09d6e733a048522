package types

// Transcript is the diarized speech record of one filmed take.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

// Segment is one speaker-attributed span of speech. Start and End are
// offsets in seconds from the beginning of the recording.
type Segment struct {
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`

	// Valid is false when the source record lacked one of the four fields
	// above. Invalid segments are carried through so callers can count them,
	// but they never reach the notes document.
	Valid bool `json:"-"`
}

// Stats summarizes one compilation.
type Stats struct {
	Segments int `json:"segments"`
	Skipped  int `json:"skipped"`
	Plain    int `json:"plain"`
	Cues     int `json:"cues"`
	Silences int `json:"silences"`
	Markers  int `json:"markers"`
}
