package model

// NoteEvent is a single note-on extracted from the source file, with its
// absolute time in seconds.
type NoteEvent struct {
	Time     float64
	Pitch    uint8
	Velocity uint8
}

type Track struct {
	Channel uint8
	Events  []NoteEvent
}

type Timeline struct {
	Duration float64
	Tracks   []Track
}

// TimedChord holds the distinct pitches sounding at one quantized instant.
// TimeMs is the chord key in whole milliseconds; pitches are zero-based
// against the instrument range and sorted ascending.
type TimedChord struct {
	TimeMs  int64
	Pitches []int
}

// EncodedStreams are the three parallel arrays the in-game player reads:
// sum(Sizes) == len(Pitches) and len(Delays) == len(Sizes) always hold.
type EncodedStreams struct {
	Delays  []int
	Sizes   []int
	Pitches []int
}

// PackedStreams carry the same three arrays after fixed-width digit
// packing.
type PackedStreams struct {
	Delays  []int
	Sizes   []int
	Pitches []int
}

type ConversionResult struct {
	Rules           string
	TransposedNotes int
	SkippedNotes    int
	Duration        float64
	StopTime        float64
	Warnings        []string
	Errors          []string
}

type ConversionRecord struct {
	Id         string
	Filename   string
	Voices     int
	Transposed int
	Skipped    int
	StopTime   float64
	CreatedAt  string
}
