package chord

import (
	"errors"
	"math"
	"sort"

	"github.com/ManHinnn0509/owmidiconverter/constants"
	"github.com/ManHinnn0509/owmidiconverter/model"
	"github.com/ManHinnn0509/owmidiconverter/util"
)

var ErrNoNotes = errors.New("no notes found after filtering; nothing to convert")

const singleTrackWarning = "file has a single track; type 0 files sometimes multiplex channels onto one track and may convert strangely"

type Result struct {
	Chords     []model.TimedChord
	Transposed int
	Skipped    int
	Warnings   []string
}

// quantizing onsets to whole milliseconds merges near-simultaneous
// note-ons into one chord key
func quantizeMs(t float64) int64 {
	return int64(math.Round(t * 1000))
}

// intoRange octave-shifts pitch until it fits the instrument range. It
// always terminates because the range spans more than an octave.
func intoRange(pitch int) (int, bool) {
	shifted := false
	for pitch < constants.MinPitch {
		pitch += constants.Octave
		shifted = true
	}
	for pitch > constants.MaxPitch {
		pitch -= constants.Octave
		shifted = true
	}
	return pitch, shifted
}

func contains(notes []int, pitch int) bool {
	for _, n := range notes {
		if n == pitch {
			return true
		}
	}
	return false
}

// Aggregate groups note events into time-keyed chords: percussion,
// note-offs and events before startTime are dropped, pitches are forced
// into the instrument range and zero-based, and each chord holds at most
// voices distinct pitches. Chords come back sorted by time.
func Aggregate(tl model.Timeline, startTime float64, voices int) (Result, error) {
	var res Result

	if len(tl.Tracks) == 1 {
		res.Warnings = append(res.Warnings, singleTrackWarning)
	}

	chords := make(map[int64][]int)
	for _, track := range tl.Tracks {
		if track.Channel == constants.PercussionChannel {
			continue
		}
		for _, evt := range track.Events {
			if evt.Velocity == 0 || evt.Time < startTime {
				continue
			}

			pitch, shifted := intoRange(int(evt.Pitch))
			if shifted {
				res.Transposed++
			}
			pitch -= constants.MinPitch

			key := quantizeMs(evt.Time)
			notes := chords[key]
			if contains(notes, pitch) {
				// same pitch twice at one instant; not a skip
				continue
			}
			if len(notes) >= voices {
				res.Skipped++
				continue
			}
			chords[key] = append(notes, pitch)
		}
	}

	if len(chords) == 0 {
		return res, ErrNoNotes
	}

	keys := util.GetKeys(chords)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		notes := chords[k]
		sort.Ints(notes)
		res.Chords = append(res.Chords, model.TimedChord{TimeMs: k, Pitches: notes})
	}
	return res, nil
}
