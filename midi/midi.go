package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ManHinnn0509/owmidiconverter/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func Read(rd io.Reader) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(rd)

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	var blank smf.SMF

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return Read(bytes.NewReader(dat))
}

// BuildTimeline flattens an SMF into per-track note events with absolute
// times in seconds. Velocity-0 note-ons are kept; filtering them is the
// aggregator's job. Tracks without any note-on are dropped.
func BuildTimeline(s *smf.SMF) model.Timeline {
	var tl model.Timeline

	for _, events := range s.Tracks {
		var track model.Track
		var absTicks int64
		var channelSet bool
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				if !channelSet {
					track.Channel = channel
					channelSet = true
				}
				t := float64(s.TimeAt(absTicks)) / 1e6
				track.Events = append(track.Events, model.NoteEvent{
					Time:     t,
					Pitch:    key,
					Velocity: velocity,
				})
				if t > tl.Duration {
					tl.Duration = t
				}
			}
		}
		if len(track.Events) > 0 {
			tl.Tracks = append(tl.Tracks, track)
		}
	}

	return tl
}
