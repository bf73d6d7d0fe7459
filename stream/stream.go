package stream

import (
	"github.com/ManHinnn0509/owmidiconverter/constants"
	"github.com/ManHinnn0509/owmidiconverter/model"
	"github.com/ManHinnn0509/owmidiconverter/util"
)

// Build walks chords in time order and encodes them as three parallel
// streams, stopping before the chord whose contribution would blow the
// element budget. The returned stop time (ms) is that chord's time, or the
// last committed chord's if everything fit. The first delay is always 0.
func Build(chords []model.TimedChord, budget int, compress bool) (model.EncodedStreams, int64) {
	var s model.EncodedStreams
	if len(chords) == 0 {
		return s, 0
	}

	prev := chords[0].TimeMs
	stop := prev
	for _, c := range chords {
		numDelays := len(s.Delays) + 1
		numSizes := len(s.Sizes) + 1
		numPitches := len(s.Pitches) + len(c.Pitches)
		if estimate(numPitches, numDelays, numSizes, compress) > budget {
			return s, c.TimeMs
		}

		delay := util.Min(c.TimeMs-prev, constants.MaxDelayMs)
		s.Delays = append(s.Delays, int(delay))
		s.Sizes = append(s.Sizes, len(c.Pitches))
		s.Pitches = append(s.Pitches, c.Pitches...)
		prev = c.TimeMs
		stop = c.TimeMs
	}
	return s, stop
}

// estimate mirrors the packed layout: pitches carry 2 digits, delays 4,
// sizes 1, re-sliced into 7-digit elements per stream. The packer slices
// each stream on its own, so the ceilings are taken per stream; a joint
// ceiling over all digits can undercount by up to 2 elements. Without
// compression every value is one element.
func estimate(numPitches, numDelays, numSizes int, compress bool) int {
	if !compress {
		return numPitches + numDelays + numSizes
	}
	return packedLen(numPitches, constants.PitchDigits) +
		packedLen(numDelays, constants.DelayDigits) +
		packedLen(numSizes, constants.SizeDigits)
}

func packedLen(count int, width int) int {
	return (count*width + constants.PackedDigits - 1) / constants.PackedDigits
}
