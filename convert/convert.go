package convert

import (
	"github.com/ManHinnn0509/owmidiconverter/chord"
	"github.com/ManHinnn0509/owmidiconverter/constants"
	"github.com/ManHinnn0509/owmidiconverter/midi"
	"github.com/ManHinnn0509/owmidiconverter/model"
	"github.com/ManHinnn0509/owmidiconverter/pack"
	"github.com/ManHinnn0509/owmidiconverter/rules"
	"github.com/ManHinnn0509/owmidiconverter/stream"
)

// Convert runs the whole pipeline on a timeline: aggregate chords, build
// the bounded streams, optionally digit-pack them, emit the rule text.
// Problems are accumulated in Warnings/Errors; a result with a non-empty
// Errors list carries no rule text.
func Convert(tl model.Timeline, opts Options) model.ConversionResult {
	opts, warnings := Normalize(opts)
	res := model.ConversionResult{
		Duration: tl.Duration,
		Warnings: warnings,
	}

	agg, err := chord.Aggregate(tl, opts.StartTime, opts.Voices)
	res.Warnings = append(res.Warnings, agg.Warnings...)
	res.TransposedNotes = agg.Transposed
	res.SkippedNotes = agg.Skipped
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	streams, stopMs := stream.Build(agg.Chords, constants.GetMaxElements(), opts.Compress)
	res.StopTime = float64(stopMs) / 1000

	delays, sizes, pitches := streams.Delays, streams.Sizes, streams.Pitches
	packedWidth := 0
	if opts.Compress {
		packed, err := pack.Pack(streams)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			return res
		}
		delays, sizes, pitches = packed.Delays, packed.Sizes, packed.Pitches
		packedWidth = constants.PackedDigits
	}

	res.Rules = rules.Emit(opts.Voices, packedWidth, delays, sizes, pitches)
	return res
}

// ConvertFile reads a MIDI file from disk and converts it.
func ConvertFile(path string, opts Options) (model.ConversionResult, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.ConversionResult{}, err
	}
	return Convert(midi.BuildTimeline(parsed), opts), nil
}
