package convert

import (
	"fmt"

	"github.com/ManHinnn0509/owmidiconverter/constants"
)

type Options struct {
	StartTime float64
	Voices    int
	Compress  bool
}

func DefaultOptions() Options {
	return Options{
		StartTime: 0,
		Voices:    constants.DefaultVoices,
		Compress:  true,
	}
}

// Normalize validates each field on its own: an out-of-range field falls
// back to its default and is reported by name, the others are kept.
func Normalize(opts Options) (Options, []string) {
	var warnings []string
	defaults := DefaultOptions()

	if opts.StartTime < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"startTime %v is negative; using %v", opts.StartTime, defaults.StartTime))
		opts.StartTime = defaults.StartTime
	}
	if opts.Voices < constants.MinVoices || opts.Voices > constants.MaxVoices {
		warnings = append(warnings, fmt.Sprintf(
			"voices %v is outside [%v, %v]; using %v",
			opts.Voices, constants.MinVoices, constants.MaxVoices, defaults.Voices))
		opts.Voices = defaults.Voices
	}
	return opts, warnings
}
