package constants

import (
	"os"
	"strconv"
)

// playable range of the in-game piano
const MinPitch = 24
const MaxPitch = 88

const Octave = 12

// GM channel 10 (zero-indexed 9) is drums
const PercussionChannel = 9

const MinVoices = 6
const MaxVoices = 11
const DefaultVoices = 6

// inter-chord delays are stored in 4 decimal digits
const MaxDelayMs = 9999

// fixed decimal widths used by the digit packer
const DelayDigits = 4
const SizeDigits = 1
const PitchDigits = 2

// 7 digits per packed element keeps every value well inside int32
const PackedDigits = 7

// the workshop refuses array literals beyond this many elements
const MaxArraySize = 999

const DefaultMaxElements = 9999

// GetMaxElements is the total element budget across all three arrays.
func GetMaxElements() int {
	if v := os.Getenv("OWMIDI_MAX_ELEMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxElements
}
