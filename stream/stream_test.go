package stream

import (
	"testing"

	"github.com/ManHinnn0509/owmidiconverter/model"
	"github.com/ManHinnn0509/owmidiconverter/pack"
	"github.com/stretchr/testify/assert"
)

func chordAt(ms int64, pitches ...int) model.TimedChord {
	return model.TimedChord{TimeMs: ms, Pitches: pitches}
}

func TestBuildsParallelStreams(t *testing.T) {
	chords := []model.TimedChord{
		chordAt(0, 36, 40),
		chordAt(500, 43),
	}
	streams, stop := Build(chords, 9999, true)

	assert := assert.New(t)
	assert.Equal([]int{0, 500}, streams.Delays)
	assert.Equal([]int{2, 1}, streams.Sizes)
	assert.Equal([]int{36, 40, 43}, streams.Pitches)
	assert.Equal(int64(500), stop)
}

func TestStreamLengthInvariantsHold(t *testing.T) {
	chords := []model.TimedChord{
		chordAt(0, 1, 2, 3),
		chordAt(100, 4),
		chordAt(350, 5, 6),
	}
	streams, _ := Build(chords, 9999, true)

	assert := assert.New(t)
	assert.Equal(len(streams.Delays), len(streams.Sizes))
	total := 0
	for _, s := range streams.Sizes {
		total += s
	}
	assert.Equal(total, len(streams.Pitches))
}

func TestFirstDelayIsZeroEvenWithLateStart(t *testing.T) {
	chords := []model.TimedChord{
		chordAt(30000, 10),
		chordAt(30250, 11),
	}
	streams, _ := Build(chords, 9999, true)
	assert.Equal(t, []int{0, 250}, streams.Delays)
}

func TestDelaysClampAt9999(t *testing.T) {
	chords := []model.TimedChord{
		chordAt(0, 10),
		chordAt(25000, 11),
	}
	streams, _ := Build(chords, 9999, true)
	assert.Equal(t, []int{0, 9999}, streams.Delays)
}

func TestRawBudgetStopsBeforeOvercommitting(t *testing.T) {
	// each single-pitch chord costs 3 raw elements
	chords := []model.TimedChord{
		chordAt(0, 10),
		chordAt(500, 11),
		chordAt(1000, 12),
	}
	streams, stop := Build(chords, 7, false)

	assert := assert.New(t)
	assert.Len(streams.Delays, 2)
	assert.Len(streams.Pitches, 2)
	assert.Equal(int64(1000), stop)
}

func TestPackedBudgetUsesPerStreamDigitEstimate(t *testing.T) {
	// one chord packs to 1+1+1 elements; two chords need 2+1+1 because
	// the 8 delay digits alone span two packed elements
	chords := []model.TimedChord{
		chordAt(0, 10),
		chordAt(500, 11),
		chordAt(1000, 12),
	}
	streams, stop := Build(chords, 3, true)

	assert := assert.New(t)
	assert.Len(streams.Delays, 1)
	assert.Equal(int64(500), stop)

	// three chords total 2+1+1 packed elements
	streams, stop = Build(chords, 4, true)
	assert.Len(streams.Delays, 3)
	assert.Equal(int64(1000), stop)

	// the same chords fit a raw budget of 9
	streams, stop = Build(chords, 9, false)
	assert.Len(streams.Delays, 3)
	assert.Equal(int64(1000), stop)
}

func TestPackedElementTotalNeverExceedsBudget(t *testing.T) {
	chords := []model.TimedChord{
		chordAt(0, 10, 20),
		chordAt(500, 11),
		chordAt(1000, 12, 22, 32),
		chordAt(1750, 13),
		chordAt(2600, 14, 24),
	}

	assert := assert.New(t)
	for budget := 2; budget <= 12; budget++ {
		streams, _ := Build(chords, budget, true)
		packed, err := pack.Pack(streams)
		assert.Nil(err)

		total := len(packed.Delays) + len(packed.Sizes) + len(packed.Pitches)
		assert.LessOrEqual(total, budget, "budget %v", budget)
	}
}

func TestStopTimeIsLastChordWhenEverythingFits(t *testing.T) {
	chords := []model.TimedChord{
		chordAt(0, 10),
		chordAt(2000, 11, 12),
	}
	_, stop := Build(chords, 9999, true)
	assert.Equal(t, int64(2000), stop)
}

func TestEmptyInputYieldsEmptyStreams(t *testing.T) {
	streams, stop := Build(nil, 9999, true)

	assert := assert.New(t)
	assert.Empty(streams.Delays)
	assert.Empty(streams.Sizes)
	assert.Empty(streams.Pitches)
	assert.Equal(int64(0), stop)
}
