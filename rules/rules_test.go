package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ManHinnn0509/owmidiconverter/constants"
	"github.com/stretchr/testify/assert"
)

func TestConfigRuleComesFirst(t *testing.T) {
	text := Emit(6, constants.PackedDigits, []int{0, 500}, []int{2, 1}, []int{36, 40, 43})
	lines := strings.Split(text, "\n")

	assert := assert.New(t)
	assert.Equal(
		`rule("owmidi config"){event{Ongoing-Global;}actions{Set Global Variable(botCount, 6);Set Global Variable(maxArraySize, 999);Set Global Variable(packedWidth, 7);}}`,
		lines[0])
	assert.Len(lines, 4)
}

func TestArrayRulesAssignLiteralsInFixedOrder(t *testing.T) {
	text := Emit(6, 0, []int{0, 500}, []int{2, 1}, []int{36, 40, 43})
	lines := strings.Split(text, "\n")

	assert := assert.New(t)
	assert.Equal(
		`rule("delays 0"){event{Ongoing-Global;}actions{Set Global Variable At Index(delays, 0, Array(0, 500));}}`,
		lines[1])
	assert.Equal(
		`rule("sizes 0"){event{Ongoing-Global;}actions{Set Global Variable At Index(sizes, 0, Array(2, 1));}}`,
		lines[2])
	assert.Equal(
		`rule("pitches 0"){event{Ongoing-Global;}actions{Set Global Variable At Index(pitches, 0, Array(36, 40, 43));}}`,
		lines[3])
}

func TestRawEmissionReportsZeroPackedWidth(t *testing.T) {
	text := Emit(11, 0, []int{0}, []int{1}, []int{5})
	assert.Contains(t, text, "Set Global Variable(packedWidth, 0);")
	assert.Contains(t, text, "Set Global Variable(botCount, 11);")
}

func TestLongArraysSplitAcrossIndexedDeclarations(t *testing.T) {
	delays := make([]int, constants.MaxArraySize*2+1)
	for i := range delays {
		delays[i] = i % 10
	}
	text := Emit(6, constants.PackedDigits, delays, []int{1}, []int{5})

	assert := assert.New(t)
	assert.Equal(3, strings.Count(text, "Set Global Variable At Index(delays,"))
	assert.Contains(text, `rule("delays 0")`)
	assert.Contains(text, `rule("delays 1")`)
	assert.Contains(text, `rule("delays 2")`)

	// the last declaration holds the single leftover element
	lines := strings.Split(text, "\n")
	last := fmt.Sprintf(
		`rule("delays 2"){event{Ongoing-Global;}actions{Set Global Variable At Index(delays, 2, Array(%d));}}`,
		delays[len(delays)-1])
	assert.Equal(last, lines[3])
}

func TestIndexNumberingRestartsPerArray(t *testing.T) {
	big := make([]int, constants.MaxArraySize+1)
	text := Emit(6, constants.PackedDigits, big, big, []int{5})

	assert := assert.New(t)
	assert.Contains(text, `rule("delays 1")`)
	assert.Contains(text, `rule("sizes 0")`)
	assert.Contains(text, `rule("sizes 1")`)
	assert.Contains(text, `rule("pitches 0")`)
	assert.NotContains(text, `rule("pitches 1")`)
}
