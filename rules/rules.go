package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ManHinnn0509/owmidiconverter/constants"
	"github.com/ManHinnn0509/owmidiconverter/util"
)

// The names the in-game player reads its arrays from, in emission order.
var arrayNames = [3]string{"delays", "sizes", "pitches"}

// Emit renders the final rule listing: one config rule asserting the
// global constants, then each stream split into indexed array
// declarations. packedWidth is 7 for digit-packed streams and 0 for raw
// ones so the player knows whether to unpack.
func Emit(voices int, packedWidth int, delays []int, sizes []int, pitches []int) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		`rule("owmidi config"){event{Ongoing-Global;}actions{Set Global Variable(botCount, %d);Set Global Variable(maxArraySize, %d);Set Global Variable(packedWidth, %d);}}`,
		voices, constants.MaxArraySize, packedWidth)

	streams := [3][]int{delays, sizes, pitches}
	for i, name := range arrayNames {
		emitArray(&b, name, streams[i])
	}
	return b.String()
}

// emitArray writes one declaration per group of at most MaxArraySize
// elements; the index restarts at 0 for every array name.
func emitArray(b *strings.Builder, name string, values []int) {
	for index := 0; len(values) > 0; index++ {
		n := util.Min(len(values), constants.MaxArraySize)
		group := values[:n]
		values = values[n:]

		b.WriteString("\n")
		fmt.Fprintf(b,
			`rule("%s %d"){event{Ongoing-Global;}actions{Set Global Variable At Index(%s, %d, Array(%s));}}`,
			name, index, name, index, joinInts(group))
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
