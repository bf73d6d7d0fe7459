package pack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ManHinnn0509/owmidiconverter/constants"
	"github.com/ManHinnn0509/owmidiconverter/model"
)

// Pack re-encodes every stream as concatenated fixed-width decimal digits
// re-sliced into 7-digit integers. A value that overflows its field width
// is an error rather than silently corrupted output: the in-game decoder
// slices by fixed widths and would desynchronize.
func Pack(s model.EncodedStreams) (model.PackedStreams, error) {
	var p model.PackedStreams
	var err error

	if p.Delays, err = packStream("delays", s.Delays, constants.DelayDigits); err != nil {
		return model.PackedStreams{}, err
	}
	if p.Sizes, err = packStream("sizes", s.Sizes, constants.SizeDigits); err != nil {
		return model.PackedStreams{}, err
	}
	if p.Pitches, err = packStream("pitches", s.Pitches, constants.PitchDigits); err != nil {
		return model.PackedStreams{}, err
	}
	return p, nil
}

func packStream(name string, values []int, width int) ([]int, error) {
	limit := 1
	for i := 0; i < width; i++ {
		limit *= 10
	}

	var digits strings.Builder
	for _, v := range values {
		if v < 0 || v >= limit {
			return nil, fmt.Errorf("value %v in the %v stream does not fit %v digits", v, name, width)
		}
		fmt.Fprintf(&digits, "%0*d", width, v)
	}
	return reslice(digits.String()), nil
}

// reslice cuts the digit string into consecutive 7-digit chunks; the last
// chunk may be shorter.
func reslice(digits string) []int {
	var res []int
	for start := 0; start < len(digits); start += constants.PackedDigits {
		end := start + constants.PackedDigits
		if end > len(digits) {
			end = len(digits)
		}
		n, _ := strconv.Atoi(digits[start:end])
		res = append(res, n)
	}
	return res
}

// unpack inverts packStream given the original element count. The emitted
// rules never need it; it pins down that packing loses nothing.
func unpack(packed []int, width int, count int) []int {
	total := count * width

	var digits strings.Builder
	for i, v := range packed {
		chunk := constants.PackedDigits
		if rem := total - i*constants.PackedDigits; rem < chunk {
			chunk = rem
		}
		fmt.Fprintf(&digits, "%0*d", chunk, v)
	}

	s := digits.String()
	res := make([]int, 0, count)
	for i := 0; i < count; i++ {
		n, _ := strconv.Atoi(s[i*width : (i+1)*width])
		res = append(res, n)
	}
	return res
}
