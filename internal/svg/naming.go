package svg

import (
	"fmt"
	"image/color"
)

// colorTolerance is the per-channel distance within which a colour still
// counts as white or black for naming purposes.
const colorTolerance = 10

// ColorLabel returns a predictable label for a layer colour, used in output
// file names: "white" and "black" for near-white and near-black colours,
// otherwise "colorN" with a sequential N.
//
// The counter for "other" colours is threaded explicitly: pass the current
// value and keep the returned one for the next call, so naming stays
// deterministic across a conversion without any ambient state.
func ColorLabel(c color.NRGBA, otherIndex int) (string, int) {
	if nearValue(c, 255) {
		return "white", otherIndex
	}
	if nearValue(c, 0) {
		return "black", otherIndex
	}
	return fmt.Sprintf("color%d", otherIndex), otherIndex + 1
}

// nearValue reports whether all RGB channels are within colorTolerance of v.
func nearValue(c color.NRGBA, v int) bool {
	for _, ch := range [3]uint8{c.R, c.G, c.B} {
		d := int(ch) - v
		if d < -colorTolerance || d > colorTolerance {
			return false
		}
	}
	return true
}

// LayerFileName builds the output name for one layer: {base}_{label}.svg.
func LayerFileName(base, label string) string {
	return fmt.Sprintf("%s_%s.svg", base, label)
}
