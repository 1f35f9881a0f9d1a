// Package mask derives one boolean pixel mask per palette entry of a
// quantized image. Masks partition the opaque pixels: every pixel carrying
// a colour appears in exactly one layer, and fully transparent pixels
// appear in none.
package mask

import (
	"image/color"

	"github.com/ironsheep/stencil-gen/internal/quantize"
)

// Mask is an immutable rectangular grid of booleans marking which pixels
// carry one colour layer. It satisfies the Grid interface expected by the
// tracing core.
type Mask struct {
	w, h int
	bits []bool
}

// New returns an all-false mask of the given dimensions.
func New(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// Size returns the mask dimensions as (width, height).
func (m *Mask) Size() (int, int) { return m.w, m.h }

// At reports whether pixel (x, y) belongs to the mask. Coordinates outside
// the grid report false, matching the "false or absent" neighbour rule of
// the boundary builder.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Empty reports whether no pixel is set.
func (m *Mask) Empty() bool { return m.Count() == 0 }

// set is only for use during construction; masks are immutable afterwards.
func (m *Mask) set(x, y int) { m.bits[y*m.w+x] = true }

// Layer pairs one colour's mask with the colour itself. The colour is an
// opaque identifier as far as tracing is concerned; only serialization
// uses it, for fill and file naming.
type Layer struct {
	Mask  *Mask
	Color color.NRGBA
}

// FromQuantized builds one layer per palette entry of q, in palette order.
// All layers share q's dimensions. Transparent pixels are in no layer.
func FromQuantized(q *quantize.Image) []Layer {
	layers := make([]Layer, len(q.Palette))
	for i, c := range q.Palette {
		layers[i] = Layer{Mask: New(q.Width, q.Height), Color: c}
	}
	for y := 0; y < q.Height; y++ {
		for x := 0; x < q.Width; x++ {
			if label := q.LabelAt(x, y); label != quantize.TransparentLabel {
				layers[label].Mask.set(x, y)
			}
		}
	}
	return layers
}
