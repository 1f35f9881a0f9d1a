// Package quantize reduces an image to a small palette of representative
// colours, producing a label map that downstream mask construction consumes.
//
// The reduction is a median-cut over the RGB values of the opaque pixels
// (no dithering), followed by a nearest-palette assignment in CIE-Lab
// space. Fully transparent pixels never join the palette: they are labelled
// TransparentLabel so that invisible areas cannot end up in any stencil
// layer.
//
// Output is deterministic for a given input: palette entries are ordered by
// the first pixel they label in scan order, and all internal tie-breaks are
// index-based rather than map-iteration-based.
package quantize

import (
	"errors"
	"image"
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// TransparentLabel marks pixels with zero alpha in Image.Labels.
// Such pixels belong to no palette entry and no mask.
const TransparentLabel = -1

// ErrMaxColors indicates a palette size below the supported minimum.
var ErrMaxColors = errors.New("quantize: maxColors must be at least 2")

// Image is a quantized view of a source image: a row-major label map plus
// the palette the labels index into. Alpha is always 255 in the palette;
// transparency survives only as TransparentLabel entries.
type Image struct {
	Width  int
	Height int
	// Labels holds one palette index per pixel in row-major order, or
	// TransparentLabel for fully transparent source pixels.
	Labels []int
	// Palette lists the colours actually used, ordered by the first pixel
	// each labels in scan order.
	Palette []color.NRGBA
}

// LabelAt returns the label of pixel (x, y).
func (q *Image) LabelAt(x, y int) int {
	return q.Labels[y*q.Width+x]
}

// rgb is a packed opaque colour key.
type rgb [3]uint8

// Quantize reduces img to at most maxColors opaque colours.
//
// Parameters:
//   - img: source image; any colour model is accepted and converted to
//     unpremultiplied 8-bit RGBA before processing.
//   - maxColors: palette size cap; must be at least 2.
//
// Returns:
//   - *Image: label map and palette; ErrMaxColors when maxColors < 2.
//
// Pixels with zero alpha are excluded from the palette computation and
// labelled TransparentLabel. Partially transparent pixels participate with
// their unpremultiplied RGB values. An image with no opaque pixels yields
// an empty palette and an all-transparent label map, not an error.
func Quantize(img image.Image, maxColors int) (*Image, error) {
	if maxColors < 2 {
		return nil, ErrMaxColors
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// First pass: distinct colours in first-appearance order, with counts.
	var distinct []rgb
	var counts []int
	colorIdx := make(map[rgb]int)
	pixColor := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if c.A == 0 {
				pixColor[i] = TransparentLabel
				continue
			}
			key := rgb{c.R, c.G, c.B}
			idx, ok := colorIdx[key]
			if !ok {
				idx = len(distinct)
				colorIdx[key] = idx
				distinct = append(distinct, key)
				counts = append(counts, 0)
			}
			counts[idx]++
			pixColor[i] = idx
		}
	}

	q := &Image{Width: w, Height: h, Labels: make([]int, w*h)}
	if len(distinct) == 0 {
		for i := range q.Labels {
			q.Labels[i] = TransparentLabel
		}
		return q, nil
	}

	palette := medianCut(distinct, counts, maxColors)

	// Assign every distinct colour to its nearest palette entry in Lab
	// space; ties go to the lower palette index.
	assign := make([]int, len(distinct))
	for i, c := range distinct {
		cc := labColor(c)
		best, bestDist := 0, cc.DistanceLab(labColor(palette[0]))
		for p := 1; p < len(palette); p++ {
			if d := cc.DistanceLab(labColor(palette[p])); d < bestDist {
				best, bestDist = p, d
			}
		}
		assign[i] = best
	}

	// Relabel palette entries by first appearance in scan order and drop
	// entries no pixel ended up using.
	remap := make([]int, len(palette))
	for i := range remap {
		remap[i] = -1
	}
	for _, ci := range pixColor {
		if ci == TransparentLabel {
			continue
		}
		p := assign[ci]
		if remap[p] == -1 {
			remap[p] = len(q.Palette)
			q.Palette = append(q.Palette, color.NRGBA{
				R: palette[p][0], G: palette[p][1], B: palette[p][2], A: 255,
			})
		}
	}
	for i, ci := range pixColor {
		if ci == TransparentLabel {
			q.Labels[i] = TransparentLabel
		} else {
			q.Labels[i] = remap[assign[ci]]
		}
	}
	return q, nil
}

// box is a set of distinct-colour indices being carved up by median cut.
type box struct {
	colors []int
}

// medianCut splits the distinct colours into at most maxColors boxes and
// returns each box's count-weighted mean colour.
func medianCut(distinct []rgb, counts []int, maxColors int) []rgb {
	boxes := []box{{colors: seq(len(distinct))}}

	for len(boxes) < maxColors {
		// Split the box with the widest channel range; ties keep the
		// earliest box so the outcome never depends on ordering accidents.
		bestBox, bestChan, bestRange := -1, 0, 0
		for i, bx := range boxes {
			ch, rng := widestChannel(distinct, bx.colors)
			if rng > bestRange {
				bestBox, bestChan, bestRange = i, ch, rng
			}
		}
		if bestBox == -1 {
			break // every box is a single colour
		}

		bx := boxes[bestBox]
		sort.SliceStable(bx.colors, func(a, b int) bool {
			ca, cb := distinct[bx.colors[a]], distinct[bx.colors[b]]
			if ca[bestChan] != cb[bestChan] {
				return ca[bestChan] < cb[bestChan]
			}
			// Full-colour tie-break keeps the sort total and stable.
			for ch := 0; ch < 3; ch++ {
				if ca[ch] != cb[ch] {
					return ca[ch] < cb[ch]
				}
			}
			return false
		})

		mid := medianIndex(bx.colors, counts)
		boxes[bestBox] = box{colors: bx.colors[:mid]}
		boxes = append(boxes, box{colors: bx.colors[mid:]})
	}

	palette := make([]rgb, len(boxes))
	for i, bx := range boxes {
		palette[i] = meanColor(distinct, counts, bx.colors)
	}
	return palette
}

// widestChannel returns the channel with the largest value range across the
// box and that range.
func widestChannel(distinct []rgb, colors []int) (int, int) {
	var lo, hi [3]int
	for ch := 0; ch < 3; ch++ {
		lo[ch], hi[ch] = 255, 0
	}
	for _, ci := range colors {
		for ch := 0; ch < 3; ch++ {
			v := int(distinct[ci][ch])
			if v < lo[ch] {
				lo[ch] = v
			}
			if v > hi[ch] {
				hi[ch] = v
			}
		}
	}
	bestCh, bestRange := 0, 0
	for ch := 0; ch < 3; ch++ {
		if r := hi[ch] - lo[ch]; r > bestRange {
			bestCh, bestRange = ch, r
		}
	}
	return bestCh, bestRange
}

// medianIndex finds the split point that divides the box's pixel population
// roughly in half, keeping at least one colour on each side.
func medianIndex(colors []int, counts []int) int {
	total := 0
	for _, ci := range colors {
		total += counts[ci]
	}
	acc := 0
	for i, ci := range colors {
		acc += counts[ci]
		if acc*2 >= total {
			if i+1 < len(colors) {
				return i + 1
			}
			return i
		}
	}
	return len(colors) - 1
}

// meanColor returns the count-weighted mean of the box's colours.
func meanColor(distinct []rgb, counts []int, colors []int) rgb {
	var sum [3]uint64
	var total uint64
	for _, ci := range colors {
		n := uint64(counts[ci])
		for ch := 0; ch < 3; ch++ {
			sum[ch] += uint64(distinct[ci][ch]) * n
		}
		total += n
	}
	var out rgb
	for ch := 0; ch < 3; ch++ {
		out[ch] = uint8((sum[ch] + total/2) / total)
	}
	return out
}

func labColor(c rgb) colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
