package quantize

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

// pixelImage builds an image from a row-major grid of colours.
func pixelImage(w, h int, at func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, at(x, y))
		}
	}
	return img
}

var (
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	clear = color.NRGBA{0, 0, 0, 0}
)

func TestQuantize_MaxColorsTooSmall(t *testing.T) {
	img := pixelImage(2, 2, func(x, y int) color.NRGBA { return red })
	for _, k := range []int{-1, 0, 1} {
		if _, err := Quantize(img, k); err != ErrMaxColors {
			t.Errorf("Quantize(k=%d) error = %v; want ErrMaxColors", k, err)
		}
	}
}

func TestQuantize_ExactColorsSurvive(t *testing.T) {
	// Two exact colours and a generous budget: quantization must be
	// lossless and keep first-appearance palette order.
	img := pixelImage(4, 2, func(x, y int) color.NRGBA {
		if x < 2 {
			return red
		}
		return blue
	})

	q, err := Quantize(img, 4)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	if len(q.Palette) != 2 {
		t.Fatalf("palette size = %d; want 2", len(q.Palette))
	}
	if q.Palette[0] != red || q.Palette[1] != blue {
		t.Errorf("palette = %v; want [red blue]", q.Palette)
	}
	if q.LabelAt(0, 0) != 0 || q.LabelAt(3, 1) != 1 {
		t.Errorf("labels = %v; want red pixels 0, blue pixels 1", q.Labels)
	}
}

func TestQuantize_TransparentExcluded(t *testing.T) {
	img := pixelImage(3, 1, func(x, y int) color.NRGBA {
		if x == 1 {
			return clear
		}
		return red
	})

	q, err := Quantize(img, 4)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	if q.LabelAt(1, 0) != TransparentLabel {
		t.Errorf("transparent pixel label = %d; want TransparentLabel", q.LabelAt(1, 0))
	}
	if len(q.Palette) != 1 {
		t.Errorf("palette size = %d; want 1 (transparency is not a colour)", len(q.Palette))
	}
}

func TestQuantize_AllTransparent(t *testing.T) {
	img := pixelImage(2, 2, func(x, y int) color.NRGBA { return clear })

	q, err := Quantize(img, 4)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	if len(q.Palette) != 0 {
		t.Errorf("palette size = %d; want 0", len(q.Palette))
	}
	for i, l := range q.Labels {
		if l != TransparentLabel {
			t.Errorf("Labels[%d] = %d; want TransparentLabel", i, l)
		}
	}
}

func TestQuantize_ReducesPalette(t *testing.T) {
	// Four spread-out colours squeezed into two palette slots: each output
	// label must still map to a valid palette entry and similar colours
	// must share one.
	shades := []color.NRGBA{
		{250, 10, 10, 255},
		{245, 5, 5, 255},
		{10, 10, 250, 255},
		{5, 5, 245, 255},
	}
	img := pixelImage(4, 1, func(x, y int) color.NRGBA { return shades[x] })

	q, err := Quantize(img, 2)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	if len(q.Palette) != 2 {
		t.Fatalf("palette size = %d; want 2", len(q.Palette))
	}
	if q.LabelAt(0, 0) != q.LabelAt(1, 0) {
		t.Errorf("reddish pixels got labels %d and %d; want identical", q.LabelAt(0, 0), q.LabelAt(1, 0))
	}
	if q.LabelAt(2, 0) != q.LabelAt(3, 0) {
		t.Errorf("bluish pixels got labels %d and %d; want identical", q.LabelAt(2, 0), q.LabelAt(3, 0))
	}
	if q.LabelAt(0, 0) == q.LabelAt(2, 0) {
		t.Error("red and blue collapsed into one palette entry")
	}
}

func TestQuantize_Deterministic(t *testing.T) {
	img := pixelImage(8, 8, func(x, y int) color.NRGBA {
		return color.NRGBA{uint8(x * 31), uint8(y * 27), uint8((x + y) * 13), 255}
	})

	first, err := Quantize(img, 4)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Quantize(img, 4)
		if err != nil {
			t.Fatalf("Quantize failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}
