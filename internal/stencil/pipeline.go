// Package stencil orchestrates the full conversion of one source image into
// per-colour SVG stencil layers: decode, quantize, build masks, trace each
// mask into a compound path, and serialize one document per layer.
//
// Layers are independent once the masks exist, so tracing and serialization
// run concurrently, one goroutine per layer; each goroutine owns its layer's
// data exclusively and no locking is needed.
package stencil

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/plan-systems/klog"

	"github.com/ironsheep/stencil-gen/internal/mask"
	"github.com/ironsheep/stencil-gen/internal/quantize"
	"github.com/ironsheep/stencil-gen/internal/svg"
	"github.com/ironsheep/stencil-gen/internal/trace"
)

// Options configures one conversion.
type Options struct {
	// OutputDir receives the layer documents; created if missing.
	OutputDir string
	// MaxColors caps the palette size (2..12 is the useful range).
	MaxColors int
	// Scale multiplies the rendered pixel size of the output documents.
	Scale int
	// Bridges enables island connector synthesis.
	Bridges bool
	// Bridge tunes connector geometry.
	Bridge trace.BridgeOptions
	// DebugMasks additionally writes each layer's mask as a PNG, which
	// helps when tuning MaxColors against a noisy source.
	DebugMasks bool
}

// DefaultOptions mirrors the CLI defaults.
func DefaultOptions() Options {
	return Options{
		OutputDir: "stencils",
		MaxColors: 4,
		Scale:     10,
		Bridges:   true,
		Bridge:    trace.DefaultBridgeOptions(),
	}
}

// Result summarizes one conversion.
type Result struct {
	// LayerFiles lists the written SVG paths in palette order.
	LayerFiles []string
	// Skipped counts layers that produced no geometry and thus no file.
	Skipped int
	// Width and Height are the source dimensions in pixels.
	Width  int
	Height int
}

// Convert turns the image at inputPath into one SVG stencil per colour
// layer under opts.OutputDir.
//
// Parameters:
//   - inputPath: source image in any registered format (PNG, JPEG, GIF, …).
//   - opts: conversion options; see DefaultOptions for the CLI defaults.
//
// Returns:
//   - *Result: written layer files and conversion metadata.
//   - error: non-nil if the input cannot be decoded, the output directory
//     cannot be created, or any layer fails to trace or serialize.
//
// Layer files are named {base}_{label}.svg where base is the input file
// name without extension and label comes from svg.ColorLabel. A layer whose
// mask is empty or whose traced path contains no geometry is skipped rather
// than written as a blank document. Any layer error aborts the conversion
// after all layer goroutines have drained.
func Convert(inputPath string, opts Options) (*Result, error) {
	img, err := imaging.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	q, err := quantize.Quantize(img, opts.MaxColors)
	if err != nil {
		return nil, err
	}
	klog.Infof("quantized %s to %d colour(s)", filepath.Base(inputPath), len(q.Palette))

	layers := mask.FromQuantized(q)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	names := layerFileNames(layers, opts.OutputDir, base)
	doc := svg.Document{Scale: opts.Scale, Width: q.Width, Height: q.Height}
	traceOpts := trace.Options{Bridges: opts.Bridges, Bridge: opts.Bridge}

	written := make([]string, len(layers))
	errs := make([]error, len(layers))
	var wg sync.WaitGroup
	for i := range layers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			written[i], errs[i] = convertLayer(layers[i], names[i], doc, traceOpts, opts.DebugMasks)
		}(i)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	res := &Result{Width: q.Width, Height: q.Height}
	for _, f := range written {
		if f == "" {
			res.Skipped++
			continue
		}
		res.LayerFiles = append(res.LayerFiles, f)
	}
	klog.Infof("wrote %d SVG layer(s) to %s (%d skipped)", len(res.LayerFiles), opts.OutputDir, res.Skipped)
	return res, nil
}

// convertLayer traces and serializes one layer. It returns the written file
// path, or "" when the layer produced no geometry.
func convertLayer(l mask.Layer, outPath string, doc svg.Document, traceOpts trace.Options, debugMask bool) (string, error) {
	if debugMask {
		if err := writeDebugMask(l.Mask, debugMaskPath(outPath)); err != nil {
			return "", err
		}
	}
	if l.Mask.Empty() {
		return "", nil
	}

	path, err := trace.Trace(l.Mask, traceOpts)
	if err != nil {
		return "", fmt.Errorf("tracing layer %s: %w", filepath.Base(outPath), err)
	}
	data := svg.PathData(path)
	if data == "" {
		return "", nil
	}
	if err := svg.WriteLayerFile(outPath, doc, data, l.Color); err != nil {
		return "", err
	}
	return outPath, nil
}

// layerFileNames precomputes every layer's output path. Naming must be
// sequential ("color1", "color2", …) in palette order, so the counter is
// threaded here before the per-layer goroutines fan out.
func layerFileNames(layers []mask.Layer, dir, base string) []string {
	names := make([]string, len(layers))
	counter := 1
	for i, l := range layers {
		var label string
		label, counter = svg.ColorLabel(l.Color, counter)
		names[i] = filepath.Join(dir, svg.LayerFileName(base, label))
	}
	return names
}

// writeDebugMask saves the mask as a black-on-white PNG next to the layer.
func writeDebugMask(m *mask.Mask, path string) error {
	w, h := m.Size()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.At(x, y) {
				img.Pix[y*img.Stride+x] = 0xff
			}
		}
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("writing debug mask %s: %w", path, err)
	}
	return nil
}

func debugMaskPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, ".svg") + "_mask.png"
}
