// Package svg serializes traced compound paths into standalone SVG stencil
// documents, one per colour layer.
//
// Path geometry stays in mask units; document sizing happens purely through
// the width/height attributes and the viewBox, so a cutter or browser scales
// the same coordinates without any transform baked into the path data.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ironsheep/stencil-gen/internal/trace"
)

// PathData renders a compound path as one SVG path-data string: each
// sub-path becomes a move, a run of line commands, and a close. Output is
// byte-identical for identical input; integer coordinates print without a
// decimal point and fractional bridge coordinates in shortest exact form.
//
// An empty compound path yields the empty string; callers must then omit
// the path element entirely.
func PathData(p trace.CompoundPath) string {
	var b strings.Builder
	for i, sp := range p.SubPaths {
		if i > 0 {
			b.WriteByte(' ')
		}
		for j, pt := range sp.Points {
			cmd := "L"
			if j == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&b, "%s %s %s ", cmd, coord(pt.X), coord(pt.Y))
		}
		b.WriteString("Z")
	}
	return b.String()
}

// coord formats a coordinate in its shortest exact decimal form.
func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FillHex formats a colour as a lowercase "#rrggbb" fill attribute value.
// Alpha is ignored; layer transparency never reaches serialization.
func FillHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Document carries the sizing parameters shared by every layer of one
// conversion: mask dimensions in mask units and the integer pixel scale
// applied via the document's width/height attributes.
type Document struct {
	// Scale multiplies the rendered pixel size; path geometry is unaffected.
	Scale int
	// Width and Height are the mask dimensions in mask units.
	Width  int
	Height int
}

// WriteLayer emits one complete SVG document for a layer. pathData comes
// from PathData; when it is empty the document contains no path element,
// which renders as a fully blank layer.
func (d Document) WriteLayer(w io.Writer, pathData string, fill color.NRGBA) error {
	_, err := fmt.Fprintf(w,
		"<?xml version=\"1.0\" encoding=\"utf-8\" ?>\n"+
			"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		d.Width*d.Scale, d.Height*d.Scale, d.Width, d.Height)
	if err != nil {
		return err
	}
	if pathData != "" {
		_, err = fmt.Fprintf(w, "  <path d=\"%s\" fill=\"%s\" fill-rule=\"evenodd\" />\n", pathData, FillHex(fill))
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "</svg>\n")
	return err
}

// WriteLayerFile writes one layer document to path, creating or truncating
// the file.
func WriteLayerFile(path string, d Document, pathData string, fill color.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating layer file %s", path)
	}
	if err := d.WriteLayer(f, pathData, fill); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing layer file %s", path)
	}
	return errors.Wrapf(f.Close(), "closing layer file %s", path)
}
