package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/ironsheep/stencil-gen/internal/stencil"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	opts := stencil.DefaultOptions()
	var (
		noBridges   bool
		showVersion bool
	)

	flag.StringVar(&opts.OutputDir, "output-dir", opts.OutputDir, "directory where SVG layers are written")
	flag.StringVar(&opts.OutputDir, "o", opts.OutputDir, "shorthand for -output-dir")
	flag.IntVar(&opts.MaxColors, "max-colors", opts.MaxColors, "palette size cap (2-12)")
	flag.IntVar(&opts.MaxColors, "n", opts.MaxColors, "shorthand for -max-colors")
	flag.IntVar(&opts.Scale, "scale", opts.Scale, "multiply pixel size in the final SVG")
	flag.IntVar(&opts.Scale, "s", opts.Scale, "shorthand for -scale")
	flag.Float64Var(&opts.Bridge.Span, "bridge-span", opts.Bridge.Span, "horizontal bridge length in mask units")
	flag.Float64Var(&opts.Bridge.HalfThickness, "bridge-half", opts.Bridge.HalfThickness, "half bridge thickness in mask units")
	flag.BoolVar(&noBridges, "no-bridges", false, "disable island connector bridges")
	flag.BoolVar(&opts.DebugMasks, "debug-masks", false, "also write each colour mask as a PNG")
	flag.BoolVar(&showVersion, "version", false, "print version information")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 18,
		UseColor:          true,
	})

	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("stencil-gen %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		usage()
		os.Exit(2)
	}

	opts.Bridges = !noBridges
	opts.MaxColors = clamp(opts.MaxColors, 2, 12)

	exitCode := 0
	for _, input := range inputs {
		res, err := stencil.Convert(input, opts)
		if err != nil {
			klog.Errorf("converting %s: %v", input, err)
			exitCode = 1
			continue
		}
		klog.Infof("%s: %d layer(s), %dx%d px", input, len(res.LayerFiles), res.Width, res.Height)
	}

	klog.Flush()
	os.Exit(exitCode)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func usage() {
	fmt.Fprintln(os.Stderr, "stencil-gen - convert pixel art into per-colour SVG stencil layers")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: stencil-gen [options] input.png [more inputs...]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
}
