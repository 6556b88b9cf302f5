package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ironsheep/image-segment-mcp/internal/config"
	"github.com/ironsheep/image-segment-mcp/internal/imaging"
	"github.com/ironsheep/image-segment-mcp/internal/pipeline"
	"github.com/ironsheep/image-segment-mcp/internal/render"
	"github.com/ironsheep/image-segment-mcp/internal/segment"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config file")
	in := flag.String("in", "", "Input image (png, jpg, gif, bmp, tiff, webp, tga)")
	out := flag.String("out", "", "Output image (png, jpg, bmp, webp, tga)")
	k := flag.Float64("k", 0, "Granularity: larger values give larger segments")
	minSize := flag.Int("min-size", 0, "Merge segments smaller than this many pixels (0 = off)")
	seed := flag.Int64("seed", config.DefaultSeed, "Seed for segment colours")
	sigma := flag.Float64("sigma", 0, "Gaussian blur radius applied before segmenting (0 = off)")
	maxDim := flag.Int("max-dim", 0, "Downscale so neither side exceeds this (0 = off)")
	quality := flag.Int("quality", config.DefaultQuality, "JPEG output quality (1-100)")
	histogram := flag.String("histogram", "", "Write a segment size histogram to this PNG")
	printStats := flag.Bool("stats", false, "Print segment statistics as JSON to stdout")
	debug := flag.Bool("debug", false, "Enable debug logging")
	version := flag.Bool("version", false, "Print version information")
	flag.Parse()

	if *version {
		fmt.Printf("image-segment %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Only flags given explicitly override the config file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	flags := config.Flags{
		Input:     *in,
		Output:    *out,
		Histogram: *histogram,
		Debug:     *debug,
	}
	if set["k"] {
		flags.Granularity = k
	}
	if set["min-size"] {
		flags.MinSize = minSize
	}
	if set["seed"] {
		flags.Seed = seed
	}
	if set["sigma"] {
		flags.Sigma = sigma
	}
	if set["max-dim"] {
		flags.MaxDimension = maxDim
	}
	if set["quality"] {
		flags.Quality = quality
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	cfg.Resolve(flags)

	if len(cfg.Missing()) > 0 && isTerminal(os.Stdin) {
		if err := prompt(&cfg, os.Stdin, os.Stderr); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatalf("%v", err)
	}

	var logf segment.LogFunc
	if cfg.Debug() {
		logf = log.Printf
		logf("image-segment %s: %s -> %s (k=%g)", Version, cfg.Input, cfg.Output, *cfg.Granularity)
	}

	start := time.Now()
	res, err := pipeline.RunFile(imaging.NewImageCache(), cfg.Input, pipeline.ParamsFromConfig(cfg, logf))
	if err != nil {
		log.Fatalf("Segmentation failed: %v", err)
	}

	if err := imaging.Save(res.Image(), cfg.Output, cfg.Quality); err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.Histogram != "" {
		if err := render.SaveSizeHistogram(cfg.Histogram, res.Result.Segments, render.DefaultHistogramBins); err != nil {
			log.Fatalf("%v", err)
		}
	}

	log.Printf("%s: %d segments in %v, written to %s",
		cfg.Input, res.Stats.Segments, time.Since(start).Round(time.Millisecond), cfg.Output)

	if *printStats {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Stats); err != nil {
			log.Fatalf("Failed to encode stats: %v", err)
		}
	}
}

// isTerminal reports whether f is an interactive character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
