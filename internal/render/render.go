// Package render runs a packing headlessly for a fixed number of generations
// and writes the result to an image file.
package render

import (
	"fmt"
	"log/slog"

	"github.com/iburimskiy/apollonian-packing/internal/config"
	"github.com/iburimskiy/apollonian-packing/internal/export"
	"github.com/iburimskiy/apollonian-packing/internal/packing"
	"github.com/iburimskiy/apollonian-packing/internal/palette"
)

// Options for a headless render. Zero values fall back to the configuration.
type Options struct {
	Generations int
	Out         string

	// Radius of the bounding circle. Zero derives it from the window size.
	Radius float64

	// Width and Height of raster output.
	Width, Height int

	Seed   uint64
	Logger *slog.Logger
}

// Result summarises a render.
type Result struct {
	Generation int
	Circles    int
	Accepted   int
}

// Run builds a packing, advances it opts.Generations times and exports it to
// opts.Out.
func Run(cfg config.Config, opts Options) (Result, error) {
	if opts.Generations < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidGenerations, opts.Generations)
	}
	if opts.Out == "" {
		return Result{}, ErrNoOutput
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pal, err := palette.ByName(cfg.Render.Palette)
	if err != nil {
		return Result{}, err
	}

	radius := opts.Radius
	if radius <= 0 {
		radius = cfg.Packing.BoundingRadius(cfg.Window.Width, cfg.Window.Height)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Packing.Seed
	}

	genOpts := []packing.Option{packing.WithLogger(logger)}
	if seed != 0 {
		genOpts = append(genOpts, packing.WithSeed(seed))
	}
	gen := packing.NewGenerator(cfg.Packing.ToPackingConfig(), genOpts...)
	gen.Initialize(radius, packing.Point{})

	var res Result
	for i := 0; i < opts.Generations; i++ {
		stats := gen.AdvanceGeneration()
		res.Accepted += stats.Accepted
	}
	res.Generation = gen.Generation()
	res.Circles = gen.Len()

	err = export.ToFile(opts.Out, gen.Circles(), export.Options{
		Palette: pal,
		Padding: cfg.Render.Padding,
		Width:   opts.Width,
		Height:  opts.Height,
	})
	if err != nil {
		return res, fmt.Errorf("render %s: %w", opts.Out, err)
	}

	logger.Info("render complete",
		"out", opts.Out,
		"generation", res.Generation,
		"circles", res.Circles,
	)
	return res, nil
}
