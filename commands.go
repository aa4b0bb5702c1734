package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/apollonian-packing/internal/config"
	"github.com/iburimskiy/apollonian-packing/internal/game"
	"github.com/iburimskiy/apollonian-packing/internal/render"
	"github.com/iburimskiy/apollonian-packing/internal/telemetry"
)

var (
	cfg    config.Config
	logger *slog.Logger

	configPath string
	logLevel   string

	renderGenerations int
	renderOut         string
	renderRadius      float64
	renderWidth       int
	renderHeight      int
	renderSeed        uint64
	renderClassic     bool
	renderMetrics     bool

	rootCmd = &cobra.Command{
		Use:   "apollonian",
		Short: "Generate and explore Apollonian circle packings",
		Long: `apollonian grows an Apollonian gasket one generation at a time
inside a bounding circle, either in an interactive window or headlessly.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              runView,
	}

	viewCmd = &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer",
		RunE:  runView,
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Run a number of generations and write the packing to an SVG or PNG file",
		RunE:  runRender,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "apollonian.yaml", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	renderCmd.Flags().IntVarP(&renderGenerations, "generations", "n", 6, "number of generation passes")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "packing.svg", "output file (.svg or .png)")
	renderCmd.Flags().Float64Var(&renderRadius, "radius", 0, "bounding circle radius (default derived from the window size)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1024, "PNG width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 1024, "PNG height in pixels")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", 0, "seed for the inner seeder (0 uses the config or the clock)")
	renderCmd.Flags().BoolVar(&renderClassic, "classic", false, "start from two halves instead of the randomly seeded interior")
	renderCmd.Flags().BoolVar(&renderMetrics, "metrics", false, "print OpenTelemetry metrics to stderr")

	rootCmd.AddCommand(viewCmd, renderCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runView(cmd *cobra.Command, args []string) error {
	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "error", err)
		return err
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	if renderClassic {
		cfg.Packing.Bootstrap = false
	}

	if renderMetrics {
		shutdown, initErr := telemetry.InitStdout(os.Stderr)
		if initErr != nil {
			return initErr
		}
		defer func() {
			if serr := shutdown(context.Background()); serr != nil && err == nil {
				err = fmt.Errorf("flush metrics: %w", serr)
			}
		}()
	}

	_, err = render.Run(cfg, render.Options{
		Generations: renderGenerations,
		Out:         renderOut,
		Radius:      renderRadius,
		Width:       renderWidth,
		Height:      renderHeight,
		Seed:        renderSeed,
		Logger:      logger,
	})
	return err
}
