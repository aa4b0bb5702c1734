// Package game is the interactive ebiten viewer for a packing.
package game

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/apollonian-packing/internal/config"
	"github.com/iburimskiy/apollonian-packing/internal/packing"
	"github.com/iburimskiy/apollonian-packing/internal/palette"
	"github.com/iburimskiy/apollonian-packing/internal/view"
)

const (
	waveformSamples = 512
	waveformHeight  = 40
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	boundaryColor   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	waveformColor   = color.RGBA{R: 120, G: 200, B: 255, A: 200}
)

// Game implements ebiten.Game. The generator is only touched from Update and
// Draw, which ebiten calls on the same goroutine.
type Game struct {
	cfg     config.Config
	logger  *slog.Logger
	gen     *packing.Generator
	palette palette.Func
	camera  view.Camera
	sound   *sound

	width, height int
	resized       bool

	// circles accepted by the last pass, filled by the generator observer
	fresh []packing.Circle
	last  packing.PassStats

	panning    bool
	panX, panY int

	keys    *view.Edges[ebiten.Key]
	lastErr error
}

func New(cfg config.Config, logger *slog.Logger) (*Game, error) {
	pal, err := palette.ByName(cfg.Render.Palette)
	if err != nil {
		return nil, fmt.Errorf("viewer palette: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:     cfg,
		logger:  logger,
		palette: pal,
		camera:  view.NewCamera(config.ZoomIncrement, config.MinZoom),
		sound:   newSound(cfg.Sound, logger),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		keys:    view.NewEdges[ebiten.Key](),
	}

	opts := []packing.Option{
		packing.WithLogger(logger),
		packing.WithObserver(func(c packing.Circle, _ packing.Triple) {
			g.fresh = append(g.fresh, c)
		}),
	}
	if cfg.Packing.Seed != 0 {
		opts = append(opts, packing.WithSeed(cfg.Packing.Seed))
	}
	g.gen = packing.NewGenerator(cfg.Packing.ToPackingConfig(), opts...)
	g.restart()
	return g, nil
}

func (g *Game) Update() error {
	if g.resized {
		g.resized = false
		g.restart()
	}

	justPressed := func(k ebiten.Key) bool {
		return g.keys.JustPressed(k, ebiten.IsKeyPressed(k))
	}

	stepKeys := g.keys.Any(ebiten.IsKeyPressed, ebiten.KeySpace, ebiten.KeyN)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || stepKeys {
		g.step()
	}

	// Zoom at cursor
	mouseX, mouseY := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.camera.ZoomAt(packing.Point{X: float64(mouseX), Y: float64(mouseY)}, dy)
	}

	// Right drag pans
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.panning {
			g.camera.Pan(float64(mouseX-g.panX), float64(mouseY-g.panY))
		}
		g.panning = true
		g.panX, g.panY = mouseX, mouseY
	} else {
		g.panning = false
	}

	if justPressed(ebiten.KeyR) {
		g.camera.Reset()
		g.restart()
	}
	if justPressed(ebiten.KeyS) {
		if err := g.openSaveDialog(); err != nil {
			g.lastErr = err
			g.logger.Error("save packing", "error", err)
		}
	}
	if justPressed(ebiten.KeyM) {
		g.sound.toggleMute()
	}
	if g.keys.Any(ebiten.IsKeyPressed, ebiten.KeyEscape, ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, c := range g.gen.Circles() {
		p := g.camera.WorldToScreen(c.Center)
		r := float32(c.Radius() * g.camera.Zoom)
		if c.Encloses() {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), r, 1, boundaryColor, true)
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, g.palette(c.Generation), true)
	}

	g.drawWaveform(screen)

	status := view.Status(g.gen.Generation(), g.gen.Len(), g.gen.QueueLen(), g.last, g.sound.muted)
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "error: "+g.lastErr.Error(), 12, 28)
	}
}

// drawWaveform draws the playing chime as a strip along the bottom edge.
func (g *Game) drawWaveform(screen *ebiten.Image) {
	samples := g.sound.waveform(waveformSamples)
	if len(samples) < 2 {
		return
	}

	baseY := float64(g.height) - waveformHeight
	step := float64(g.width) / float64(len(samples)-1)
	for i := 1; i < len(samples); i++ {
		y0 := baseY - samples[i-1][0]*waveformHeight
		y1 := baseY - samples[i][0]*waveformHeight
		x0 := float64(i-1) * step
		x1 := float64(i) * step
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, waveformColor, false)
	}
}

// Layout tracks the window size; a change re-initialises the packing on the
// next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// restart seeds a new packing centred in the current window.
func (g *Game) restart() {
	g.fresh = g.fresh[:0]
	g.last = packing.PassStats{}
	g.lastErr = nil

	center := packing.Point{X: float64(g.width) / 2, Y: float64(g.height) / 2}
	g.gen.Initialize(g.cfg.Packing.BoundingRadius(g.width, g.height), center)
}

// step runs one generation pass and chimes the new circles.
func (g *Game) step() {
	g.fresh = g.fresh[:0]
	g.last = g.gen.AdvanceGeneration()

	if err := g.sound.play(g.fresh, g.cfg.Packing.SeedMinRadius); err != nil {
		g.logger.Error("chime", "error", err)
	}
}
