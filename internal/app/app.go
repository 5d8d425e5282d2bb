//go:build ebiten

package app

import (
	"fmt"
	"time"

	"voxdiff/internal/core"
	"voxdiff/internal/render"
	pkgcore "voxdiff/pkg/core"
	"voxdiff/pkg/diffusion"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a diffusion StepController to the ebiten.Game interface. A
// generation is started at the configured cadence and advanced with a small
// time budget every frame, so the viewport stays responsive regardless of
// field size.
type Game struct {
	ctrl    *diffusion.StepController
	painter *render.SlicePainter
	pacer   *core.Pacer
	budget  time.Duration

	slice    int16
	sliceBuf []uint32

	scale    int
	paused   bool
	stepOnce bool
	seed     int64

	mass    uint64
	stepErr error
}

// New constructs a Game for the provided controller.
func New(ctrl *diffusion.StepController, cfg *Config) *Game {
	f := ctrl.Field()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewSlicePainter(int(f.W), int(f.H)),
		pacer:    core.NewPacer(cfg.SPS),
		budget:   time.Duration(cfg.BudgetUS) * time.Microsecond,
		slice:    f.D / 2,
		sliceBuf: make([]uint32, int(f.W)*int(f.H)),
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reseeds the field with the noise state for the provided seed. It is
// a no-op while a generation is in progress.
func (g *Game) Reset(seed int64) {
	if g.ctrl.IsStepping() {
		return
	}
	g.seed = seed
	pkgcore.FillNoise(g.ctrl.Field().Cells, uint32(seed))
	g.mass = g.ctrl.Field().TotalMass()
	g.stepErr = nil
}

// Update handles per-frame logic and advances the in-progress generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.slice > 0 {
		g.slice--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.slice < g.ctrl.Field().D-1 {
		g.slice++
	}

	if g.stepErr != nil {
		return nil
	}

	if !g.ctrl.IsStepping() && ((!g.paused && g.pacer.ShouldStart()) || g.stepOnce) {
		if err := g.ctrl.BeginStep(); err != nil {
			g.stepErr = err
			return nil
		}
	}
	if g.ctrl.IsStepping() {
		done, err := g.ctrl.Tick(g.budget)
		if err != nil {
			g.stepErr = err
			return nil
		}
		if done {
			g.stepOnce = false
			g.mass = g.ctrl.Field().TotalMass()
		}
	}
	return nil
}

// Draw renders the current Z slice plus a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.ctrl.Field()
	if f.ExtractRegion(g.sliceBuf, 0, 0, g.slice, f.W, f.H, g.slice+1) > 0 {
		g.painter.Blit(screen, g.sliceBuf, g.scale)
	}

	status := fmt.Sprintf("gen %d  mass %d  slice z=%d", g.ctrl.Generation(), g.mass, g.slice)
	if g.ctrl.IsStepping() {
		status += "  stepping"
	}
	if g.paused {
		status += "  paused"
	}
	if g.stepErr != nil {
		status = fmt.Sprintf("%s\nhalted: %v", status, g.stepErr)
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
