//go:build ebiten

package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/grid"
)

const headerHeight = 16

// Game adapts a Player to the ebiten.Game interface
type Game struct {
	player *Player
	canvas *ebiten.Image
	pixels []byte
	scale  int
	drawn  int
}

// New creates a game for cfg
func New(cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Game{
		player: NewPlayer(cfg.Frames),
		canvas: ebiten.NewImage(grid.Width, grid.Height),
		pixels: make([]byte, grid.Size*4),
		scale:  cfg.Scale,
		drawn:  -1,
	}, nil
}

// Run opens the window and blocks until it closes
func Run(cfg *Config) error {
	g, err := New(cfg)
	if err != nil {
		return err
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "viewer stopped")
	}
	return nil
}

// Update advances on Enter or Space and quits after the last frame
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if !g.player.Next() {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw paints the current frame below its label
func (g *Game) Draw(screen *ebiten.Image) {
	f, ok := g.player.Current()
	if !ok {
		return
	}
	if g.drawn != g.player.Index() {
		FillRGBA(g.pixels, f.Grid)
		g.canvas.WritePixels(g.pixels)
		g.drawn = g.player.Index()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.GeoM.Translate(0, headerHeight)
	screen.DrawImage(g.canvas, op)

	ebitenutil.DebugPrint(screen, f.Label)
}

// Layout returns the logical screen size
func (g *Game) Layout(_, _ int) (int, int) {
	return grid.Width * g.scale, grid.Height*g.scale + headerHeight
}
