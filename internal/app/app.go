//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"tickgol/internal/render"
	"tickgol/internal/session"
	"tickgol/internal/tick"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const statusHeight = 18

// Game adapts a simulation session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter

	scale   int
	verbose bool
	last    time.Time
	events  []tick.Event
}

// New constructs a Game for the provided session.
func New(sess *session.Session, scale int, verbose bool) *Game {
	g := sess.Grid()
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(g.Width(), g.Height(), render.DefaultPalette()),
		scale:   scale,
		verbose: verbose,
	}
}

// Update collects this frame's control events and advances the session by
// the wall-clock time since the previous frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.events = g.events[:0]
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.events = append(g.events, tick.Increase())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.events = append(g.events, tick.Decrease())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.events = append(g.events, tick.Toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.events = append(g.events, tick.SetPause(true))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.events = append(g.events, tick.SetPause(false))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Reset(g.sess.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sess.Reset(time.Now().UnixNano())
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	elapsed := now.Sub(g.last)
	g.last = now

	before := g.sess.Level()
	g.sess.Update(elapsed, g.events)
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.Step()
	}
	if g.verbose && g.sess.Level() != before {
		log.Printf("speed %s -> %s", before, g.sess.Level())
	}
	return nil
}

// Draw renders the board and a one-line status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Grid(), g.scale)

	st := g.sess.Stats()
	line := fmt.Sprintf("gen %d  alive %d  speed %s", g.sess.Generation(), st.Alive, g.sess.Level())
	if g.sess.Stepped() {
		line += "  *"
	}
	_, h := g.painter.Size()
	text.Draw(screen, line, basicfont.Face7x13, 4, h*g.scale+13, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h*g.scale + statusHeight
}
