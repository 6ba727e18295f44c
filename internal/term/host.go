// Package term drives a session from a gocui terminal UI.
package term

import (
	"bytes"
	"fmt"
	"time"

	"github.com/logrusorgru/aurora"

	"tickgol/internal/core"
	"tickgol/internal/session"
	"tickgol/internal/tick"
)

// host holds the event batch gathered between frames. Every method must run
// on the gocui main loop.
type host struct {
	sess    *session.Session
	pending []tick.Event
	last    time.Time
	reseed  func() int64
}

func newHost(sess *session.Session) *host {
	return &host{sess: sess, reseed: func() int64 { return time.Now().UnixNano() }}
}

func (h *host) push(ev tick.Event) { h.pending = append(h.pending, ev) }

// frame hands the pending batch and the time since the previous frame to the
// session.
func (h *host) frame(now time.Time) bool {
	if h.last.IsZero() {
		h.last = now
	}
	elapsed := now.Sub(h.last)
	h.last = now
	stepped := h.sess.Update(elapsed, h.pending)
	h.pending = h.pending[:0]
	return stepped
}

func (h *host) stepOnce() { h.sess.Step() }

func (h *host) reset(sameSeed bool) {
	seed := h.sess.Seed()
	if !sameSeed {
		seed = h.reseed()
	}
	h.sess.Reset(seed)
}

var (
	liveFiller = aurora.Green("█").BgBrightGreen().String()
	deadFiller = "░"
	cropNotice = aurora.Red("The board is larger than the viewing area").BgBlack().String()
)

// boardText renders g into at most maxW columns and maxH rows.
func boardText(g *core.Grid, maxW, maxH int) string {
	crop := g.Width() > maxW || g.Height() > maxH
	var b bytes.Buffer
	for y := 0; y < g.Height() && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(cropNotice)
			break
		}
		for x := 0; x < g.Width() && x < maxW; x++ {
			if g.At(core.Position{X: x, Y: y}) == core.Alive {
				b.WriteString(liveFiller)
			} else {
				b.WriteString(deadFiller)
			}
		}
	}
	return b.String()
}

// statusLines formats one parameter group for a side panel.
func statusLines(s core.ParameterSnapshot, group string) []string {
	var out []string
	for _, g := range s.Groups {
		if g.Name != group {
			continue
		}
		for _, p := range g.Params {
			out = append(out, renderProp(p.Label, p.Value))
		}
	}
	return out
}

func renderProp(name, value string) string {
	return fmt.Sprintf(" %s: %s", aurora.Colorize(name, aurora.GreenFg), value)
}

func modeLabel(sess *session.Session) string {
	switch {
	case sess.Speed().Paused():
		return aurora.Colorize("paused", aurora.BlueFg).String()
	case sess.Stepped():
		return aurora.Colorize("step", aurora.CyanFg).String()
	}
	return "waiting"
}
