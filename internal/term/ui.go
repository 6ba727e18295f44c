package term

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"tickgol/internal/session"
	"tickgol/internal/tick"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(h *host) error
}

var keyBindings = []keyBinding{
	{gocui.KeyCtrlC, "^C", "Exit", func(*host) error { return gocui.ErrQuit }},
	{'q', "Q", "Exit", func(*host) error { return gocui.ErrQuit }},
	{gocui.KeyArrowUp, "UP", "Faster", func(h *host) error { h.push(tick.Increase()); return nil }},
	{'+', "+", "Faster", func(h *host) error { h.push(tick.Increase()); return nil }},
	{gocui.KeyArrowDown, "DOWN", "Slower", func(h *host) error { h.push(tick.Decrease()); return nil }},
	{'-', "-", "Slower", func(h *host) error { h.push(tick.Decrease()); return nil }},
	{gocui.KeySpace, "SPACE", "Toggle pause", func(h *host) error { h.push(tick.Toggle()); return nil }},
	{'p', "P", "Pause", func(h *host) error { h.push(tick.SetPause(true)); return nil }},
	{gocui.KeyEnter, "ENTER", "Resume", func(h *host) error { h.push(tick.SetPause(false)); return nil }},
	{'n', "N", "Next step", func(h *host) error { h.stepOnce(); return nil }},
	{'r', "R", "Reset", func(h *host) error { h.reset(true); return nil }},
	{'s', "S", "Reseed", func(h *host) error { h.reset(false); return nil }},
}

// UI renders a session in the terminal and feeds it key presses.
type UI struct {
	g     *gocui.Gui
	h     *host
	frame time.Duration
	done  chan struct{}
}

// New creates the terminal UI. frame is the host loop period.
func New(sess *session.Session, frame time.Duration) (*UI, error) {
	if frame <= 0 {
		frame = time.Second / 30
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: init gui: %w", err)
	}
	t := &UI{g: g, h: newHost(sess), frame: frame, done: make(chan struct{})}
	g.SetManagerFunc(t.layout)
	for _, kb := range keyBindings {
		handler := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return handler(t.h) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("term: bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

// Run blocks until the user quits.
func (t *UI) Run() error {
	defer t.g.Close()
	go t.ticker()
	err := t.g.MainLoop()
	close(t.done)
	if errors.Is(err, gocui.ErrQuit) {
		return nil
	}
	return err
}

// ticker schedules one host cycle per frame on the main loop so the session
// only ever sees a single writer.
func (t *UI) ticker() {
	tk := time.NewTicker(t.frame)
	defer tk.Stop()
	for {
		select {
		case <-t.done:
			return
		case now := <-tk.C:
			t.g.Update(func(g *gocui.Gui) error {
				t.h.frame(now)
				return t.render(g)
			})
		}
	}
}

func (t *UI) render(g *gocui.Gui) error {
	if v, err := g.View("board"); err == nil {
		v.Clear()
		w, h := v.Size()
		fmt.Fprint(v, boardText(t.h.sess.Grid(), w, h))
	}
	params := t.h.sess.Parameters()
	if v, err := g.View("configuration"); err == nil {
		v.Clear()
		fmt.Fprintln(v, strings.Join(statusLines(params, "Board"), "\n"))
	}
	if v, err := g.View("status"); err == nil {
		v.Clear()
		fmt.Fprintln(v, strings.Join(statusLines(params, "Status"), "\n"))
		fmt.Fprintln(v, renderProp("Mode", modeLabel(t.h.sess)))
	}
	return nil
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	if maxY < 12 || maxX < leftColumnWidth+4 {
		return nil
	}
	split := 3 + (maxY-3-3)/2

	if v, err := g.SetView("configuration", 0, 0, leftColumnWidth, split); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Configuration"
	}
	if v, err := g.SetView("status", 0, split+1, leftColumnWidth, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView("board", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Board"
	}
	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range keyBindings {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return t.render(g)
}
