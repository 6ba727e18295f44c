package main

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"tickgol/internal/session"
	"tickgol/internal/sims/life"
	"tickgol/internal/term"
	"tickgol/internal/tick"
)

type options struct {
	width, height int
	seed          int64
	fill          string
	pattern       string
	edges         string
	speed         string
	resume        string
	frame         time.Duration
	intervals     map[string]*float64
}

func main() {
	o := parseOptions()

	cfg, err := session.FromMap(o.values())
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	ui, err := term.New(sess, o.frame)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}

func parseOptions() *options {
	d := session.DefaultConfig()
	o := &options{
		width:     d.Width,
		height:    d.Height,
		seed:      d.Seed,
		fill:      string(d.Fill),
		edges:     d.Edges.String(),
		speed:     d.Level.String(),
		resume:    "regular",
		frame:     time.Second / 30,
		intervals: map[string]*float64{},
	}

	levels := make([]string, 0, len(tick.Levels))
	for _, l := range tick.Levels {
		levels = append(levels, l.String())
	}

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life with a variable-speed tick scheduler")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.width, "x", "width", "Width of the board")
	flaggy.Int(&o.height, "y", "height", "Height of the board")
	flaggy.Int64(&o.seed, "s", "seed", "Seed for the initial board")
	flaggy.String(&o.fill, "f", "fill", "Initial fill [dead|random|perlin]")
	flaggy.String(&o.pattern, "p", "pattern", "Pattern stamped at the centre ["+strings.Join(life.PatternNames(), "|")+"]")
	flaggy.String(&o.edges, "e", "edges", "Edge mode [bounded|toroidal]")
	flaggy.String(&o.speed, "l", "speed", "Starting speed ["+strings.Join(levels, "|")+"]")
	flaggy.String(&o.resume, "r", "resume", "Resume policy [regular|previous]")
	flaggy.Duration(&o.frame, "i", "frame", "Host loop period, for example 33ms")
	for _, l := range tick.Levels[1:] {
		secs := d.Table[l].Seconds()
		o.intervals[l.String()] = &secs
		flaggy.Float64(o.intervals[l.String()], "", "interval-"+l.String(), "Seconds per step at "+l.String()+" speed")
	}
	flaggy.Parse()
	return o
}

func (o *options) values() map[string]string {
	v := map[string]string{
		"w":       strconv.Itoa(o.width),
		"h":       strconv.Itoa(o.height),
		"seed":    strconv.FormatInt(o.seed, 10),
		"fill":    o.fill,
		"pattern": o.pattern,
		"edges":   o.edges,
		"speed":   o.speed,
		"resume":  o.resume,
	}
	for name, secs := range o.intervals {
		v["interval_"+strings.ReplaceAll(name, "-", "_")] = strconv.FormatFloat(*secs, 'g', -1, 64)
	}
	return v
}
