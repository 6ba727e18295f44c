package app

import (
	"flag"
	"strconv"

	"tickgol/internal/session"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Fill    string
	Pattern string
	Edges   string
	Speed   string
	Resume  string
	Scale   int
	TPS     int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := session.DefaultConfig()
	return &Config{
		Width:  d.Width,
		Height: d.Height,
		Seed:   d.Seed,
		Fill:   string(d.Fill),
		Edges:  d.Edges.String(),
		Speed:  d.Level.String(),
		Resume: "regular",
		Scale:  16,
		TPS:    60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board initialisation")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: dead, random or perlin")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern stamped at the centre after filling")
	fs.StringVar(&c.Edges, "edges", c.Edges, "edge mode: bounded or toroidal")
	fs.StringVar(&c.Speed, "speed", c.Speed, "starting speed level")
	fs.StringVar(&c.Resume, "resume", c.Resume, "resume policy: regular or previous")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the host loop")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log speed changes")
}

// Session converts the flags into a validated session configuration.
func (c *Config) Session() (session.Config, error) {
	return session.FromMap(map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"fill":    c.Fill,
		"pattern": c.Pattern,
		"edges":   c.Edges,
		"speed":   c.Speed,
		"resume":  c.Resume,
	})
}
