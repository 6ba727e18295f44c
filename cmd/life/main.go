//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tickgol/internal/app"
	"tickgol/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sc, err := cfg.Session()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sess, err := session.New(sc)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	game := app.New(sess, cfg.Scale, cfg.Verbose)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("tickgol")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
