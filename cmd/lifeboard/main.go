//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeboard/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := cfg.WindowSize()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)

	log.Printf("board %dx%d cells, %d ticks/s", cfg.Cols(), cfg.Rows(), cfg.TickRate)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("quit after %d generations", game.Loop().Grid().Generation())
}
