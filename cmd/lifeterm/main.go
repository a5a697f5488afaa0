package main

import (
	"flag"
	"log"

	"lifeboard/internal/app"
	"lifeboard/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	// One board cell is two characters wide; keep the default board on a
	// regular terminal.
	cfg.Width, cfg.Height = 400, 240
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()

	scale := term.NewScale(cfg.CellSize)
	loop, err := app.NewLoop(*cfg, term.NewRenderer(screen, scale))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	in := term.NewInput(screen, scale)
	loop.Run(in)
	in.Close()
	screen.Fini()

	log.Printf("quit after %d generations, %d cells alive", loop.Grid().Generation(), loop.Grid().Population())
}
