//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"voxdiff/internal/app"
	"voxdiff/pkg/diffusion"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl, err := diffusion.NewController(int16(cfg.W), int16(cfg.H), int16(cfg.D), uint8(cfg.Rate), cfg.Threads)
	if err != nil {
		log.Fatalf("create controller: %v", err)
	}

	game := app.New(ctrl, cfg)
	game.Reset(cfg.Seed)

	ebiten.SetWindowTitle(fmt.Sprintf("voxdiff — %dx%dx%d rate %d", cfg.W, cfg.H, cfg.D, cfg.Rate))
	ebiten.SetWindowSize(cfg.W*cfg.Scale, cfg.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
