package main

import (
	"flag"
	"log"
	"time"

	"github.com/Garsondee/mqix/internal/game"
	"github.com/Garsondee/mqix/internal/screen"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var seed int64
	var freeze bool
	var scale float64
	flag.Int64Var(&seed, "seed", 0, "RNG seed for the roaming enemy (0 = time based)")
	flag.BoolVar(&freeze, "freeze-timers", false, "stop invulnerability and level-pass timers while paused")
	flag.Float64Var(&scale, "scale", 1, "window scale factor")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := game.DefaultConfig()
	s, err := game.NewSession(cfg, game.WithSeed(seed), game.WithFreezeTimersOnPause(freeze))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowSize(int(cfg.ArenaWidth*scale), int(cfg.ArenaHeight*scale))
	ebiten.SetTPS(game.TickRate)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(screen.New(s)); err != nil {
		log.Fatal(err)
	}
}
