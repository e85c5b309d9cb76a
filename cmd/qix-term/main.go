package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Garsondee/mqix/internal/game"
	"github.com/Garsondee/mqix/internal/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	var seed int64
	var freeze bool
	var hold int
	flag.Int64Var(&seed, "seed", 0, "RNG seed for the roaming enemy (0 = time based)")
	flag.BoolVar(&freeze, "freeze-timers", false, "stop invulnerability and level-pass timers while paused")
	flag.IntVar(&hold, "hold-ticks", term.DefaultHoldTicks, "ticks one arrow key event keeps moving the player")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := game.NewSession(game.DefaultConfig(), game.WithSeed(seed), game.WithFreezeTimersOnPause(freeze))
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.New(screen, s, term.WithHoldTicks(hold)).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
