//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"grid-snake/app"
	"grid-snake/audio"
	"grid-snake/config"
	"grid-snake/game/types"
	"grid-snake/logging"
	"grid-snake/ui/ebitenui"

	"github.com/hajimehoshi/ebiten/v2"
)

const tps = 60

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logFile, err := logging.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	sounds := audio.NewSoundManager()
	if !cfg.Mute {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sounds.Cleanup()

	session, err := app.NewSession(cfg, sounds.Handle)
	if err != nil {
		fatal(err)
	}

	game := ebitenui.New(session, types.CellSize)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Snake Game")
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports err on stderr as well, since the log may be discarded.
func fatal(err error) {
	log.Print(err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
