package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"grid-snake/app"
	"grid-snake/audio"
	"grid-snake/config"
	"grid-snake/game/types"
	"grid-snake/logging"
	"grid-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

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

	rl.InitWindow(int32(cfg.Width*types.CellSize), int32(cfg.Height*types.CellSize), "Snake Game")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			if err := session.Key(ui.KeySymbol(key)); err != nil {
				fatal(err)
			}
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		if _, err := session.Frame(dt); err != nil {
			fatal(err)
		}

		renderer.Draw(session.Game())
	}
}

// fatal reports err on stderr as well, since the log may be discarded.
func fatal(err error) {
	log.Print(err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
