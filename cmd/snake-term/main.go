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
	"grid-snake/logging"
	"grid-snake/ui/term"
	"grid-snake/ui/view"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := logging.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("snake-term: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	sounds := audio.NewSoundManager()
	if !cfg.Mute {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sounds.Cleanup()

	session, err := app.NewSession(cfg, sounds.Handle)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := term.NewRenderer(screen)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if term.IsQuit(ev) {
					return nil
				}
				if err := session.Key(term.KeySymbol(ev)); err != nil {
					return err
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if _, err := session.Frame(dt); err != nil {
				return err
			}
			renderer.Draw(view.Capture(session.Game()))
		}
	}
}
