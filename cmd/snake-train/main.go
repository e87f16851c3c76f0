package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"grid-snake/ai"
	"grid-snake/config"
	"grid-snake/logging"

	"golang.org/x/exp/rand"
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

	rng := rand.New(rand.NewSource(cfg.RandSeed()))
	trainer := ai.NewTrainer(cfg.Grid(), cfg.FoodPolicy(), cfg.MaxSteps, rng)
	tm := ai.NewTrainingManager(trainer, cfg.Episodes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tm.StartTraining(ctx)
	if err := tm.Wait(); err != nil {
		fatal(err)
	}

	statsData, err := json.MarshalIndent(tm.Stats().Snapshot(), "", "  ")
	if err != nil {
		fatal(err)
	}
	os.Stdout.Write(append(statsData, '\n'))
}

// fatal reports err on stderr as well, since the log may be discarded.
func fatal(err error) {
	log.Print(err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
