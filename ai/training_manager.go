package ai

import (
	"context"
	"log"
	"sync"
)

// ReportEvery is how many episodes pass between progress log lines.
const ReportEvery = 100

// TrainingManager runs a Trainer on its own goroutine. The trainer and its
// agent belong to that goroutine until Wait returns.
type TrainingManager struct {
	trainer  *Trainer
	episodes int

	wg         sync.WaitGroup
	mutex      sync.Mutex
	isTraining bool
	cancel     context.CancelFunc
	err        error
}

// NewTrainingManager trains for episodes runs; 0 means until stopped.
func NewTrainingManager(trainer *Trainer, episodes int) *TrainingManager {
	return &TrainingManager{
		trainer:  trainer,
		episodes: episodes,
	}
}

// StartTraining launches the loop. It is a no-op while already training.
func (tm *TrainingManager) StartTraining(ctx context.Context) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	if tm.isTraining {
		return
	}
	tm.isTraining = true

	ctx, tm.cancel = context.WithCancel(ctx)
	tm.wg.Add(1)
	go tm.trainingLoop(ctx)
}

// StopTraining cancels the loop and waits for it to exit.
func (tm *TrainingManager) StopTraining() error {
	tm.mutex.Lock()
	cancel := tm.cancel
	tm.mutex.Unlock()
	if cancel != nil {
		cancel()
	}
	return tm.Wait()
}

// Wait blocks until the loop exits and returns the first episode error.
func (tm *TrainingManager) Wait() error {
	tm.wg.Wait()
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	return tm.err
}

// Stats is readable while training runs.
func (tm *TrainingManager) Stats() *Stats {
	return tm.trainer.Stats
}

func (tm *TrainingManager) trainingLoop(ctx context.Context) {
	defer tm.wg.Done()
	defer func() {
		tm.mutex.Lock()
		tm.isTraining = false
		tm.cancel()
		tm.mutex.Unlock()
	}()

	for done := 0; tm.episodes == 0 || done < tm.episodes; done++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := tm.trainer.RunEpisode(); err != nil {
			tm.mutex.Lock()
			tm.err = err
			tm.mutex.Unlock()
			return
		}

		if (done+1)%ReportEvery == 0 {
			snap := tm.trainer.Stats.Snapshot()
			log.Printf("episode %d: best %d, avg %.2f, median %.1f, epsilon %.3f",
				snap.Episodes, snap.BestLength, snap.AverageLength, snap.MedianLength, snap.Epsilon)
		}
	}
}
