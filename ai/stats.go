package ai

import (
	"sort"
	"sync"

	"grid-snake/game/manager"
)

// WindowSize is the number of recent episodes averaged by Stats.
const WindowSize = 100

// EpisodeResult describes one finished training run.
type EpisodeResult struct {
	Length  int
	Steps   int
	Outcome manager.CollisionType // NoCollision when the step cap was hit
}

// Stats aggregates episode results in memory. Safe for concurrent use.
type Stats struct {
	mutex sync.RWMutex

	episodes   int
	bestLength int
	wallDeaths int
	selfDeaths int
	timeouts   int
	recent     []int
	epsilon    float64
}

func NewStats() *Stats {
	return &Stats{recent: make([]int, 0, WindowSize)}
}

// Add records a finished episode and the agent's epsilon after it.
func (s *Stats) Add(res EpisodeResult, epsilon float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.episodes++
	if res.Length > s.bestLength {
		s.bestLength = res.Length
	}
	switch res.Outcome {
	case manager.WallCollision:
		s.wallDeaths++
	case manager.SelfCollision:
		s.selfDeaths++
	default:
		s.timeouts++
	}
	if len(s.recent) == WindowSize {
		s.recent = s.recent[1:]
	}
	s.recent = append(s.recent, res.Length)
	s.epsilon = epsilon
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Episodes      int     `json:"episodes"`
	BestLength    int     `json:"bestLength"`
	AverageLength float64 `json:"averageLength"` // over the last WindowSize episodes
	MedianLength  float64 `json:"medianLength"`
	WallDeaths    int     `json:"wallDeaths"`
	SelfDeaths    int     `json:"selfDeaths"`
	Timeouts      int     `json:"timeouts"`
	Epsilon       float64 `json:"epsilon"`
}

func (s *Stats) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return Snapshot{
		Episodes:      s.episodes,
		BestLength:    s.bestLength,
		AverageLength: average(s.recent),
		MedianLength:  median(s.recent),
		WallDeaths:    s.wallDeaths,
		SelfDeaths:    s.selfDeaths,
		Timeouts:      s.timeouts,
		Epsilon:       s.epsilon,
	}
}

func average(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

func median(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]int, len(vals))
	copy(sorted, vals)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}
