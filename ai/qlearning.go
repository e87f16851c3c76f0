package ai

import (
	"math"

	"grid-snake/game/types"
)

// Rand is the random source the agent explores with.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// State is what the agent sees of the board before a move.
type State struct {
	FoodDir [2]int  // sign of food - head on each axis
	Dangers [4]bool // indexed like types.Directions
	Heading types.Direction
}

// QTable maps a state to one value per heading, indexed like types.Directions.
type QTable map[State][4]float64

// Learning parameters.
const (
	LearningRate   = 0.1
	Discount       = 0.9
	InitialEpsilon = 0.9
	MinEpsilon     = 0.01
	EpsilonDecay   = 0.995
)

// QLearning is a tabular epsilon-greedy agent over absolute headings.
type QLearning struct {
	QTable          QTable
	LearningRate    float64
	Discount        float64
	Epsilon         float64
	InitialEpsilon  float64
	MinEpsilon      float64
	EpsilonDecay    float64
	TrainingEpisode int
	TotalReward     float64

	rng Rand
}

func NewQLearning(rng Rand) *QLearning {
	return &QLearning{
		QTable:         make(QTable),
		LearningRate:   LearningRate,
		Discount:       Discount,
		Epsilon:        InitialEpsilon,
		InitialEpsilon: InitialEpsilon,
		MinEpsilon:     MinEpsilon,
		EpsilonDecay:   EpsilonDecay,
		rng:            rng,
	}
}

// GetAction picks among allowed headings: random with probability Epsilon,
// otherwise the best known one.
func (q *QLearning) GetAction(state State, allowed []types.Direction) types.Direction {
	if len(allowed) == 0 {
		return state.Heading
	}
	if q.rng.Float64() < q.Epsilon {
		return allowed[q.rng.Intn(len(allowed))]
	}
	return q.BestAction(state, allowed)
}

// BestAction returns the allowed heading with the highest Q-value. Ties go to
// the earliest entry in allowed.
func (q *QLearning) BestAction(state State, allowed []types.Direction) types.Direction {
	values := q.QTable[state]
	best := allowed[0]
	bestValue := math.Inf(-1)
	for _, a := range allowed {
		if values[a] > bestValue {
			bestValue = values[a]
			best = a
		}
	}
	return best
}

// Update applies Q(s,a) += α [r + γ max Q(s',·) - Q(s,a)]. Terminal
// transitions drop the future term.
func (q *QLearning) Update(state State, action types.Direction, reward float64, next State, done bool) {
	values := q.QTable[state]
	target := reward
	if !done {
		target += q.Discount * q.maxQValue(next)
	}
	values[action] += q.LearningRate * (target - values[action])
	q.QTable[state] = values
	q.TotalReward += reward
}

// IncrementEpisode advances the episode counter and decays epsilon.
func (q *QLearning) IncrementEpisode() {
	q.TrainingEpisode++
	q.Epsilon = math.Max(q.MinEpsilon, q.InitialEpsilon*math.Pow(q.EpsilonDecay, float64(q.TrainingEpisode)))
}

// Greedy switches off exploration, for demo play after training.
func (q *QLearning) Greedy() {
	q.Epsilon = 0
	q.MinEpsilon = 0
}

func (q *QLearning) maxQValue(state State) float64 {
	values, ok := q.QTable[state]
	if !ok {
		return 0
	}
	maxQ := values[0]
	for _, v := range values[1:] {
		if v > maxQ {
			maxQ = v
		}
	}
	return maxQ
}
