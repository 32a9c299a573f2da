package game

import (
	"math/rand"
	"sync"
	"time"
)

const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// Engine resolves a single bet against a fixed win probability. The draw is a
// uniform value in [0,1); a bet wins iff the draw is strictly below the
// configured probability.
type Engine struct {
	winProbability float64
	draw           func() float64
}

func NewEngine(winProbability float64) *Engine {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	var mu sync.Mutex
	return &Engine{
		winProbability: winProbability,
		draw: func() float64 {
			mu.Lock()
			defer mu.Unlock()
			return rnd.Float64()
		},
	}
}

// NewEngineWithDraw substitutes the random source, used to force outcomes in
// tests. The draw func must return values in [0,1).
func NewEngineWithDraw(winProbability float64, draw func() float64) *Engine {
	return &Engine{winProbability: winProbability, draw: draw}
}

// Resolve draws one outcome for the given stake. The win amount is
// stake*multiplier on a win and 0 on a loss.
func (e *Engine) Resolve(stake, multiplier float64) (result string, winAmount float64) {
	if e.draw() < e.winProbability {
		return ResultWin, stake * multiplier
	}
	return ResultLoss, 0
}
