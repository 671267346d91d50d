package metrics

import (
	"time"

	"mastermind/game"
)

type TurnMetric struct {
	Turn           int
	Guess          string
	ColorMatches   int
	ExactMatches   int
	TriesRemaining int           // after the turn was scored
	Duration       time.Duration // time spent obtaining the guess
}

type GameMetric struct {
	GameID         string
	Outcome        game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
	TriesRemaining int
}

type Collector interface {
	Start(gameID string)
	StartTurn()
	AddTurn(rec game.TurnRecord, triesRemaining int)
	Complete(outcome game.Outcome, triesRemaining int) (GameMetric, []TurnMetric)
}

type collector struct {
	gameID    string
	startTime time.Time
	turnStart time.Time
	turns     []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID string) {
	m.gameID = gameID
	m.startTime = time.Now()
	m.turns = nil
}

func (m *collector) StartTurn() {
	m.turnStart = time.Now()
}

func (m *collector) AddTurn(rec game.TurnRecord, triesRemaining int) {
	m.turns = append(m.turns, TurnMetric{
		Turn:           rec.Turn,
		Guess:          rec.Guess.String(),
		ColorMatches:   rec.Score.ColorMatches,
		ExactMatches:   rec.Score.ExactMatches,
		TriesRemaining: triesRemaining,
		Duration:       time.Since(m.turnStart),
	})
}

func (m *collector) Complete(outcome game.Outcome, triesRemaining int) (GameMetric, []TurnMetric) {
	end := time.Now()
	return GameMetric{
		GameID:         m.gameID,
		Outcome:        outcome,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalTurns:     len(m.turns),
		TriesRemaining: triesRemaining,
	}, m.turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID string)                             {}
func (m *dummyCollector) StartTurn()                                      {}
func (m *dummyCollector) AddTurn(rec game.TurnRecord, triesRemaining int) {}
func (m *dummyCollector) Complete(outcome game.Outcome, triesRemaining int) (GameMetric, []TurnMetric) {
	return GameMetric{Outcome: outcome, TriesRemaining: triesRemaining}, nil
}
