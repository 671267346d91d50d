package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Outcome is the position of a game in its state machine, from the
// codebreaker's point of view.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// GameState represents one game from the first turn to its terminal outcome.
// It is owned by a single engine and is never shared between games.
type GameState struct {
	ID             string
	Rules          Rules
	TriesRemaining int
	Outcome        Outcome

	secret Code
	board  ScoreBoard
}

// View is what a codebreaker may see of a game: everything but the secret.
type View struct {
	GameID         string
	Rules          Rules
	TriesRemaining int
	History        []TurnRecord
}

// NewGameState starts a game against secret with the full try budget.
func NewGameState(secret Code, rules Rules) (*GameState, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	if err := ValidateCode(secret, rules.CodeLength(), rules.Palette()); err != nil {
		return nil, fmt.Errorf("invalid secret: %w", err)
	}
	return &GameState{
		ID:             uuid.NewString(),
		Rules:          rules,
		TriesRemaining: rules.MaxTries(),
		Outcome:        InProgress,
		secret:         secret.Copy(),
	}, nil
}

// Secret returns a copy of the code being guessed.
func (gs *GameState) Secret() Code {
	return gs.secret.Copy()
}

// History returns the scored turns so far.
func (gs *GameState) History() []TurnRecord {
	return gs.board.History()
}

// Turns returns the number of scored turns.
func (gs *GameState) Turns() int {
	return gs.board.Len()
}

// IsOver reports whether the game reached Won or Lost.
func (gs *GameState) IsOver() bool {
	return gs.Outcome != InProgress
}

// View returns the guesser's view of the game.
func (gs *GameState) View() View {
	return View{
		GameID:         gs.ID,
		Rules:          gs.Rules,
		TriesRemaining: gs.TriesRemaining,
		History:        gs.History(),
	}
}

// CheckTryLimit moves an in-progress game with no tries left to Lost and
// reports whether the game is over.
func (gs *GameState) CheckTryLimit() bool {
	if gs.Outcome == InProgress && gs.TriesRemaining <= 0 {
		gs.Outcome = Lost
	}
	return gs.IsOver()
}

// Play scores one guess and records it. A solved guess ends the game as Won
// without spending a try; any other guess spends one. Running out of tries is
// detected by the next CheckTryLimit, not here.
//
// An invalid guess returns a validation error and leaves the state untouched.
func (gs *GameState) Play(guess Code) (TurnRecord, error) {
	if gs.IsOver() || gs.TriesRemaining <= 0 {
		return TurnRecord{}, ErrGameOver
	}
	length := gs.Rules.CodeLength()
	if err := ValidateCode(guess, length, gs.Rules.Palette()); err != nil {
		return TurnRecord{}, err
	}

	score := Evaluate(guess, gs.secret)
	rec := gs.board.AddTurn(guess, score)

	if score.Solved(length) {
		gs.Outcome = Won
	} else {
		gs.TriesRemaining--
	}
	return rec, nil
}
