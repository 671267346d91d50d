package engine

import (
	"context"

	"mastermind/game"
)

// Guesser supplies the codebreaker's next guess. Implementations return a
// code that already passed validation; an error aborts the game.
type Guesser interface {
	NextGuess(ctx context.Context, view game.View) (game.Code, error)
}

// Presenter receives the facts of a game as it unfolds and decides how to
// show them. Start introduces the game before its secret is chosen and is
// called by whoever sets the game up; Engine.Run reports the rest.
type Presenter interface {
	Start(StartEvent)
	Status(triesRemaining int)
	Turn(TurnEvent)
	End(EndEvent)
}

type StartEvent struct {
	CodeLength int
	MaxTries   int
	Palette    game.Palette
}

type TurnEvent struct {
	Record         game.TurnRecord
	History        []game.TurnRecord
	TriesRemaining int
}

type EndEvent struct {
	GameID         string
	Outcome        game.Outcome
	Secret         game.Code
	TriesRemaining int
	Turns          int
}

type dummyPresenter struct{}

func NewDummyPresenter() Presenter {
	return dummyPresenter{}
}

func (dummyPresenter) Start(StartEvent) {}
func (dummyPresenter) Status(int)       {}
func (dummyPresenter) Turn(TurnEvent)   {}
func (dummyPresenter) End(EndEvent)     {}
