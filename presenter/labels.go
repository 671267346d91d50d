package presenter

import (
	"fmt"

	"mastermind/engine"
	"mastermind/game"
)

const scoring = `Each guess is scored by two numbers. The first shows how many of the guessed
colors are in the code, whatever their position. The second shows the exact
matches: right colors in the right positions.`

// Labels words the engine's facts for one seating of the human. The engine
// always speaks from the codebreaker's side; labels decide whether that is
// the human or the computer.
type Labels interface {
	Greeting(length, tries int) []string
	Rules(length, tries int, colors string) string
	Invitation(length int, palette game.Palette) []string
	Status(triesRemaining int) string
	Won(ev engine.EndEvent) []string
	Lost(ev engine.EndEvent) []string
	DuplicateHint() string
}

// BreakerLabels seat the human as the codebreaker.
type BreakerLabels struct{}

func (BreakerLabels) Greeting(length, tries int) []string {
	return []string{
		fmt.Sprintf("Computer made a %d-piece code.", length),
		"Try to guess it. Use first letters of colors. Examples: rgby, plbr.",
	}
}

func (BreakerLabels) Rules(length, tries int, colors string) string {
	return fmt.Sprintf(`The object of the game is to guess a secret code consisting of a series of
%d color pegs, no color repeated. Each guess narrows down the possibilities.
The code has to be cracked within %d tries.

Colors of the game are %s.
Enter a guess using only the first letters of the colors.
%s

Take your time. Try to use as few turns as possible. Good luck!`, length, tries, colors, scoring)
}

// Invitation is empty: the computer picks the secret.
func (BreakerLabels) Invitation(int, game.Palette) []string {
	return nil
}

func (BreakerLabels) Status(triesRemaining int) string {
	return fmt.Sprintf("You have %d tries left.", triesRemaining)
}

func (BreakerLabels) Won(ev engine.EndEvent) []string {
	return []string{fmt.Sprintf("Well done! You managed to guess the code with %d tries left!", ev.TriesRemaining)}
}

func (BreakerLabels) Lost(ev engine.EndEvent) []string {
	return []string{
		fmt.Sprintf("The code was %s.", ev.Secret),
		"You have no tries left, but don't give in to discouragement.",
		"Come on! Try again. You'll definitely crack it next time!",
	}
}

func (BreakerLabels) DuplicateHint() string {
	return "Computer was not allowed duplicates in code. Enter unique letters."
}

// MakerLabels seat the human as the codemaker; a computer outcome of Won is
// the human's loss.
type MakerLabels struct{}

func (MakerLabels) Greeting(length, tries int) []string {
	return []string{
		fmt.Sprintf("Make a %d-piece code of distinct colors.", length),
		fmt.Sprintf("The computer will try to crack it in %d tries. Examples: rgby, plbr.", tries),
	}
}

func (MakerLabels) Rules(length, tries int, colors string) string {
	return fmt.Sprintf(`You make the secret code: a series of %d color pegs, no color repeated.
The computer has to crack it within %d tries. It guesses at random and
learns nothing from the scores.

Colors of the game are %s.
Enter your code using only the first letters of the colors.
%s`, length, tries, colors, scoring)
}

func (MakerLabels) Invitation(length int, palette game.Palette) []string {
	return []string{
		fmt.Sprintf("Enter a secret of %d distinct colors from %s.", length, game.Code(palette)),
		"It stays hidden from the computer.",
	}
}

func (MakerLabels) Status(triesRemaining int) string {
	return fmt.Sprintf("Computer has %d tries left.", triesRemaining)
}

func (MakerLabels) Won(ev engine.EndEvent) []string {
	return []string{
		fmt.Sprintf("The computer cracked your code on turn %d with %d tries left.", ev.Turns, ev.TriesRemaining),
		"Better luck next time!",
	}
}

func (MakerLabels) Lost(ev engine.EndEvent) []string {
	return []string{
		fmt.Sprintf("The computer ran out of tries. Your code %s held. You win!", ev.Secret),
	}
}

func (MakerLabels) DuplicateHint() string {
	return "A code may not repeat a color. Enter unique letters."
}
