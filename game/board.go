package game

// TurnRecord is one scored guess. Turns are numbered from 1.
type TurnRecord struct {
	Turn  int
	Guess Code
	Score Score
}

// ScoreBoard is the append-only history of one game.
type ScoreBoard struct {
	records []TurnRecord
}

// AddTurn records guess under the next turn number and returns the record.
func (b *ScoreBoard) AddTurn(guess Code, score Score) TurnRecord {
	rec := TurnRecord{
		Turn:  len(b.records) + 1,
		Guess: guess.Copy(),
		Score: score,
	}
	b.records = append(b.records, rec)
	return rec
}

// History returns the records in turn order. The slice and the guesses in it
// are copies.
func (b *ScoreBoard) History() []TurnRecord {
	out := make([]TurnRecord, len(b.records))
	for i, rec := range b.records {
		out[i] = TurnRecord{Turn: rec.Turn, Guess: rec.Guess.Copy(), Score: rec.Score}
	}
	return out
}

// Len returns the number of recorded turns.
func (b *ScoreBoard) Len() int {
	return len(b.records)
}
