// meta/meta.go
package meta

// CodeLength is the default number of pegs in a code.
const CodeLength = 4

// MaxTries is the default number of scored guesses before the codebreaker loses.
const MaxTries = 12

// SimulationGames is the default number of games played by a simulation batch.
const SimulationGames = 100
