package game

type Rules interface {
	CodeLength() int
	MaxTries() int
	Palette() Palette
}
