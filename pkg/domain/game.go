package domain

import "github.com/shopspring/decimal"

// GamePrice is the fixed price of every game.
var GamePrice = decimal.RequireFromString("15.99") //nolint: gochecknoglobals

// Game is a sellable video game. It has no attributes beyond ContentBase.
type Game struct {
	ContentBase
}

// NewGame builds an unvalidated game.
func NewGame(name string, creator *Creator, releaseYear int, available bool) *Game {
	return &Game{ContentBase: newContentBase(name, creator, releaseYear, available)}
}

func (g *Game) isContent() {}

// Type implements Content.
func (g *Game) Type() ContentType { return ContentTypeGame }

// Price implements Content.
func (g *Game) Price() decimal.Decimal { return GamePrice }

// Validate implements Validatable.
func (g *Game) Validate() error { return g.validate() }

// Describe implements Content.
func (g *Game) Describe() string { return g.describe(g.Type(), g.Price()) }
