// Package entity provides the player character.
package entity

import "github.com/samdwyer/roomcrawl/internal/world"

// DefaultHealth is the health a new character starts with.
const DefaultHealth = 100

// Character is the single player character.
type Character struct {
	X, Y   int // Current position in the dungeon
	Health int // Starting health; nothing modifies it yet
}

// NewCharacter creates a new character at the given position.
func NewCharacter(x, y int) *Character {
	return &Character{
		X:      x,
		Y:      y,
		Health: DefaultHealth,
	}
}

// Move updates the character position by the given delta.
func (c *Character) Move(dx, dy int) {
	c.X += dx
	c.Y += dy
}

// PlaceAt repositions the character without touching any other state.
func (c *Character) PlaceAt(p world.Point) {
	c.X, c.Y = p.X, p.Y
}

// Position returns the current coordinates.
func (c *Character) Position() world.Point {
	return world.Point{X: c.X, Y: c.Y}
}
