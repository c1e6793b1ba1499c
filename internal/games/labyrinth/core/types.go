// Package core provides the board logic for the Labyrinth sliding-tile game:
// connector tiles, the derived adjacency graph, row/column shifting and
// shortest-path search. This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strings"
)

// Rotation is the way a tile is turned.
type Rotation uint8

const (
	RotateRight Rotation = iota
	RotateLeft
)

// String returns the string representation of a rotation.
func (r Rotation) String() string {
	switch r {
	case RotateRight:
		return "Right"
	case RotateLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Orientation is the payload of a straight (Linear) tile.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// Rotate returns the orientation after a quarter turn.
// There are only two states, so both rotations toggle.
func (o Orientation) Rotate(Rotation) Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Direction is a compass side of a tile and a direction of travel.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all compass directions in the order open sides are visited.
var Directions = [4]Direction{North, East, South, West}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Rotate returns the direction after a quarter turn.
func (d Direction) Rotate(r Rotation) Direction {
	if r == RotateRight {
		return (d + 1) % 4
	}
	if d == North {
		return West
	}
	return d - 1
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// North decreases the row (screen coordinates).
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Vertical reports whether the direction runs along a column.
func (d Direction) Vertical() bool {
	return d == North || d == South
}

// ParseDirection parses a direction name. Accepts the full names,
// single letters and up/right/down/left, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
