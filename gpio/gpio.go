// Package gpio binds the classifier to GPIO lines: button inputs and an LED output.
package gpio

import (
	"errors"
	"fmt"
	"time"
)

// ErrClosed is returned by operations on a released line
var ErrClosed = errors.New("gpio: line closed")

// Direction selects whether a line is requested as input or output
type Direction int

const (
	DirectionIn  Direction = 0
	DirectionOut Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Line is a single requested GPIO line
type Line interface {
	Value() (int, error)
	SetValue(value int) error
	Close() error
}

// Toggle flips an output line between 0 and 1
func Toggle(l Line) error {
	v, err := l.Value()
	if err != nil {
		return fmt.Errorf("toggle: read: %w", err)
	}
	next := 1
	if v == 1 {
		next = 0
	}
	if err := l.SetValue(next); err != nil {
		return fmt.Errorf("toggle: write: %w", err)
	}
	return nil
}

// Delay blocks for ms milliseconds
func Delay(ms int) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
