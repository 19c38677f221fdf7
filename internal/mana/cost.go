// Package mana models mana colors and card costs.
package mana

import (
	"errors"
	"fmt"
	"strings"
)

// MaxComponents is the most components a single cost can hold
const MaxComponents = 6

// ErrCapacityExceeded is returned when adding to a cost that is already full
var ErrCapacityExceeded = errors.New("cannot add more than 6 cost components")

// Component is a single (amount, color) requirement of a cost
type Component struct {
	Amount int
	Color  Color
}

// NewComponent returns a component with a negative amount clamped to 0
func NewComponent(amount int, c Color) Component {
	return Component{Amount: max(0, amount), Color: c}
}

func (p Component) String() string {
	return fmt.Sprintf("{%d %s}", p.Amount, p.Color)
}

// Cost is an ordered list of at most MaxComponents components.
// The zero value is an empty cost.
type Cost struct {
	components []Component
}

// NewCost builds a cost from the given components, stopping at the first
// one that does not fit
func NewCost(components ...Component) (Cost, error) {
	var c Cost
	for _, p := range components {
		if err := c.Add(p.Amount, p.Color); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Add appends a component. A full cost is left unchanged and
// ErrCapacityExceeded is returned.
func (c *Cost) Add(amount int, color Color) error {
	if len(c.components) >= MaxComponents {
		return ErrCapacityExceeded
	}
	c.components = append(c.components, NewComponent(amount, color))
	return nil
}

// Components returns a copy of the components in insertion order
func (c Cost) Components() []Component {
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

// Len returns the number of components
func (c Cost) Len() int { return len(c.components) }

// Total returns the sum of all component amounts
func (c Cost) Total() int {
	total := 0
	for _, p := range c.components {
		total += p.Amount
	}
	return total
}

// Clone returns a cost that shares no storage with c
func (c Cost) Clone() Cost {
	return Cost{components: c.Components()}
}

func (c Cost) String() string {
	if len(c.components) == 0 {
		return "{0}"
	}
	parts := make([]string, len(c.components))
	for i, p := range c.components {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
