package cart

import (
	"sync"

	"github.com/avtomir/avtomir-backend/internal/catalog"
)

// Line is one cart entry: a listing plus the quantity requested.
type Line struct {
	Car      catalog.CarDTO `json:"car"`
	Quantity int            `json:"quantity"`
}

// Cart holds one session's selection. Lines keep insertion order and
// there is at most one line per car id; adding an existing car bumps
// its quantity instead.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add inserts the car with quantity 1, or increments the existing line.
func (c *Cart) Add(car catalog.CarDTO) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Car.ID == car.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Car: car, Quantity: 1})
}

// Remove drops the line for the car id. Unknown ids are a no-op.
func (c *Cart) Remove(carID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(carID)
}

// SetQuantity replaces the quantity for the car id. A quantity of zero
// or less removes the line. Unknown ids are a no-op.
func (c *Cart) SetQuantity(carID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(carID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Car.ID == carID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across all lines.
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, line := range c.lines {
		total += line.Car.Price * int64(line.Quantity)
	}
	return total
}

func (c *Cart) removeLocked(carID int64) {
	for i := range c.lines {
		if c.lines[i].Car.ID == carID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}
