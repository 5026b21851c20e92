package domain

import "math"

// Line is one (item, quantity) pairing in a session's in-progress order. The
// item name and unit price are captured when the line is created so the cart
// stays renderable even if the catalog changes mid-session.
type Line struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the client-local selections for one browsing session. At most one
// line exists per item id; a quantity reaching zero removes the line. Cart is
// not safe for concurrent use; the session store serializes access.
type Cart struct {
	lines []Line
}

// Add inserts a line with quantity 1, or increments the existing line for the
// same item. Never errors.
func (c *Cart) Add(itemID, name string, unitPrice float64) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{ItemID: itemID, Name: name, UnitPrice: unitPrice, Quantity: 1})
}

// UpdateQuantity sets the line's quantity, removing the line when the new
// quantity drops to zero or below. Absent item ids are a no-op.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for the item if present; no-op otherwise.
func (c *Cart) Remove(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total recomputes the sum of unit price times quantity over all lines,
// rounded to two decimal places for display.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return math.Round(total*100) / 100
}

// ItemCount recomputes the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}
