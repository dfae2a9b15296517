package cart

import (
	"github.com/example/gameshop-client/internal/catalog"
)

// Line is one row in the shopping cart, keyed by product identity. The
// display fields are a snapshot taken when the product was first added;
// later catalog edits do not rewrite lines already in the cart.
type Line struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Genre     string  `json:"genre"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the shopping cart for one session, in memory only. At most
// one line exists per product id; lines keep insertion order.
type Cart struct {
	lines []Line
	index map[string]int // productID -> position in lines
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add puts the product in the cart. If a line for this product already
// exists its quantity is incremented, otherwise a new line is inserted
// with quantity 1. There is no upper bound on quantity.
func (c *Cart) Add(p catalog.Product) {
	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity++
		return
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Title:     p.Title,
		Genre:     p.Genre,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line instead of storing it.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		c.removeAt(i)
		return
	}
	c.lines[i].Quantity = quantity
}

// Remove deletes the line unconditionally. No-op if absent.
func (c *Cart) Remove(productID string) {
	if i, ok := c.index[productID]; ok {
		c.removeAt(i)
	}
}

// Clear empties all lines. Called after a successful order submission.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

// Total is the sum of price*quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines, not the distinct line
// count. Used for the cart badge.
func (c *Cart) Count() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) removeAt(i int) {
	delete(c.index, c.lines[i].ProductID)
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
}
