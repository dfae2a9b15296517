package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/gameshop-client/internal/catalog"
)

func testProduct(id, title string, price float64) catalog.Product {
	return catalog.Product{
		ID:    id,
		Title: title,
		Genre: "RPG",
		Price: price,
		Image: "https://example.com/" + id + ".jpg",
	}
}

// ============================================
// Add Tests
// ============================================

func TestCart_Add_NewLine(t *testing.T) {
	c := New()

	c.Add(testProduct("prod-1", "Legend Quest", 19.99))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "prod-1", lines[0].ProductID)
	assert.Equal(t, "Legend Quest", lines[0].Title)
	assert.Equal(t, "RPG", lines[0].Genre)
	assert.Equal(t, 19.99, lines[0].Price)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCart_Add_SameProductIncrementsQuantity(t *testing.T) {
	c := New()
	p := testProduct("prod-1", "Legend Quest", 19.99)

	for i := 0; i < 5; i++ {
		c.Add(p)
	}

	lines := c.Lines()
	require.Len(t, lines, 1, "repeated adds must not duplicate the line")
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCart_Add_SnapshotKeepsInsertionFields(t *testing.T) {
	c := New()
	p := testProduct("prod-1", "Legend Quest", 19.99)
	c.Add(p)

	// A later catalog edit does not rewrite the line already in the cart.
	p.Price = 99.99
	p.Title = "Renamed"
	c.Add(p)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Legend Quest", lines[0].Title)
	assert.Equal(t, 19.99, lines[0].Price)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "First", 10))
	c.Add(testProduct("prod-2", "Second", 20))
	c.Add(testProduct("prod-3", "Third", 30))
	c.Add(testProduct("prod-1", "First", 10))

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "prod-1", lines[0].ProductID)
	assert.Equal(t, "prod-2", lines[1].ProductID)
	assert.Equal(t, "prod-3", lines[2].ProductID)
}

// ============================================
// UpdateQuantity Tests
// ============================================

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantLines    int
		wantQuantity int
	}{
		{"set higher", 7, 1, 7},
		{"set to one", 1, 1, 1},
		{"zero removes the line", 0, 0, 0},
		{"negative removes the line", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Add(testProduct("prod-1", "Legend Quest", 19.99))

			c.UpdateQuantity("prod-1", tt.quantity)

			lines := c.Lines()
			require.Len(t, lines, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQuantity, lines[0].Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "Legend Quest", 19.99))

	c.UpdateQuantity("prod-missing", 3)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

// ============================================
// Remove / Clear Tests
// ============================================

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "First", 10))
	c.Add(testProduct("prod-2", "Second", 20))

	c.Remove("prod-1")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "prod-2", lines[0].ProductID)

	// Removing again is a no-op.
	c.Remove("prod-1")
	assert.Len(t, c.Lines(), 1)
}

func TestCart_Remove_ReindexesRemainingLines(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "First", 10))
	c.Add(testProduct("prod-2", "Second", 20))
	c.Add(testProduct("prod-3", "Third", 30))

	c.Remove("prod-1")
	c.UpdateQuantity("prod-3", 4)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "prod-2", lines[0].ProductID)
	assert.Equal(t, "prod-3", lines[1].ProductID)
	assert.Equal(t, 4, lines[1].Quantity)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "First", 10))
	c.Add(testProduct("prod-2", "Second", 20))

	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0.0, c.Total())

	// The cart stays usable after a clear.
	c.Add(testProduct("prod-3", "Third", 30))
	assert.Len(t, c.Lines(), 1)
}

// ============================================
// Total / Count Tests
// ============================================

func TestCart_Total(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "First", 19.99))
	c.Add(testProduct("prod-1", "First", 19.99))
	c.Add(testProduct("prod-2", "Second", 9.99))

	assert.InDelta(t, 49.97, c.Total(), 0.0001)
}

func TestCart_Count_SumsQuantitiesNotLines(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "First", 10))
	c.Add(testProduct("prod-1", "First", 10))
	c.Add(testProduct("prod-2", "Second", 20))

	assert.Equal(t, 3, c.Count())
}

func TestCart_Lines_ReturnsCopy(t *testing.T) {
	c := New()
	c.Add(testProduct("prod-1", "First", 10))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
