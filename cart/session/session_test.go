package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func hoodie(qty int32) LineItem {
	return LineItem{
		ID:       "p1",
		Name:     "Hoodie",
		Price:    decimal.NewFromInt(1000),
		Size:     "M",
		Quantity: qty,
	}
}

func TestAddMergesIdenticalTriple(t *testing.T) {
	tests := []struct {
		name             string
		adds             []int32
		expectedLen      int
		expectedQuantity int32
	}{
		{
			name:             "given two adds of the same item should hold one merged line item",
			adds:             []int32{1, 2},
			expectedLen:      1,
			expectedQuantity: 3,
		},
		{
			name:             "given many adds of the same item should sum all quantities",
			adds:             []int32{1, 1, 1, 5},
			expectedLen:      1,
			expectedQuantity: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for _, qty := range tt.adds {
				s.Add(hoodie(0), qty)
			}
			assert.Equal(t, tt.expectedLen, s.Len())
			assert.Equal(t, tt.expectedQuantity, s.Items()[0].Quantity)
		})
	}
}

func TestAddKeepsDistinctTriplesInInsertionOrder(t *testing.T) {
	s := New()
	s.Add(LineItem{ID: "p1", Name: "Hoodie", Size: "M", Price: decimal.NewFromInt(1000)}, 1)
	s.Add(LineItem{ID: "p1", Name: "Hoodie", Size: "L", Price: decimal.NewFromInt(1000)}, 1)
	s.Add(LineItem{ID: "p2", Name: "Sweat Shirt", Size: "M", Price: decimal.NewFromInt(700)}, 1)

	items := s.Items()
	assert.Len(t, items, 3)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, "L", items[1].Size)
	assert.Equal(t, "Sweat Shirt", items[2].Name)
}

func TestAddDifferentSizeDoesNotMerge(t *testing.T) {
	s := New()
	s.Add(LineItem{ID: "p1", Name: "Hoodie", Size: "M"}, 1)
	s.Add(LineItem{ID: "p1", Name: "Hoodie", Size: "L"}, 2)
	assert.Equal(t, 2, s.Len())
}

func TestSetQuantityClampsAndFloors(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		expected int32
	}{
		{name: "zero clamps to one", quantity: 0, expected: 1},
		{name: "negative clamps to one", quantity: -3, expected: 1},
		{name: "fractional floors", quantity: 2.7, expected: 2},
		{name: "exact integer kept", quantity: 4, expected: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Add(hoodie(0), 1)
			s.SetQuantity(0, tt.quantity)
			assert.Equal(t, tt.expected, s.Items()[0].Quantity)
		})
	}
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	s := New()
	s.Add(hoodie(0), 1)

	s.Remove(-1)
	s.Remove(1)
	s.Remove(99)
	assert.Equal(t, 1, s.Len())

	s.Remove(0)
	assert.Equal(t, 0, s.Len())
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New()
	s.Add(LineItem{ID: "p1", Name: "Hoodie", Size: "M", Price: decimal.NewFromInt(1000)}, 2)
	s.Add(LineItem{ID: "p2", Name: "Cap", Price: decimal.NewFromInt(300)}, 1)
	s.SetQuantity(1, 5)

	snapshot, err := s.Snapshot()
	assert.NoError(t, err)

	restored := Restore(snapshot)
	assert.Equal(t, s.Items(), restored.Items())
	assert.True(t, s.TotalPrice().Equal(restored.TotalPrice()))
}

func TestRestoreFailSoft(t *testing.T) {
	tests := []struct {
		name     string
		snapshot []byte
	}{
		{name: "nil snapshot", snapshot: nil},
		{name: "empty snapshot", snapshot: []byte{}},
		{name: "malformed json", snapshot: []byte("{not json")},
		{name: "wrong shape", snapshot: []byte(`{"items":1}`)},
		{name: "json null", snapshot: []byte("null")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Restore(tt.snapshot)
			assert.Equal(t, 0, s.Len())
			assert.Equal(t, []LineItem{}, s.Items())
		})
	}
}

func TestTotals(t *testing.T) {
	s := New()
	s.Add(hoodie(0), 1)
	s.Add(hoodie(0), 2)
	assert.Equal(t, int32(3), s.TotalQuantity())
	assert.True(t, decimal.NewFromInt(3000).Equal(s.TotalPrice()))

	s.Add(LineItem{ID: "p2", Name: "Cap", Price: decimal.NewFromFloat(249.50)}, 2)
	assert.Equal(t, int32(5), s.TotalQuantity())
	assert.True(t, decimal.NewFromInt(3499).Equal(s.TotalPrice()))
}

func TestEmptySessionTotals(t *testing.T) {
	s := New()
	assert.Equal(t, int32(0), s.TotalQuantity())
	assert.True(t, decimal.Zero.Equal(s.TotalPrice()))
}
