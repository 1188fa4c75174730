// Package session holds the client shopping session: an ordered list of
// line items with merge-on-add semantics and a durable JSON snapshot.
package session

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// SlotKey is the versioned key prefix of the durable snapshot slot.
const SlotKey = "cart:v1"

type LineItem struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Size     string          `json:"size,omitempty"`
	Quantity int32           `json:"quantity"`
}

// Session is an insertion-ordered sequence of line items. No two items
// share the same (ID, Size, Name) triple; adds matching an existing
// triple merge into it.
type Session struct {
	items []LineItem
}

func New() *Session {
	return &Session{items: []LineItem{}}
}

// Restore rebuilds a session from a snapshot. A nil, empty or malformed
// snapshot yields an empty session; restore never fails.
func Restore(snapshot []byte) *Session {
	if len(snapshot) == 0 {
		return New()
	}
	items := []LineItem{}
	if err := json.Unmarshal(snapshot, &items); err != nil {
		return New()
	}
	if items == nil {
		items = []LineItem{}
	}
	return &Session{items: items}
}

// Add merges the candidate into an existing line item with the same
// (ID, Size, Name) triple, or appends it. Quantity is taken as given;
// validation is the caller's responsibility.
func (s *Session) Add(item LineItem, quantity int32) {
	for i, existing := range s.items {
		if existing.ID == item.ID && existing.Size == item.Size && existing.Name == item.Name {
			s.items[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	s.items = append(s.items, item)
}

// Remove deletes the line item at index. Out-of-range indexes are a no-op.
func (s *Session) Remove(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
}

// SetQuantity sets the quantity at index to max(1, floor(quantity)).
// Out-of-range indexes are a no-op.
func (s *Session) SetQuantity(index int, quantity float64) {
	if index < 0 || index >= len(s.items) {
		return
	}
	q := int32(math.Floor(quantity))
	if q < 1 {
		q = 1
	}
	s.items[index].Quantity = q
}

func (s *Session) Clear() {
	s.items = []LineItem{}
}

func (s *Session) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Session) Len() int {
	return len(s.items)
}

func (s *Session) TotalQuantity() int32 {
	var total int32
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *Session) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return total
}

func (s *Session) Snapshot() ([]byte, error) {
	return json.Marshal(s.items)
}
