package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uuid.UUID       `json:"id"`
	Customer  string          `json:"customer"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	Items     int32           `json:"items"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
