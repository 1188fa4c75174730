package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `json:"id"          redis:"id"`
	Name        string          `json:"name"        redis:"name"`
	Price       decimal.Decimal `json:"price"       redis:"price"`
	Category    string          `json:"category"    redis:"category"`
	Sizes       []string        `json:"sizes"       redis:"sizes"`
	Stock       int32           `json:"stock"       redis:"stock"`
	Description string          `json:"description" redis:"description"`
	Images      []string        `json:"images"      redis:"images"`
	Featured    string          `json:"featured"    redis:"featured"`
	CreatedAt   time.Time       `json:"created_at"  redis:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"  redis:"updated_at"`
}

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
