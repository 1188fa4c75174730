package request

import "github.com/shopspring/decimal"

type CheckoutItem struct {
	Name     string          `json:"name"     validate:"required"`
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
	Quantity int32           `json:"quantity" validate:"required,min=1"`
}

type CreateCheckoutOrder struct {
	Customer string         `json:"customer" validate:"required"`
	Email    string         `json:"email"    validate:"required,email"`
	Phone    string         `json:"phone"    validate:"required"`
	Address  string         `json:"address"  validate:"required"`
	City     string         `json:"city"     validate:"required"`
	Zip      string         `json:"zip"      validate:"required"`
	Items    []CheckoutItem `json:"items"    validate:"required,min=1,dive"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required"`
}
