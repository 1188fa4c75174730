package request

import "github.com/google/uuid"

type AddItem struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Size      string    `json:"size"      validate:"required"`
	Quantity  int32     `json:"quantity"  validate:"omitempty,min=1"`
}

type UpdateQuantity struct {
	Quantity float64 `json:"quantity" validate:"required"`
}

type Checkout struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city"    validate:"required"`
	Zip     string `json:"zip"     validate:"required"`
}
