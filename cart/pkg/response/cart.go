package response

import (
	"github.com/shopspring/decimal"

	"github.com/fitin/storefront/cart/session"
)

type Cart struct {
	SessionID  string             `json:"sessionId"`
	Items      []session.LineItem `json:"items"`
	TotalItems int32              `json:"totalItems"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

type Checkout struct {
	OrderID string `json:"orderId"`
	Cart    Cart   `json:"cart"`
}
