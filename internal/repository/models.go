package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type Product struct {
	ID          uuid.UUID
	Name        string
	Price       pgtype.Numeric
	Category    string
	Sizes       []string
	Stock       int32
	Description pgtype.Text
	Images      []string
	Featured    string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt pgtype.Timestamptz
}

type Order struct {
	ID        uuid.UUID
	Customer  string
	Email     string
	Phone     string
	Address   string
	Total     pgtype.Numeric
	Status    OrderStatus
	Items     int32
	Date      pgtype.Date
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type User struct {
	ID        uuid.UUID
	Name      pgtype.Text
	Email     string
	Password  string
	Role      string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
