package repository

import (
	"github.com/shopspring/decimal"

	catalogResponse "github.com/fitin/storefront/catalog/pkg/response"
	orderResponse "github.com/fitin/storefront/order/pkg/response"
	userResponse "github.com/fitin/storefront/user/pkg/response"
)

func (p Product) Response() catalogResponse.Product {
	return catalogResponse.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       decimal.NewFromBigInt(p.Price.Int, p.Price.Exp),
		Category:    p.Category,
		Sizes:       p.Sizes,
		Stock:       p.Stock,
		Description: p.Description.String,
		Images:      p.Images,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (c Category) Response() catalogResponse.Category {
	return catalogResponse.Category{ID: c.ID, Name: c.Name}
}

func (o Order) Response() orderResponse.Order {
	return orderResponse.Order{
		ID:        o.ID,
		Customer:  o.Customer,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		Total:     decimal.NewFromBigInt(o.Total.Int, o.Total.Exp),
		Status:    string(o.Status),
		Items:     o.Items,
		Date:      o.Date.Time.Format("2006-01-02"),
		CreatedAt: o.CreatedAt.Time,
		UpdatedAt: o.UpdatedAt.Time,
	}
}

func (u User) Response() userResponse.User {
	return userResponse.User{
		ID:        u.ID,
		Name:      u.Name.String,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Time,
	}
}
