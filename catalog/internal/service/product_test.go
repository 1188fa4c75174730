package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fitin/storefront/catalog/pkg/request"
)

func TestInsertProductRejectsNonPositivePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price decimal.Decimal
	}{
		{name: "zero price", price: decimal.Zero},
		{name: "negative price", price: decimal.NewFromInt(-100)},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			svc := ProductService{}
			_, err := svc.InsertProduct(context.Background(), request.Product{
				Name:     "Oversized Hoodie",
				Price:    test.price,
				Category: "Hoodies",
				Sizes:    []string{"M"},
			})
			assert.ErrorContains(t, err, "must be positive")
		})
	}
}

func TestUpdateProductRejectsNonPositivePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price decimal.Decimal
	}{
		{name: "zero price", price: decimal.Zero},
		{name: "negative price", price: decimal.NewFromInt(-1)},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			svc := ProductService{}
			_, err := svc.UpdateProduct(context.Background(), uuid.New(), request.UpdateProduct{
				Price: &test.price,
			})
			assert.ErrorContains(t, err, "must be positive")
		})
	}
}
