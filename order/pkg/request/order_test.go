package request

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCheckout() CreateCheckoutOrder {
	return CreateCheckoutOrder{
		Customer: "Ayesha Khan",
		Email:    "ayesha@example.com",
		Phone:    "0300-1234567",
		Address:  "House 12, Street 4",
		City:     "Lahore",
		Zip:      "54000",
		Items: []CheckoutItem{
			{Name: "Oversized Tee", Size: "M", Price: decimal.NewFromInt(1000), Quantity: 3},
		},
	}
}

func TestCreateCheckoutOrderValidation(t *testing.T) {
	t.Parallel()

	validate := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name    string
		mutate  func(*CreateCheckoutOrder)
		wantErr bool
	}{
		{name: "valid", mutate: func(*CreateCheckoutOrder) {}, wantErr: false},
		{
			name:    "missing customer",
			mutate:  func(o *CreateCheckoutOrder) { o.Customer = "" },
			wantErr: true,
		},
		{
			name:    "malformed email",
			mutate:  func(o *CreateCheckoutOrder) { o.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "no items",
			mutate:  func(o *CreateCheckoutOrder) { o.Items = nil },
			wantErr: true,
		},
		{
			name:    "zero quantity item",
			mutate:  func(o *CreateCheckoutOrder) { o.Items[0].Quantity = 0 },
			wantErr: true,
		},
		{
			name:    "item without name",
			mutate:  func(o *CreateCheckoutOrder) { o.Items[0].Name = "" },
			wantErr: true,
		},
		{
			name:    "size optional",
			mutate:  func(o *CreateCheckoutOrder) { o.Items[0].Size = "" },
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checkout := validCheckout()
			tt.mutate(&checkout)

			err := validate.Struct(checkout)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
