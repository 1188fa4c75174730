package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderConfirmation(t *testing.T) {
	t.Parallel()

	data := OrderEmail{
		OrderID:  "7b5f9d2e",
		Customer: "Ayesha Khan",
		Email:    "ayesha@example.com",
		Phone:    "0300-1234567",
		Address:  "House 12, Street 4",
		City:     "Lahore",
		Zip:      "54000",
		Date:     "2025-03-14",
		Total:    "3000",
		Items: []OrderEmailItem{
			{Name: "Oversized Tee", Size: "M", Quantity: 3, Subtotal: "3000"},
		},
	}

	body, err := RenderOrderConfirmation(data)
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Ayesha Khan,")
	assert.Contains(t, body, "Order ID: 7b5f9d2e")
	assert.Contains(t, body, "- Oversized Tee [M] (x3) - PKR 3000")
	assert.Contains(t, body, "Total: PKR 3000")
	assert.Contains(t, body, "House 12, Street 4, Lahore 54000")
	assert.Contains(t, body, "Phone: 0300-1234567")
}

func TestRenderOrderConfirmationOmitsEmptySize(t *testing.T) {
	t.Parallel()

	body, err := RenderOrderConfirmation(OrderEmail{
		Customer: "Bilal",
		Items:    []OrderEmailItem{{Name: "Cap", Quantity: 1, Subtotal: "500"}},
		Total:    "500",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "- Cap (x1) - PKR 500")
	assert.NotContains(t, body, "[]")
}

func TestRenderOwnerCopy(t *testing.T) {
	t.Parallel()

	body, err := RenderOwnerCopy(OrderEmail{
		OrderID:  "7b5f9d2e",
		Customer: "Ayesha Khan",
		Email:    "ayesha@example.com",
		Phone:    "0300-1234567",
		Address:  "House 12, Street 4",
		City:     "Lahore",
		Total:    "3000",
		Items: []OrderEmailItem{
			{Name: "Oversized Tee", Size: "M", Quantity: 3, Subtotal: "3000"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, body, "New order received.")
	assert.Contains(t, body, "Customer: Ayesha Khan (ayesha@example.com)")
	assert.Contains(t, body, "- Oversized Tee [M] (x3) - PKR 3000")
}

func TestSubjectOwnerCopy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "New FITIN Store Order 7b5f9d2e", SubjectOwnerCopy("7b5f9d2e"))
}

func TestRenderContact(t *testing.T) {
	t.Parallel()

	body, err := RenderContact(ContactEmail{
		Name:    "Hamza",
		Email:   "hamza@example.com",
		Message: "Do you restock the denim jacket?",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Name: Hamza")
	assert.Contains(t, body, "Email: hamza@example.com")
	assert.Contains(t, body, "Do you restock the denim jacket?")
}
