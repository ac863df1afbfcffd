package domain

import (
	"testing"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(t *testing.T, description string, amount float64, currency string) *BillingItem {
	t.Helper()
	price, err := shared.MoneyFromFloat(amount, currency)
	require.NoError(t, err)
	it, err := NewBillingItem(BillingItemConfig{Description: description, UnitPrice: price})
	require.NoError(t, err)
	return it
}

func TestBillingItemRequiresDescription(t *testing.T) {
	price, err := shared.MoneyFromFloat(100, "PEN")
	require.NoError(t, err)
	_, err = NewBillingItem(BillingItemConfig{UnitPrice: price})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestBillingItemSubtotalDerivesFromUnitPrice(t *testing.T) {
	it := item(t, "Structural drawings", 100, "PEN")
	assert.True(t, it.Subtotal().Amount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "PEN", it.Subtotal().Currency())
}

func TestInvoiceTotalSumsItems(t *testing.T) {
	inv, err := NewInvoice(InvoiceConfig{
		Payer: shared.NewID(1),
		Items: []*BillingItem{
			item(t, "Structural drawings", 100, "PEN"),
			item(t, "Site survey", 100, "PEN"),
		},
	})
	require.NoError(t, err)
	assert.True(t, inv.TotalAmount().Amount().Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "PEN", inv.TotalAmount().Currency())
}

func TestEmptyInvoiceTotalsZero(t *testing.T) {
	inv, err := NewInvoice(InvoiceConfig{Payer: shared.NewID(1)})
	require.NoError(t, err)
	assert.True(t, inv.TotalAmount().IsZero())
}

func TestAddItemRejectsCurrencyMismatch(t *testing.T) {
	inv, err := NewInvoice(InvoiceConfig{
		Payer: shared.NewID(1),
		Items: []*BillingItem{item(t, "Structural drawings", 100, "PEN")},
	})
	require.NoError(t, err)

	assert.Error(t, inv.AddItem(item(t, "Imported fixtures", 50, "USD")))
	assert.Len(t, inv.Items(), 1)
}

func TestAddItemRejectsDuplicates(t *testing.T) {
	it := item(t, "Structural drawings", 100, "PEN")
	inv, err := NewInvoice(InvoiceConfig{Payer: shared.NewID(1)})
	require.NoError(t, err)

	require.NoError(t, inv.AddItem(it))
	assert.Error(t, inv.AddItem(it))
}

func TestRemoveItem(t *testing.T) {
	it := item(t, "Structural drawings", 100, "PEN")
	inv, err := NewInvoice(InvoiceConfig{Payer: shared.NewID(1), Items: []*BillingItem{it}})
	require.NoError(t, err)

	require.NoError(t, inv.RemoveItem(it))
	assert.Empty(t, inv.Items())
	assert.Error(t, inv.RemoveItem(it))
}

func TestMarkAsPaidOnlyOnce(t *testing.T) {
	inv, err := NewInvoice(InvoiceConfig{Payer: shared.NewID(1)})
	require.NoError(t, err)

	require.NoError(t, inv.MarkAsPaid())
	assert.Equal(t, InvoicePaid, inv.Status())
	assert.Error(t, inv.MarkAsPaid())
}

func TestIsOverdue(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	inv, err := NewInvoice(InvoiceConfig{Payer: shared.NewID(1), DueDate: due})
	require.NoError(t, err)

	assert.False(t, inv.IsOverdue(due.AddDate(0, 0, -1)))
	assert.True(t, inv.IsOverdue(due.AddDate(0, 0, 1)))

	require.NoError(t, inv.MarkAsPaid())
	assert.False(t, inv.IsOverdue(due.AddDate(0, 0, 1)))
}
