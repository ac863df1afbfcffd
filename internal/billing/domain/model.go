package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePaid    InvoiceStatus = "PAID"
)

// ParseInvoiceStatus falls back to PENDING on unknown wire values.
func ParseInvoiceStatus(raw string) InvoiceStatus {
	switch InvoiceStatus(raw) {
	case InvoicePending, InvoicePaid:
		return InvoiceStatus(raw)
	default:
		return InvoicePending
	}
}

// BillingItem is one line of an invoice. Its subtotal derives from the
// unit price and is never set independently.
type BillingItem struct {
	id          shared.ID
	ref         shared.Ref
	description string
	unitPrice   shared.Money
	invoiceID   shared.ID
}

// BillingItemConfig carries the named, defaulted construction fields.
type BillingItemConfig struct {
	ID          shared.ID
	Description string
	UnitPrice   shared.Money
	InvoiceID   shared.ID
}

// NewBillingItem validates and builds a line item.
func NewBillingItem(cfg BillingItemConfig) (*BillingItem, error) {
	if cfg.Description == "" {
		return nil, shared.NewValidationError("description", "description is required and must be a non-empty string")
	}
	return &BillingItem{
		id:          cfg.ID,
		ref:         shared.NewRef(),
		description: cfg.Description,
		unitPrice:   cfg.UnitPrice,
		invoiceID:   cfg.InvoiceID,
	}, nil
}

func (b *BillingItem) ID() shared.ID           { return b.id }
func (b *BillingItem) Ref() shared.Ref         { return b.ref }
func (b *BillingItem) Description() string     { return b.description }
func (b *BillingItem) UnitPrice() shared.Money { return b.unitPrice }
func (b *BillingItem) InvoiceID() shared.ID    { return b.invoiceID }

// Subtotal is derived from the unit price.
func (b *BillingItem) Subtotal() shared.Money {
	return b.unitPrice
}

func (b *BillingItem) sameIdentity(other *BillingItem) bool {
	if b.id.Equals(other.id) {
		return true
	}
	return b.ref == other.ref
}

type billingItemJSON struct {
	ID          shared.ID    `json:"id"`
	Description string       `json:"description"`
	UnitPrice   shared.Money `json:"unitPrice"`
	Subtotal    shared.Money `json:"subtotal"`
	InvoiceID   shared.ID    `json:"invoiceId"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (b *BillingItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(billingItemJSON{
		ID:          b.id,
		Description: b.description,
		UnitPrice:   b.unitPrice,
		Subtotal:    b.Subtotal(),
		InvoiceID:   b.invoiceID,
	})
}

// Invoice owns its billing items. The total amount is always the sum of
// the item subtotals and is recomputed on every mutation, never stored
// independently of its inputs.
type Invoice struct {
	id         shared.ID
	payer      shared.ID
	status     InvoiceStatus
	issuedDate time.Time
	dueDate    time.Time
	items      []*BillingItem
}

// InvoiceConfig carries the named, defaulted construction fields.
type InvoiceConfig struct {
	ID         shared.ID
	Payer      shared.ID
	Status     InvoiceStatus
	IssuedDate time.Time
	DueDate    time.Time
	Items      []*BillingItem
}

// NewInvoice validates and builds an invoice.
func NewInvoice(cfg InvoiceConfig) (*Invoice, error) {
	if cfg.Status == "" {
		cfg.Status = InvoicePending
	}
	switch cfg.Status {
	case InvoicePending, InvoicePaid:
	default:
		return nil, shared.NewValidationError("status", "unknown invoice status "+string(cfg.Status))
	}
	if cfg.IssuedDate.IsZero() {
		cfg.IssuedDate = time.Now()
	}
	if cfg.DueDate.IsZero() {
		cfg.DueDate = cfg.IssuedDate
	}
	inv := &Invoice{
		id:         cfg.ID,
		payer:      cfg.Payer,
		status:     cfg.Status,
		issuedDate: cfg.IssuedDate,
		dueDate:    cfg.DueDate,
	}
	for _, item := range cfg.Items {
		if err := inv.AddItem(item); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func (i *Invoice) ID() shared.ID          { return i.id }
func (i *Invoice) Payer() shared.ID       { return i.payer }
func (i *Invoice) Status() InvoiceStatus  { return i.status }
func (i *Invoice) IssuedDate() time.Time  { return i.issuedDate }
func (i *Invoice) DueDate() time.Time     { return i.dueDate }
func (i *Invoice) Items() []*BillingItem  { return i.items }

// TotalAmount sums the item subtotals. An empty invoice totals zero in
// the default currency.
func (i *Invoice) TotalAmount() shared.Money {
	if len(i.items) == 0 {
		return shared.Money{}
	}
	total := i.items[0].Subtotal()
	for _, item := range i.items[1:] {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			// Mixed-currency items are rejected in AddItem; reaching
			// this means the aggregate was corrupted externally.
			return total
		}
		total = sum
	}
	return total
}

// AddItem attaches a line item to the invoice, rejecting duplicates by
// identity and currency mismatches against the existing items.
func (i *Invoice) AddItem(item *BillingItem) error {
	if item == nil {
		return shared.NewValidationError("item", "billing item is required")
	}
	for _, existing := range i.items {
		if existing.sameIdentity(item) {
			return shared.NewValidationError("item", "billing item already belongs to the invoice")
		}
	}
	if len(i.items) > 0 && i.items[0].Subtotal().Currency() != item.Subtotal().Currency() {
		return shared.NewValidationError("item", "billing item currency does not match the invoice")
	}
	item.invoiceID = i.id
	i.items = append(i.items, item)
	return nil
}

// RemoveItem drops a line item by identity; the total follows.
func (i *Invoice) RemoveItem(item *BillingItem) error {
	if item == nil {
		return shared.NewValidationError("item", "billing item is required")
	}
	for idx, existing := range i.items {
		if existing.sameIdentity(item) {
			i.items = append(i.items[:idx], i.items[idx+1:]...)
			return nil
		}
	}
	return shared.NewValidationError("item", "billing item not found on the invoice")
}

// MarkAsPaid settles the invoice.
func (i *Invoice) MarkAsPaid() error {
	if i.status == InvoicePaid {
		return shared.NewValidationError("status", "invoice is already paid")
	}
	i.status = InvoicePaid
	return nil
}

// IsOverdue reports whether an unpaid invoice is past its due date.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.status != InvoicePaid && i.dueDate.Before(now)
}

type invoiceJSON struct {
	ID          shared.ID      `json:"id"`
	Payer       shared.ID      `json:"payer"`
	Status      InvoiceStatus  `json:"status"`
	IssuedDate  time.Time      `json:"issuedDate"`
	DueDate     time.Time      `json:"dueDate"`
	TotalAmount shared.Money   `json:"totalAmount"`
	Items       []*BillingItem `json:"items"`
}

// MarshalJSON emits the flat, backend-shaped record with items as an
// array of their own canonical forms.
func (i *Invoice) MarshalJSON() ([]byte, error) {
	items := i.items
	if items == nil {
		items = []*BillingItem{}
	}
	return json.Marshal(invoiceJSON{
		ID:          i.id,
		Payer:       i.payer,
		Status:      i.status,
		IssuedDate:  i.issuedDate,
		DueDate:     i.dueDate,
		TotalAmount: i.TotalAmount(),
		Items:       items,
	})
}
