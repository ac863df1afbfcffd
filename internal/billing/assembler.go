package billing

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/billing/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

type billingItemResource struct {
	ID          shared.ID    `json:"id"`
	Description string       `json:"description"`
	UnitPrice   shared.Money `json:"unitPrice"`
	InvoiceID   shared.ID    `json:"invoiceId"`
}

type invoiceResource struct {
	ID         shared.ID         `json:"id"`
	Payer      shared.ID         `json:"payer"`
	Status     string            `json:"status"`
	IssuedDate string            `json:"issuedDate"`
	DueDate    string            `json:"dueDate"`
	Items      []json.RawMessage `json:"items"`
}

// Assembler builds billing entities from raw responses.
type Assembler struct {
	log *logging.Logger
}

func NewAssembler(log *logging.Logger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{log: log}
}

func (a *Assembler) ToBillingItem(raw json.RawMessage) (*domain.BillingItem, error) {
	var res billingItemResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewBillingItem(domain.BillingItemConfig{
		ID:          res.ID,
		Description: res.Description,
		UnitPrice:   res.UnitPrice,
		InvoiceID:   res.InvoiceID,
	})
}

func (a *Assembler) ToInvoice(raw json.RawMessage) (*domain.Invoice, error) {
	var res invoiceResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	items := make([]*domain.BillingItem, 0, len(res.Items))
	for _, rawItem := range res.Items {
		item, err := a.ToBillingItem(rawItem)
		if err != nil {
			a.log.Warnw("dropping malformed billing item", "error", err)
			continue
		}
		items = append(items, item)
	}
	issued := shared.ParseWireTime(res.IssuedDate)
	if issued.IsZero() {
		issued = time.Now()
	}
	return domain.NewInvoice(domain.InvoiceConfig{
		ID:         res.ID,
		Payer:      res.Payer,
		Status:     domain.ParseInvoiceStatus(res.Status),
		IssuedDate: issued,
		DueDate:    shared.ParseWireTime(res.DueDate),
		Items:      items,
	})
}

func (a *Assembler) ToInvoices(raw json.RawMessage) []*domain.Invoice {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Invoice, 0, len(items))
	for _, item := range items {
		inv, err := a.ToInvoice(item)
		if err != nil {
			a.log.Warnw("dropping malformed invoice", "error", err)
			continue
		}
		out = append(out, inv)
	}
	return out
}
