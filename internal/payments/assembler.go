package payments

import (
	"encoding/json"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/payments/domain"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

type paymentResource struct {
	ID          shared.ID    `json:"id"`
	Amount      shared.Money `json:"amount"`
	Status      string       `json:"status"`
	Method      string       `json:"paymentMethod"`
	PaidAt      string       `json:"paidAt"`
	InvoiceID   shared.ID    `json:"invoiceId"`
	AgreementID shared.ID    `json:"agreementId"`
}

type transactionResource struct {
	ID              shared.ID `json:"id"`
	PaymentID       shared.ID `json:"paymentId"`
	AttemptAt       string    `json:"attemptAt"`
	Status          string    `json:"status"`
	GatewayResponse string    `json:"gatewayResponse"`
}

type agreementResource struct {
	ID              shared.ID `json:"id"`
	Active          *bool     `json:"active"`
	Method          string    `json:"paymentMethod"`
	StartDate       string    `json:"startDate"`
	NextPaymentDate string    `json:"nextPaymentDate"`
	PersonID        shared.ID `json:"personId"`
}

// Assembler builds payment entities from raw responses.
type Assembler struct {
	log *logging.Logger
}

func NewAssembler(log *logging.Logger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{log: log}
}

func (a *Assembler) ToPayment(raw json.RawMessage) (*domain.Payment, error) {
	var res paymentResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	cfg := domain.PaymentConfig{
		ID:          res.ID,
		Amount:      res.Amount,
		Status:      domain.ParsePaymentStatus(res.Status),
		Method:      domain.ParsePaymentMethod(res.Method),
		InvoiceID:   res.InvoiceID,
		AgreementID: res.AgreementID,
	}
	if t := shared.ParseWireTime(res.PaidAt); !t.IsZero() {
		cfg.PaidAt = &t
	}
	return domain.NewPayment(cfg)
}

func (a *Assembler) ToPayments(raw json.RawMessage) []*domain.Payment {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Payment, 0, len(items))
	for _, item := range items {
		p, err := a.ToPayment(item)
		if err != nil {
			a.log.Warnw("dropping malformed payment", "error", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

func (a *Assembler) ToTransaction(raw json.RawMessage) (*domain.Transaction, error) {
	var res transactionResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return domain.NewTransaction(domain.TransactionConfig{
		ID:              res.ID,
		PaymentID:       res.PaymentID,
		AttemptAt:       shared.ParseWireTime(res.AttemptAt),
		Status:          domain.ParseTransactionStatus(res.Status),
		GatewayResponse: res.GatewayResponse,
	})
}

func (a *Assembler) ToTransactions(raw json.RawMessage) []*domain.Transaction {
	items := shared.SplitBatch(raw)
	out := make([]*domain.Transaction, 0, len(items))
	for _, item := range items {
		t, err := a.ToTransaction(item)
		if err != nil {
			a.log.Warnw("dropping malformed transaction", "error", err)
			continue
		}
		out = append(out, t)
	}
	return out
}

func (a *Assembler) ToAgreement(raw json.RawMessage) (*domain.RecurringPaymentAgreement, error) {
	var res agreementResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	active := true
	if res.Active != nil {
		active = *res.Active
	}
	cfg := domain.AgreementConfig{
		ID:        res.ID,
		Active:    active,
		Method:    domain.ParsePaymentMethod(res.Method),
		StartDate: shared.ParseWireTime(res.StartDate),
		PersonID:  res.PersonID,
	}
	if t := shared.ParseWireTime(res.NextPaymentDate); !t.IsZero() {
		cfg.NextPaymentDate = &t
	}
	return domain.NewRecurringPaymentAgreement(cfg)
}

func (a *Assembler) ToAgreements(raw json.RawMessage) []*domain.RecurringPaymentAgreement {
	items := shared.SplitBatch(raw)
	out := make([]*domain.RecurringPaymentAgreement, 0, len(items))
	for _, item := range items {
		agr, err := a.ToAgreement(item)
		if err != nil {
			a.log.Warnw("dropping malformed agreement", "error", err)
			continue
		}
		out = append(out, agr)
	}
	return out
}
