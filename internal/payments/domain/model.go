package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// PaymentStatus is the settlement state of a payment. Only
// PENDING->CONFIRMED and PENDING->FAILED are legal.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// ParsePaymentStatus falls back to PENDING on unknown wire values.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentPending, PaymentConfirmed, PaymentFailed:
		return PaymentStatus(raw)
	default:
		return PaymentPending
	}
}

// PaymentMethod is the instrument a payment is made with.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodWallet       PaymentMethod = "WALLET"
)

// KnownPaymentMethod reports enum membership.
func KnownPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodWallet:
		return true
	}
	return false
}

// ParsePaymentMethod falls back to CREDIT_CARD on unknown wire values.
func ParsePaymentMethod(raw string) PaymentMethod {
	if KnownPaymentMethod(PaymentMethod(raw)) {
		return PaymentMethod(raw)
	}
	return MethodCreditCard
}

// Payment is one attempt to settle an invoice.
type Payment struct {
	id          shared.ID
	amount      shared.Money
	status      PaymentStatus
	method      PaymentMethod
	paidAt      *time.Time
	invoiceID   shared.ID
	agreementID shared.ID
}

// PaymentConfig carries the named, defaulted construction fields.
type PaymentConfig struct {
	ID          shared.ID
	Amount      shared.Money
	Status      PaymentStatus
	Method      PaymentMethod
	PaidAt      *time.Time
	InvoiceID   shared.ID
	AgreementID shared.ID
}

// NewPayment validates and builds a payment.
func NewPayment(cfg PaymentConfig) (*Payment, error) {
	if !cfg.Amount.IsPositive() {
		return nil, shared.NewValidationError("amount", "amount must be greater than zero")
	}
	if cfg.Status == "" {
		cfg.Status = PaymentPending
	}
	switch cfg.Status {
	case PaymentPending, PaymentConfirmed, PaymentFailed:
	default:
		return nil, shared.NewValidationError("status", "unknown payment status "+string(cfg.Status))
	}
	if !KnownPaymentMethod(cfg.Method) {
		return nil, shared.NewValidationError("paymentMethod", "unknown payment method "+string(cfg.Method))
	}
	return &Payment{
		id:          cfg.ID,
		amount:      cfg.Amount,
		status:      cfg.Status,
		method:      cfg.Method,
		paidAt:      cfg.PaidAt,
		invoiceID:   cfg.InvoiceID,
		agreementID: cfg.AgreementID,
	}, nil
}

func (p *Payment) ID() shared.ID          { return p.id }
func (p *Payment) Amount() shared.Money   { return p.amount }
func (p *Payment) Status() PaymentStatus  { return p.status }
func (p *Payment) Method() PaymentMethod  { return p.method }
func (p *Payment) PaidAt() *time.Time     { return p.paidAt }
func (p *Payment) InvoiceID() shared.ID   { return p.invoiceID }
func (p *Payment) AgreementID() shared.ID { return p.agreementID }

// IsPaid reports whether the payment settled.
func (p *Payment) IsPaid() bool { return p.status == PaymentConfirmed }

// MarkAsPaid confirms a pending payment and stamps paidAt.
func (p *Payment) MarkAsPaid(at time.Time) error {
	if p.status != PaymentPending {
		return shared.NewValidationError("status", "only pending payments can be confirmed")
	}
	p.status = PaymentConfirmed
	p.paidAt = &at
	return nil
}

// Cancel fails a pending payment.
func (p *Payment) Cancel() error {
	if p.status != PaymentPending {
		return shared.NewValidationError("status", "only pending payments can be cancelled")
	}
	p.status = PaymentFailed
	return nil
}

type paymentJSON struct {
	ID          shared.ID     `json:"id"`
	Amount      shared.Money  `json:"amount"`
	Status      PaymentStatus `json:"status"`
	Method      PaymentMethod `json:"paymentMethod"`
	PaidAt      *time.Time    `json:"paidAt"`
	InvoiceID   shared.ID     `json:"invoiceId"`
	AgreementID shared.ID     `json:"recurringAgreementId"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (p *Payment) MarshalJSON() ([]byte, error) {
	return json.Marshal(paymentJSON{
		ID:          p.id,
		Amount:      p.amount,
		Status:      p.status,
		Method:      p.method,
		PaidAt:      p.paidAt,
		InvoiceID:   p.invoiceID,
		AgreementID: p.agreementID,
	})
}

// TransactionStatus is the gateway-side state of one payment attempt.
type TransactionStatus string

const (
	TransactionInitiated TransactionStatus = "INITIATED"
	TransactionSuccess   TransactionStatus = "SUCCESS"
	TransactionFailed    TransactionStatus = "FAILED"
	TransactionPending   TransactionStatus = "PENDING"
)

// ParseTransactionStatus falls back to INITIATED on unknown wire values.
func ParseTransactionStatus(raw string) TransactionStatus {
	switch TransactionStatus(raw) {
	case TransactionInitiated, TransactionSuccess, TransactionFailed, TransactionPending:
		return TransactionStatus(raw)
	default:
		return TransactionInitiated
	}
}

// Transaction records one gateway round-trip for a payment.
type Transaction struct {
	id              shared.ID
	paymentID       shared.ID
	attemptAt       time.Time
	status          TransactionStatus
	gatewayResponse string
}

// TransactionConfig carries the named, defaulted construction fields.
type TransactionConfig struct {
	ID              shared.ID
	PaymentID       shared.ID
	AttemptAt       time.Time
	Status          TransactionStatus
	GatewayResponse string
}

// NewTransaction validates and builds a transaction.
func NewTransaction(cfg TransactionConfig) (*Transaction, error) {
	if cfg.Status == "" {
		cfg.Status = TransactionInitiated
	}
	switch cfg.Status {
	case TransactionInitiated, TransactionSuccess, TransactionFailed, TransactionPending:
	default:
		return nil, shared.NewValidationError("status", "unknown transaction status "+string(cfg.Status))
	}
	if cfg.AttemptAt.IsZero() {
		cfg.AttemptAt = time.Now()
	}
	return &Transaction{
		id:              cfg.ID,
		paymentID:       cfg.PaymentID,
		attemptAt:       cfg.AttemptAt,
		status:          cfg.Status,
		gatewayResponse: cfg.GatewayResponse,
	}, nil
}

func (t *Transaction) ID() shared.ID            { return t.id }
func (t *Transaction) PaymentID() shared.ID     { return t.paymentID }
func (t *Transaction) AttemptAt() time.Time     { return t.attemptAt }
func (t *Transaction) Status() TransactionStatus { return t.status }
func (t *Transaction) GatewayResponse() string  { return t.gatewayResponse }

// IsPending reports whether the gateway has not answered yet.
func (t *Transaction) IsPending() bool { return t.status == TransactionPending }

// Succeed records a successful gateway answer.
func (t *Transaction) Succeed(response string) {
	t.status = TransactionSuccess
	t.gatewayResponse = response
}

// Fail records a failed gateway answer.
func (t *Transaction) Fail(response string) {
	t.status = TransactionFailed
	t.gatewayResponse = response
}

type transactionJSON struct {
	ID              shared.ID         `json:"id"`
	PaymentID       shared.ID         `json:"paymentId"`
	AttemptAt       time.Time         `json:"attemptAt"`
	Status          TransactionStatus `json:"status"`
	GatewayResponse string            `json:"gatewayResponse"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionJSON{
		ID:              t.id,
		PaymentID:       t.paymentID,
		AttemptAt:       t.attemptAt,
		Status:          t.status,
		GatewayResponse: t.gatewayResponse,
	})
}

// RecurringPaymentAgreement authorizes charging a person on a schedule.
type RecurringPaymentAgreement struct {
	id              shared.ID
	active          bool
	method          PaymentMethod
	startDate       time.Time
	nextPaymentDate *time.Time
	personID        shared.ID
}

// AgreementConfig carries the named, defaulted construction fields.
type AgreementConfig struct {
	ID              shared.ID
	Active          bool
	Method          PaymentMethod
	StartDate       time.Time
	NextPaymentDate *time.Time
	PersonID        shared.ID
}

// NewRecurringPaymentAgreement validates and builds an agreement.
func NewRecurringPaymentAgreement(cfg AgreementConfig) (*RecurringPaymentAgreement, error) {
	if !KnownPaymentMethod(cfg.Method) {
		return nil, shared.NewValidationError("paymentMethod", "unknown payment method "+string(cfg.Method))
	}
	if cfg.PersonID.IsNil() {
		return nil, shared.NewValidationError("personId", "person id is required")
	}
	if cfg.StartDate.IsZero() {
		cfg.StartDate = time.Now()
	}
	return &RecurringPaymentAgreement{
		id:              cfg.ID,
		active:          cfg.Active,
		method:          cfg.Method,
		startDate:       cfg.StartDate,
		nextPaymentDate: cfg.NextPaymentDate,
		personID:        cfg.PersonID,
	}, nil
}

func (a *RecurringPaymentAgreement) ID() shared.ID              { return a.id }
func (a *RecurringPaymentAgreement) IsActive() bool             { return a.active }
func (a *RecurringPaymentAgreement) Method() PaymentMethod      { return a.method }
func (a *RecurringPaymentAgreement) StartDate() time.Time       { return a.startDate }
func (a *RecurringPaymentAgreement) NextPaymentDate() *time.Time { return a.nextPaymentDate }
func (a *RecurringPaymentAgreement) PersonID() shared.ID        { return a.personID }

// Deactivate suspends future charges.
func (a *RecurringPaymentAgreement) Deactivate() { a.active = false }

// Reactivate resumes future charges.
func (a *RecurringPaymentAgreement) Reactivate() { a.active = true }

// ScheduleNextPayment sets the next charge date.
func (a *RecurringPaymentAgreement) ScheduleNextPayment(date time.Time) error {
	if date.Before(a.startDate) {
		return shared.NewValidationError("nextPaymentDate", "next payment cannot precede the agreement start")
	}
	a.nextPaymentDate = &date
	return nil
}

type agreementJSON struct {
	ID              shared.ID     `json:"id"`
	IsActive        bool          `json:"isActive"`
	Method          PaymentMethod `json:"paymentMethod"`
	StartDate       time.Time     `json:"startDate"`
	NextPaymentDate *time.Time    `json:"nextPaymentDate"`
	PersonID        shared.ID     `json:"personId"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (a *RecurringPaymentAgreement) MarshalJSON() ([]byte, error) {
	return json.Marshal(agreementJSON{
		ID:              a.id,
		IsActive:        a.active,
		Method:          a.method,
		StartDate:       a.startDate,
		NextPaymentDate: a.nextPaymentDate,
		PersonID:        a.personID,
	})
}
