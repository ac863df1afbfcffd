package domain

import (
	"testing"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingPayment(t *testing.T) *Payment {
	t.Helper()
	amount, err := shared.MoneyFromFloat(99.90, "PEN")
	require.NoError(t, err)
	p, err := NewPayment(PaymentConfig{
		Amount:    amount,
		Method:    MethodCreditCard,
		InvoiceID: shared.NewID(1),
	})
	require.NoError(t, err)
	return p
}

func TestNewPaymentRequiresPositiveAmount(t *testing.T) {
	zero, err := shared.MoneyFromFloat(0, "PEN")
	require.NoError(t, err)
	_, err = NewPayment(PaymentConfig{Amount: zero, Method: MethodCreditCard})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestPaymentConfirmTransition(t *testing.T) {
	p := pendingPayment(t)
	at := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, p.MarkAsPaid(at))
	assert.True(t, p.IsPaid())
	require.NotNil(t, p.PaidAt())
	assert.Equal(t, at, *p.PaidAt())

	// Confirmed payments can neither confirm again nor cancel.
	assert.Error(t, p.MarkAsPaid(at))
	assert.Error(t, p.Cancel())
}

func TestPaymentCancelTransition(t *testing.T) {
	p := pendingPayment(t)

	require.NoError(t, p.Cancel())
	assert.Equal(t, PaymentFailed, p.Status())
	assert.Error(t, p.MarkAsPaid(time.Now()))
}

func TestTransactionOutcomes(t *testing.T) {
	tx, err := NewTransaction(TransactionConfig{PaymentID: shared.NewID(1)})
	require.NoError(t, err)
	assert.Equal(t, TransactionInitiated, tx.Status())

	tx.Succeed(`{"code":"00"}`)
	assert.Equal(t, TransactionSuccess, tx.Status())
	assert.Equal(t, `{"code":"00"}`, tx.GatewayResponse())

	tx2, err := NewTransaction(TransactionConfig{PaymentID: shared.NewID(1)})
	require.NoError(t, err)
	tx2.Fail("card declined")
	assert.Equal(t, TransactionFailed, tx2.Status())
}

func TestAgreementValidation(t *testing.T) {
	_, err := NewRecurringPaymentAgreement(AgreementConfig{
		Method: "BARTER",
		PersonID: shared.NewID(1),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)

	_, err = NewRecurringPaymentAgreement(AgreementConfig{Method: MethodWallet})
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestAgreementLifecycle(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	agr, err := NewRecurringPaymentAgreement(AgreementConfig{
		Active:    true,
		Method:    MethodBankTransfer,
		StartDate: start,
		PersonID:  shared.NewID(1),
	})
	require.NoError(t, err)

	agr.Deactivate()
	assert.False(t, agr.IsActive())
	agr.Reactivate()
	assert.True(t, agr.IsActive())

	assert.Error(t, agr.ScheduleNextPayment(start.AddDate(0, 0, -1)))
	require.NoError(t, agr.ScheduleNextPayment(start.AddDate(0, 1, 0)))
	require.NotNil(t, agr.NextPaymentDate())
	assert.Equal(t, start.AddDate(0, 1, 0), *agr.NextPaymentDate())
}
