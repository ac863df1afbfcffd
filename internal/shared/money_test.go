package shared

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64, currency string) Money {
	t.Helper()
	m, err := MoneyFromFloat(amount, currency)
	require.NoError(t, err)
	return m
}

func TestMoneyAddSameCurrency(t *testing.T) {
	a := mustMoney(t, 100, "PEN")
	b := mustMoney(t, 50.5, "PEN")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(150.5)))
	assert.Equal(t, "PEN", sum.Currency())
}

func TestMoneyAddCurrencyMismatch(t *testing.T) {
	a := mustMoney(t, 100, "PEN")
	b := mustMoney(t, 100, "USD")

	_, err := a.Add(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

func TestMoneySubtract(t *testing.T) {
	a := mustMoney(t, 100, "USD")
	b := mustMoney(t, 40, "USD")

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(60)))
}

func TestMoneyMultiply(t *testing.T) {
	m := mustMoney(t, 19.99, "PEN")
	tripled := m.Multiply(decimal.NewFromInt(3))
	assert.True(t, tripled.Amount().Equal(decimal.NewFromFloat(59.97)))
	assert.Equal(t, "PEN", tripled.Currency())
}

func TestMoneyZeroValueDefaults(t *testing.T) {
	var m Money
	assert.Equal(t, DefaultCurrency, m.Currency())
	assert.True(t, m.IsZero())
	assert.False(t, m.IsPositive())
}

func TestMoneyMarshalsAsObject(t *testing.T) {
	m := mustMoney(t, 250000, "PEN")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"250000","currency":"PEN"}`, string(data))
}

func TestMoneyUnmarshalBareNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`1500.75`), &m))
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(1500.75)))
	assert.Equal(t, DefaultCurrency, m.Currency())
}

func TestMoneyUnmarshalObject(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"99.90","currency":"USD"}`), &m))
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(99.90)))
	assert.Equal(t, "USD", m.Currency())
}
