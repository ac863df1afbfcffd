package shared

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed when the backend omits one.
const DefaultCurrency = "PEN"

// Money pairs an amount with a currency code. All arithmetic returns new
// instances; the zero value is 0 units of the default currency.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney builds a Money value. The currency code is upper-cased and
// must be non-empty.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, NewValidationError("currency", "currency must be a non-empty string")
	}
	return Money{amount: amount, currency: currency}, nil
}

// MoneyFromFloat is a convenience for literal amounts.
func MoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	if m.currency == "" {
		return decimal.Zero
	}
	return m.amount
}

// Currency returns the upper-cased currency code.
func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// Add returns the sum, failing when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.matchCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.Amount().Add(other.Amount()), currency: m.Currency()}, nil
}

// Subtract returns the difference, failing when the currencies differ.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.matchCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.Amount().Sub(other.Amount()), currency: m.Currency()}, nil
}

// Multiply scales the amount by factor. The factor is a typed decimal,
// so a non-numeric factor is unrepresentable here.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.Amount().Mul(factor), currency: m.Currency()}
}

// Equals compares by content.
func (m Money) Equals(other Money) bool {
	return m.Currency() == other.Currency() && m.Amount().Equal(other.Amount())
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount().IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount().IsPositive()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount().String(), m.Currency())
}

func (m Money) matchCurrency(other Money) error {
	if m.Currency() != other.Currency() {
		return NewValidationError("currency",
			fmt.Sprintf("currency mismatch: %s vs %s", m.Currency(), other.Currency()))
	}
	return nil
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// MarshalJSON emits the backend shape {"amount": n, "currency": "PEN"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.Amount(), Currency: m.Currency()})
}

// UnmarshalJSON accepts the object shape, a bare number (drifted
// backends emit amounts without a currency), or null.
func (m *Money) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*m = Money{}
		return nil
	}
	if trimmed[0] == '{' {
		var wire moneyJSON
		if err := json.Unmarshal(data, &wire); err != nil {
			return err
		}
		parsed, err := NewMoney(wire.Amount, nonEmpty(wire.Currency, DefaultCurrency))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	amount, err := decimal.NewFromString(strings.Trim(trimmed, `"`))
	if err != nil {
		return fmt.Errorf("money amount %s is not numeric", trimmed)
	}
	parsed, err := NewMoney(amount, DefaultCurrency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
