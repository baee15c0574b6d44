package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderID is the identifier the processor assigns when an order is created.
type OrderID string

func NewOrderID(raw string) (OrderID, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrMissingOrderID
	}
	return OrderID(id), nil
}

func (id OrderID) String() string {
	return string(id)
}

// Money is a purchase amount in a processor-facing currency. Value is kept as a
// decimal so the wire form is always two fraction digits.
type Money struct {
	Value    decimal.Decimal
	Currency string
}

func NewMoney(value, currency string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if !amount.IsPositive() {
		return Money{}, ErrInvalidAmount
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}

	return Money{Value: amount, Currency: currency}, nil
}

// FormattedValue renders the amount the way the processor expects it, e.g. "64.00".
func (m Money) FormattedValue() string {
	return m.Value.StringFixed(2)
}
