package traveltales

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// defaultCurrency is the display currency of all journal amounts.
const defaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64](value T) Money {
	return Money{value: newDecimal(value), cur: defaultCurrency}
}

func newDecimal[T float32 | float64 | int | int32 | int64](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// ParseAmount parses a decimal amount like "75" or "12.50".
func ParseAmount(str string) (Money, error) {
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return Money{value: v, cur: defaultCurrency}, nil
}

// currency returns the money's full currency, never nil.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = defaultCurrency
	}
	return *money.New(0, cur).Currency()
}

// String returns the formatted representation of the money value, e.g. "$195.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }

// MarshalJSON writes the amount as a bare decimal number, the way the
// collections have always been persisted.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts a number, or a quoted decimal string.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	str := strings.Trim(string(bytes), `"`)
	v, err := decimal.NewFromString(str)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", str, err)
	}
	m.value = v
	m.cur = defaultCurrency
	return nil
}
