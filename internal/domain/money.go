package domain

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is a fixed-point amount in minor units (cents). All balance and
// fee arithmetic is integer arithmetic; floats appear only at explicit
// display or rate-multiplication boundaries, rounded half away from
// zero. Stored as numeric(20,2).
type Money int64

// MinWithdrawal is the smallest amount a user may withdraw.
const MinWithdrawal Money = 500 // 5.00

// ParseMoney parses a decimal string ("12.50") into minor units. At most
// two fractional digits are accepted.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, NewAppError(ErrCodeInvalidAmount, "Amount is required", 400, nil)
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, NewAppError(ErrCodeInvalidAmount, "Invalid amount format", 400, nil)
	}
	if len(frac) > 2 {
		return 0, NewAppError(ErrCodeInvalidAmount, "Amount cannot have more than 2 decimal places", 400, nil)
	}
	if whole == "" {
		whole = "0"
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, NewAppError(ErrCodeInvalidAmount, "Invalid amount format", 400, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, NewAppError(ErrCodeInvalidAmount, "Invalid amount format", 400, err)
	}

	v := units*100 + cents
	if neg {
		v = -v
	}
	return Money(v), nil
}

// MoneyFromFloat converts a float dollar amount, rounding half away
// from zero. Intended for config and request boundaries only.
func MoneyFromFloat(f float64) Money {
	return roundHalfAway(f * 100)
}

func (m Money) Add(o Money) Money { return m + o }
func (m Money) Sub(o Money) Money { return m - o }
func (m Money) Neg() Money        { return -m }

// MulInt multiplies by a whole factor, exact.
func (m Money) MulInt(n int) Money { return m * Money(n) }

// MulRate multiplies by a fractional rate (e.g. a prize-pool rate),
// rounding half away from zero.
func (m Money) MulRate(rate float64) Money {
	return roundHalfAway(float64(m) * rate)
}

func (m Money) IsZero() bool     { return m == 0 }
func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsPositive() bool { return m > 0 }

func (m Money) LessThan(o Money) bool    { return m < o }
func (m Money) GreaterThan(o Money) bool { return m > o }
func (m Money) GTE(o Money) bool         { return m >= o }

// String renders the canonical decimal form, e.g. "-3.05".
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float64 converts to float dollars for display only; never feed the
// result back into balance arithmetic.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

func roundHalfAway(v float64) Money {
	if v >= 0 {
		return Money(math.Floor(v + 0.5))
	}
	return Money(math.Ceil(v - 0.5))
}

// Scan implements the sql.Scanner interface
func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = 0
		return nil
	case int64:
		// integer column values carry whole units
		*m = Money(v * 100)
		return nil
	case float64:
		*m = roundHalfAway(v * 100)
		return nil
	case []byte:
		parsed, err := ParseMoney(string(v))
		if err != nil {
			return fmt.Errorf("failed to scan Money value %q", v)
		}
		*m = parsed
		return nil
	case string:
		parsed, err := ParseMoney(v)
		if err != nil {
			return fmt.Errorf("failed to scan Money value %q", v)
		}
		*m = parsed
		return nil
	}
	return fmt.Errorf("failed to scan Money value: %v", value)
}

// Value implements the driver.Valuer interface
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}
