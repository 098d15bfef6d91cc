package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{"12.50", 1250, false},
		{"0.05", 5, false},
		{"100", 10000, false},
		{"-3.05", -305, false},
		{".5", 50, false},
		{"5.", 500, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.234", 0, true},
		{"1.2.3", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMoney(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			appErr, ok := IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, ErrCodeInvalidAmount, appErr.Code, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "12.50", Money(1250).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-3.05", Money(-305).String())
	assert.Equal(t, "0.00", Money(0).String())
}

func TestMoneyArithmetic(t *testing.T) {
	assert.Equal(t, Money(300), Money(100).Add(Money(200)))
	assert.Equal(t, Money(-100), Money(100).Sub(Money(200)))
	assert.Equal(t, Money(500), Money(100).MulInt(5))
	assert.Equal(t, Money(-100), Money(100).Neg())
}

func TestMoneyMulRateRoundsHalfAwayFromZero(t *testing.T) {
	// 10.01 * 0.75 = 750.75 cents -> 751
	assert.Equal(t, Money(751), Money(1001).MulRate(0.75))
	// 0.01 * 0.5 = 0.5 cents -> 1
	assert.Equal(t, Money(1), Money(1).MulRate(0.5))
	assert.Equal(t, Money(-1), Money(-1).MulRate(0.5))
	// exact rates stay exact
	assert.Equal(t, Money(7500), Money(10000).MulRate(0.75))
	assert.Equal(t, Money(9500), Money(10000).MulRate(0.95))
}

func TestMoneyComparisons(t *testing.T) {
	assert.True(t, Money(100).LessThan(Money(200)))
	assert.True(t, Money(200).GreaterThan(Money(100)))
	assert.True(t, Money(100).GTE(Money(100)))
	assert.True(t, Money(0).IsZero())
	assert.True(t, Money(-1).IsNegative())
	assert.True(t, Money(1).IsPositive())
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan([]byte("12.50")))
	assert.Equal(t, Money(1250), m)

	require.NoError(t, m.Scan("3.05"))
	assert.Equal(t, Money(305), m)

	require.NoError(t, m.Scan(float64(2.5)))
	assert.Equal(t, Money(250), m)

	require.NoError(t, m.Scan(int64(7)))
	assert.Equal(t, Money(700), m)

	assert.Error(t, m.Scan(struct{}{}))
}

func TestMoneyValue(t *testing.T) {
	v, err := Money(1250).Value()
	require.NoError(t, err)
	assert.Equal(t, "12.50", v)
}
