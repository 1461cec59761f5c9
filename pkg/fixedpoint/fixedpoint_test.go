package fixedpoint

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToScaledFromScaled(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "integer value", input: "50000"},
		{name: "fractional value", input: "0.5"},
		{name: "eight decimals", input: "0.00000001"},
		{name: "eighteen decimals", input: "0.000000000000000001"},
		{name: "negative value", input: "-12.25"},
		{name: "zero", input: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tc.input)
			require.NoError(t, err)

			scaled := ToScaled(d)
			back := FromScaled(scaled)

			assert.True(t, d.Equal(back), "expected %s, got %s", d, back)
		})
	}
}

func TestRoundTripWithinTolerance(t *testing.T) {
	// Round-trip must recover the value at the token's display precision.
	testCases := []struct {
		name      string
		input     string
		precision int
	}{
		{name: "btc amount at 8 decimals", input: "1.23456789", precision: 8},
		{name: "usdt price at 6 decimals", input: "50000.123456", precision: 6},
		{name: "stable at 2 decimals", input: "99.99", precision: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tc.input)
			require.NoError(t, err)

			quantized := RemoveTolerance(ToScaled(d), tc.precision)
			back := FromScaled(quantized)

			assert.True(t, d.Equal(back.Truncate(int32(tc.precision))),
				"expected %s, got %s", d, back)
		})
	}
}

func TestRemoveTolerance(t *testing.T) {
	testCases := []struct {
		name      string
		input     *big.Int
		precision int
		expected  *big.Int
	}{
		{
			name:      "truncates sub-precision noise",
			input:     MustFromString("1.000000001234567891"),
			precision: 8,
			expected:  MustFromString("1.00000000"),
		},
		{
			name:      "value below threshold left untouched",
			input:     big.NewInt(123), // 123 wei, far below 10^10
			precision: 8,
			expected:  big.NewInt(123),
		},
		{
			name:      "full precision token unchanged",
			input:     MustFromString("0.000000000000000123"),
			precision: 18,
			expected:  MustFromString("0.000000000000000123"),
		},
		{
			name:      "negative value truncates toward zero",
			input:     MustFromString("-1.000000001234567891"),
			precision: 8,
			expected:  MustFromString("-1.00000000"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemoveTolerance(tc.input, tc.precision)
			assert.Zero(t, tc.expected.Cmp(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestMulDiv(t *testing.T) {
	// cost = amount * price / Scale
	amount := MustFromString("2")
	price := MustFromString("100")

	cost := MulDiv(amount, price)
	assert.Zero(t, MustFromString("200").Cmp(cost))
}

func TestRatio(t *testing.T) {
	half := Ratio(MustFromString("1"), MustFromString("2"))
	assert.Zero(t, MustFromString("0.5").Cmp(half))

	assert.Zero(t, Ratio(MustFromString("1"), big.NewInt(0)).Sign())
}

func TestMinAndClone(t *testing.T) {
	a := MustFromString("1")
	b := MustFromString("2")

	assert.Zero(t, a.Cmp(Min(a, b)))
	assert.Zero(t, a.Cmp(Min(b, a)))

	c := Clone(a)
	c.Add(c, b)
	assert.Zero(t, MustFromString("1").Cmp(a), "Clone must not alias its input")
	assert.Zero(t, Clone(nil).Sign())
}
