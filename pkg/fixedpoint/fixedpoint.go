// Package fixedpoint represents monetary values as integers scaled by 10^18,
// independent of a token's native display precision. Keeping the engine on a
// single scale avoids floating-point drift across long chains of fills and
// lets balances from different tokens share one arithmetic.
package fixedpoint

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits carried by a scaled value.
const Decimals = 18

// Scale is 10^18, the multiplier between display units and scaled units.
var Scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

var scaleDec = decimal.New(1, Decimals)

// ToScaled converts a display-precision decimal into a scaled integer,
// rounding at the scale boundary.
func ToScaled(d decimal.Decimal) *big.Int {
	return d.Mul(scaleDec).Round(0).BigInt()
}

// FromScaled converts a scaled integer back to a display-precision decimal.
func FromScaled(x *big.Int) decimal.Decimal {
	if x == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(x, -Decimals)
}

// ToleranceDigits returns the number of insignificant trailing digits of a
// scaled value for a token with the given native decimal precision.
func ToleranceDigits(precision int) int {
	if precision < 0 {
		precision = 0
	}
	if precision > Decimals {
		precision = Decimals
	}
	return Decimals - precision
}

// RemoveTolerance truncates the trailing ToleranceDigits(precision) digits of
// x toward zero. Division/multiplication chains leave sub-precision noise that
// would otherwise fragment book price levels; quantizing before a value is
// persisted or used as a price-level key keeps levels aggregatable.
//
// Values whose magnitude is below the tolerance threshold are returned
// unchanged so that genuinely small balances are never zeroed.
func RemoveTolerance(x *big.Int, precision int) *big.Int {
	if x == nil {
		return big.NewInt(0)
	}

	digits := ToleranceDigits(precision)
	if digits == 0 {
		return new(big.Int).Set(x)
	}

	threshold := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	if new(big.Int).Abs(x).Cmp(threshold) < 0 {
		return new(big.Int).Set(x)
	}

	quantized := new(big.Int).Quo(x, threshold)
	return quantized.Mul(quantized, threshold)
}

// MulDiv returns a*b/Scale, the product of two scaled values.
func MulDiv(a, b *big.Int) *big.Int {
	out := new(big.Int).Mul(a, b)
	return out.Quo(out, Scale)
}

// Ratio returns part/whole as a scaled value (Scale means 1.0).
// A zero whole yields zero.
func Ratio(part, whole *big.Int) *big.Int {
	if whole == nil || whole.Sign() == 0 {
		return big.NewInt(0)
	}
	out := new(big.Int).Mul(part, Scale)
	return out.Quo(out, whole)
}

// IsZero reports whether x is nil or zero.
func IsZero(x *big.Int) bool {
	return x == nil || x.Sign() == 0
}

// Clone returns a copy of x, or zero for nil.
func Clone(x *big.Int) *big.Int {
	if x == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(x)
}

// Add returns a+b without mutating either operand.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub returns a-b without mutating either operand.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

// Min returns the smaller of a and b.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}

// MustFromString parses a decimal string into a scaled value and panics on a
// malformed input. Intended for tests and static tables.
func MustFromString(s string) *big.Int {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return ToScaled(d)
}
