package orderbookv1

import (
	"math/big"
	"testing"

	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceKey_QuantizesNoise(t *testing.T) {
	clean := fixedpoint.MustFromString("100.5")
	noisy := new(big.Int).Add(clean, big.NewInt(7)) // sub-precision residue

	assert.Equal(t, PriceKey(clean, 8), PriceKey(noisy, 8))
}

func TestBook_ApplyAccumulatesAndDeletes(t *testing.T) {
	book := NewBook("BTC/USDT")
	key := PriceKey(fixedpoint.MustFromString("100"), 8)

	book.Apply(Delta{Side: orderv1.SideBuy, PriceKey: key, Amount: fixedpoint.MustFromString("1")})
	book.Apply(Delta{Side: orderv1.SideBuy, PriceKey: key, Amount: fixedpoint.MustFromString("0.5")})
	assert.Equal(t, fixedpoint.MustFromString("1.5"), book.Amount(orderv1.SideBuy, key))

	book.Apply(Delta{Side: orderv1.SideBuy, PriceKey: key, Amount: fixedpoint.MustFromString("-1.5")})
	assert.Zero(t, book.Depth())
	assert.True(t, fixedpoint.IsZero(book.Amount(orderv1.SideBuy, key)))
}

func TestBook_ApplyClampsNegativeLevel(t *testing.T) {
	book := NewBook("BTC/USDT")
	key := PriceKey(fixedpoint.MustFromString("100"), 8)

	book.Apply(Delta{Side: orderv1.SideSell, PriceKey: key, Amount: fixedpoint.MustFromString("1")})
	book.Apply(Delta{Side: orderv1.SideSell, PriceKey: key, Amount: fixedpoint.MustFromString("-2")})

	assert.Zero(t, book.Depth())
}

func TestBook_SidesAreIndependent(t *testing.T) {
	book := NewBook("BTC/USDT")
	key := PriceKey(fixedpoint.MustFromString("100"), 8)

	book.Apply(Delta{Side: orderv1.SideBuy, PriceKey: key, Amount: fixedpoint.MustFromString("1")})
	book.Apply(Delta{Side: orderv1.SideSell, PriceKey: key, Amount: fixedpoint.MustFromString("2")})

	assert.Equal(t, fixedpoint.MustFromString("1"), book.Amount(orderv1.SideBuy, key))
	assert.Equal(t, fixedpoint.MustFromString("2"), book.Amount(orderv1.SideSell, key))
	assert.Equal(t, 2, book.Depth())
}

func TestDeltaSet_MergesPerLevel(t *testing.T) {
	set := NewDeltaSet("BTC/USDT")
	key := PriceKey(fixedpoint.MustFromString("100"), 8)

	set.Add(orderv1.SideBuy, key, fixedpoint.MustFromString("1"))
	set.Add(orderv1.SideBuy, key, fixedpoint.MustFromString("-0.4"))

	deltas := set.Deltas()
	require.Len(t, deltas, 1)
	assert.Equal(t, fixedpoint.MustFromString("0.6"), deltas[0].Amount)
	assert.Equal(t, "BTC/USDT", deltas[0].Symbol)
}

func TestDeltaSet_SkipsCanceledOutLevels(t *testing.T) {
	set := NewDeltaSet("BTC/USDT")
	key := PriceKey(fixedpoint.MustFromString("100"), 8)

	set.Add(orderv1.SideBuy, key, fixedpoint.MustFromString("1"))
	set.Add(orderv1.SideBuy, key, fixedpoint.MustFromString("-1"))
	set.Add(orderv1.SideSell, key, fixedpoint.MustFromString("2"))

	deltas := set.Deltas()
	require.Len(t, deltas, 1)
	assert.Equal(t, orderv1.SideSell, deltas[0].Side)
}

func TestDeltaSet_PreservesFirstTouchedOrder(t *testing.T) {
	set := NewDeltaSet("BTC/USDT")
	low := PriceKey(fixedpoint.MustFromString("99"), 8)
	high := PriceKey(fixedpoint.MustFromString("101"), 8)

	set.Add(orderv1.SideSell, high, fixedpoint.MustFromString("1"))
	set.Add(orderv1.SideBuy, low, fixedpoint.MustFromString("1"))
	set.Add(orderv1.SideSell, high, fixedpoint.MustFromString("1"))

	deltas := set.Deltas()
	require.Len(t, deltas, 2)
	assert.Equal(t, high, deltas[0].PriceKey)
	assert.Equal(t, low, deltas[1].PriceKey)
}
