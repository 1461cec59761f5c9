package matching_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
	marketmock "github.com/techcsc21/trade4u-sub008/internal/domain/market/v1/mock"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/matching"
	matchingmock "github.com/techcsc21/trade4u-sub008/internal/usecase/matching/mock"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSymbol = "BTC/USDT"

var baseTime = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

type testFixture struct {
	ctrl     *gomock.Controller
	registry *marketmock.MockRegistry
	settler  *matchingmock.MockSettler
	usecase  *matching.Usecase
}

func setupTestFixture(t *testing.T) *testFixture {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	registry := marketmock.NewMockRegistry(ctrl)
	registry.EXPECT().PricePrecision(gomock.Any(), testSymbol).Return(8).AnyTimes()

	settler := matchingmock.NewMockSettler(ctrl)

	return &testFixture{
		ctrl:     ctrl,
		registry: registry,
		settler:  settler,
		usecase:  matching.NewUsecase(registry, settler, log),
	}
}

func limitOrder(id, userID string, side orderv1.Side, price, amount string, createdAt time.Time) *orderv1.Order {
	scaledPrice := fixedpoint.MustFromString(price)
	scaledAmount := fixedpoint.MustFromString(amount)
	cost := fixedpoint.MulDiv(scaledAmount, scaledPrice)
	return &orderv1.Order{
		ID:        id,
		UserID:    userID,
		Symbol:    testSymbol,
		Side:      side,
		Type:      orderv1.TypeLimit,
		Price:     scaledPrice,
		Amount:    scaledAmount,
		Filled:    big.NewInt(0),
		Remaining: fixedpoint.Clone(scaledAmount),
		Cost:      cost,
		Fee:       big.NewInt(0),
		Status:    orderv1.StatusOpen,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func marketOrder(id, userID string, side orderv1.Side, amount string, createdAt time.Time) *orderv1.Order {
	order := limitOrder(id, userID, side, "0", amount, createdAt)
	order.Type = orderv1.TypeMarket
	return order
}

func TestMatch_PriceTimePriority(t *testing.T) {
	f := setupTestFixture(t)
	f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Two sells at different prices, one buy that crosses both. The buy
	// must consume the cheaper sell first, then the more expensive one.
	sellCheap := limitOrder("s1", "alice", orderv1.SideSell, "100", "0.5", baseTime)
	sellDear := limitOrder("s2", "bob", orderv1.SideSell, "101", "0.5", baseTime.Add(time.Second))
	buy := limitOrder("b1", "carol", orderv1.SideBuy, "101", "1", baseTime.Add(2*time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{buy, sellCheap, sellDear})

	require.Len(t, result.Fills, 2)
	assert.Equal(t, "s1", result.Fills[0].Sell.ID)
	assert.Equal(t, fixedpoint.MustFromString("100"), result.Fills[0].Price)
	assert.Equal(t, "s2", result.Fills[1].Sell.ID)
	assert.Equal(t, fixedpoint.MustFromString("101"), result.Fills[1].Price)

	assert.Equal(t, orderv1.StatusClosed, buy.Status)
	assert.Equal(t, orderv1.StatusClosed, sellCheap.Status)
	assert.Equal(t, orderv1.StatusClosed, sellDear.Status)
	assert.True(t, buy.Remaining.Sign() == 0)
}

func TestMatch_TimePriorityWithinPrice(t *testing.T) {
	f := setupTestFixture(t)
	f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Equal prices: the older sell fills first, the younger stays resting.
	sellOld := limitOrder("s1", "alice", orderv1.SideSell, "100", "0.4", baseTime)
	sellNew := limitOrder("s2", "bob", orderv1.SideSell, "100", "0.4", baseTime.Add(time.Second))
	buy := limitOrder("b1", "carol", orderv1.SideBuy, "100", "0.4", baseTime.Add(2*time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{sellNew, sellOld, buy})

	require.Len(t, result.Fills, 1)
	assert.Equal(t, "s1", result.Fills[0].Sell.ID)
	assert.Equal(t, orderv1.StatusClosed, sellOld.Status)
	assert.Equal(t, orderv1.StatusOpen, sellNew.Status)
}

func TestMatch_MakerPriceIsEarlierOrder(t *testing.T) {
	f := setupTestFixture(t)
	f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// The resting buy at 102 was created before the sell at 100, so the
	// pair executes at the buy's price.
	buy := limitOrder("b1", "alice", orderv1.SideBuy, "102", "1", baseTime)
	sell := limitOrder("s1", "bob", orderv1.SideSell, "100", "1", baseTime.Add(time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{buy, sell})

	require.Len(t, result.Fills, 1)
	assert.Equal(t, fixedpoint.MustFromString("102"), result.Fills[0].Price)
	assert.Equal(t, orderv1.SideSell, result.Fills[0].TakerSide)
}

func TestMatch_NoCross(t *testing.T) {
	f := setupTestFixture(t)
	// No settlement may ever run for a non-crossing pair.

	buy := limitOrder("b1", "alice", orderv1.SideBuy, "99", "1", baseTime)
	sell := limitOrder("s1", "bob", orderv1.SideSell, "100", "1", baseTime.Add(time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{buy, sell})

	assert.Empty(t, result.Fills)
	assert.Equal(t, orderv1.StatusOpen, buy.Status)
	assert.Equal(t, orderv1.StatusOpen, sell.Status)

	// Both rest in the book at their own price levels.
	require.Len(t, result.Deltas, 2)
	assert.True(t, buy.InBook)
	assert.True(t, sell.InBook)
}

func TestMatch_MarketOrderSweepsThenCancels(t *testing.T) {
	f := setupTestFixture(t)
	f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// A market buy larger than all resting liquidity sweeps every ask and
	// the unfilled remainder is canceled, never left resting.
	sell1 := limitOrder("s1", "alice", orderv1.SideSell, "100", "0.3", baseTime)
	sell1.InBook = true
	sell2 := limitOrder("s2", "bob", orderv1.SideSell, "101", "0.3", baseTime)
	sell2.InBook = true
	buy := marketOrder("b1", "carol", orderv1.SideBuy, "1", baseTime.Add(time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{sell1, sell2, buy})

	require.Len(t, result.Fills, 2)
	assert.Equal(t, fixedpoint.MustFromString("100"), result.Fills[0].Price)
	assert.Equal(t, fixedpoint.MustFromString("101"), result.Fills[1].Price)
	assert.Equal(t, orderv1.SideBuy, result.Fills[0].TakerSide)

	require.Len(t, result.Canceled, 1)
	assert.Equal(t, "b1", result.Canceled[0].ID)
	assert.Equal(t, orderv1.StatusCanceled, buy.Status)
	assert.Equal(t, fixedpoint.MustFromString("0.4"), buy.Remaining)
	assert.Equal(t, fixedpoint.MustFromString("0.6"), buy.Filled)
}

func TestMatch_MarketOrderNoLiquidityCanceled(t *testing.T) {
	f := setupTestFixture(t)

	buy := marketOrder("b1", "carol", orderv1.SideBuy, "1", baseTime)

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{buy})

	assert.Empty(t, result.Fills)
	require.Len(t, result.Canceled, 1)
	assert.Equal(t, orderv1.StatusCanceled, buy.Status)
	assert.True(t, buy.Filled.Sign() == 0)
}

func TestMatch_BookDeltas(t *testing.T) {
	f := setupTestFixture(t)
	f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// A resting sell already in the book fills partially against a new
	// buy: its level loses the fill amount, the buy never rests.
	sell := limitOrder("s1", "alice", orderv1.SideSell, "100", "1", baseTime)
	sell.InBook = true
	buy := limitOrder("b1", "bob", orderv1.SideBuy, "100", "0.4", baseTime.Add(time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{sell, buy})

	require.Len(t, result.Fills, 1)
	require.Len(t, result.Deltas, 1)

	delta := result.Deltas[0]
	assert.Equal(t, orderv1.SideSell, delta.Side)
	assert.Equal(t, orderbookv1.PriceKey(sell.Price, 8), delta.PriceKey)
	assert.Equal(t, new(big.Int).Neg(fixedpoint.MustFromString("0.4")), delta.Amount)
}

func TestMatch_SettlementFailureSkipsFailingSide(t *testing.T) {
	f := setupTestFixture(t)

	// The first buy's wallet is short; the sell must still fill against
	// the next buy instead of the whole batch aborting.
	buyBroke := limitOrder("b1", "alice", orderv1.SideBuy, "101", "1", baseTime)
	buyFunded := limitOrder("b2", "bob", orderv1.SideBuy, "100", "1", baseTime.Add(time.Second))
	sell := limitOrder("s1", "carol", orderv1.SideSell, "100", "1", baseTime.Add(2*time.Second))

	shortfall := errors.NewErrorDetails("buyer lock short", string(errors.InsufficientLockedFunds), "buy")
	gomock.InOrder(
		f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(shortfall),
		f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil),
	)

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{buyBroke, buyFunded, sell})

	require.Len(t, result.Fills, 1)
	assert.Equal(t, "b2", result.Fills[0].Buy.ID)
	assert.Equal(t, orderv1.StatusClosed, buyFunded.Status)
	assert.Equal(t, orderv1.StatusClosed, sell.Status)

	// The failing buy is untouched and stays queued.
	assert.Equal(t, orderv1.StatusOpen, buyBroke.Status)
	assert.True(t, buyBroke.Filled.Sign() == 0)
}

func TestMatch_PartialFillKeepsCursor(t *testing.T) {
	f := setupTestFixture(t)
	f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// One big sell absorbs two buys; the sell's cursor holds until it is
	// exhausted.
	sell := limitOrder("s1", "alice", orderv1.SideSell, "100", "1", baseTime)
	buy1 := limitOrder("b1", "bob", orderv1.SideBuy, "100", "0.6", baseTime.Add(time.Second))
	buy2 := limitOrder("b2", "carol", orderv1.SideBuy, "100", "0.4", baseTime.Add(2*time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{sell, buy1, buy2})

	require.Len(t, result.Fills, 2)
	assert.Equal(t, orderv1.StatusClosed, sell.Status)
	assert.Equal(t, orderv1.StatusClosed, buy1.Status)
	assert.Equal(t, orderv1.StatusClosed, buy2.Status)
	assert.Equal(t, fixedpoint.MustFromString("1"), sell.Filled)
}

func TestMatch_TradesRecordedOnBothSides(t *testing.T) {
	f := setupTestFixture(t)
	f.settler.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	buy := limitOrder("b1", "alice", orderv1.SideBuy, "100", "0.5", baseTime)
	sell := limitOrder("s1", "bob", orderv1.SideSell, "100", "0.5", baseTime.Add(time.Second))

	result := f.usecase.Match(context.Background(), testSymbol, []*orderv1.Order{buy, sell})

	require.Len(t, result.Fills, 1)
	require.Len(t, buy.Trades, 1)
	require.Len(t, sell.Trades, 1)

	// The trade is tagged with the taker's order id on both sides.
	assert.Equal(t, "s1", buy.Trades[0].ID)
	assert.Equal(t, "s1", sell.Trades[0].ID)
	assert.Equal(t, orderv1.SideSell, buy.Trades[0].Side)
	assert.Equal(t, fixedpoint.MustFromString("50"), buy.Trades[0].Cost)
}
