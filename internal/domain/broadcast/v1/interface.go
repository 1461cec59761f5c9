package broadcastv1

import (
	"context"

	candlev1 "github.com/techcsc21/trade4u-sub008/internal/domain/candle/v1"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/broadcaster_mock.go -package=mock

// Broadcaster publishes engine state changes to downstream consumers.
// Publishing is best effort; a failed publish never fails the batch that
// produced it.
type Broadcaster interface {
	OrderUpdate(ctx context.Context, order *orderv1.Order)
	BookUpdate(ctx context.Context, symbol string, deltas []orderbookv1.Delta)
	BookSnapshot(ctx context.Context, book *orderbookv1.Book)
	CandleUpdate(ctx context.Context, candle *candlev1.Candle)
	TickerUpdate(ctx context.Context, ticker *candlev1.Ticker)
}
