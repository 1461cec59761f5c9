// Package broadcast publishes engine state changes over redis pub/sub.
// Payloads carry display-precision decimal strings, not scaled integers.
package broadcast

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	candlev1 "github.com/techcsc21/trade4u-sub008/internal/domain/candle/v1"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
	"github.com/techcsc21/trade4u-sub008/pkg/redis"
)

// Usecase implements the broadcaster over the redis wrapper. Every publish
// is best effort; failures are logged and never propagate to the batch
// that produced the update.
type Usecase struct {
	redis  redis.Client
	logger logger.Interface
}

// NewUsecase creates a broadcast usecase.
func NewUsecase(client redis.Client, log logger.Interface) *Usecase {
	return &Usecase{
		redis:  client,
		logger: log,
	}
}

type orderMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Symbol    string    `json:"symbol"`
	Side      string    `json:"side"`
	Type      string    `json:"type"`
	Price     string    `json:"price"`
	Amount    string    `json:"amount"`
	Filled    string    `json:"filled"`
	Remaining string    `json:"remaining"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type bookDeltaMessage struct {
	Side   string `json:"side"`
	Price  string `json:"price"`
	Amount string `json:"amount"`
}

type bookMessage struct {
	Symbol string             `json:"symbol"`
	Deltas []bookDeltaMessage `json:"deltas"`
}

type candleMessage struct {
	Symbol   string    `json:"symbol"`
	Interval string    `json:"interval"`
	OpenTime time.Time `json:"openTime"`
	Open     string    `json:"open"`
	High     string    `json:"high"`
	Low      string    `json:"low"`
	Close    string    `json:"close"`
	Volume   string    `json:"volume"`
}

type tickerMessage struct {
	Symbol     string    `json:"symbol"`
	Open       string    `json:"open"`
	High       string    `json:"high"`
	Low        string    `json:"low"`
	Last       string    `json:"last"`
	Volume     string    `json:"volume"`
	Change     string    `json:"change"`
	Percentage string    `json:"percentage"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OrderUpdate publishes an order's new state on order:<symbol>.
func (u *Usecase) OrderUpdate(ctx context.Context, order *orderv1.Order) {
	u.publish(ctx, "order:"+order.Symbol, orderMessage{
		ID:        order.ID,
		UserID:    order.UserID,
		Symbol:    order.Symbol,
		Side:      string(order.Side),
		Type:      string(order.Type),
		Price:     display(order.Price),
		Amount:    display(order.Amount),
		Filled:    display(order.Filled),
		Remaining: display(order.Remaining),
		Status:    string(order.Status),
		UpdatedAt: order.UpdatedAt,
	})
}

// BookUpdate publishes the aggregated level changes on book:<symbol>.
func (u *Usecase) BookUpdate(ctx context.Context, symbol string, deltas []orderbookv1.Delta) {
	if len(deltas) == 0 {
		return
	}
	message := bookMessage{Symbol: symbol}
	for _, delta := range deltas {
		price := new(big.Int)
		price.SetString(delta.PriceKey, 10)
		message.Deltas = append(message.Deltas, bookDeltaMessage{
			Side:   string(delta.Side),
			Price:  display(price),
			Amount: display(delta.Amount),
		})
	}
	u.publish(ctx, "book:"+symbol, message)
}

// BookSnapshot publishes a full book on book:<symbol>, bids and asks as
// absolute levels. Consumers replace their copy instead of patching it.
func (u *Usecase) BookSnapshot(ctx context.Context, book *orderbookv1.Book) {
	message := struct {
		Symbol   string             `json:"symbol"`
		Snapshot bool               `json:"snapshot"`
		Bids     []bookDeltaMessage `json:"bids"`
		Asks     []bookDeltaMessage `json:"asks"`
	}{Symbol: book.Symbol, Snapshot: true}

	for key, amount := range book.Bids {
		message.Bids = append(message.Bids, levelMessage(orderv1.SideBuy, key, amount))
	}
	for key, amount := range book.Asks {
		message.Asks = append(message.Asks, levelMessage(orderv1.SideSell, key, amount))
	}
	u.publish(ctx, "book:"+book.Symbol, message)
}

func levelMessage(side orderv1.Side, priceKey string, amount *big.Int) bookDeltaMessage {
	price := new(big.Int)
	price.SetString(priceKey, 10)
	return bookDeltaMessage{
		Side:   string(side),
		Price:  display(price),
		Amount: display(amount),
	}
}

// CandleUpdate publishes the changed bucket on candle:<symbol>:<interval>.
func (u *Usecase) CandleUpdate(ctx context.Context, candle *candlev1.Candle) {
	u.publish(ctx, "candle:"+candle.Symbol+":"+candle.Interval, candleMessage{
		Symbol:   candle.Symbol,
		Interval: candle.Interval,
		OpenTime: candle.OpenTime,
		Open:     display(candle.Open),
		High:     display(candle.High),
		Low:      display(candle.Low),
		Close:    display(candle.Close),
		Volume:   display(candle.Volume),
	})
}

// TickerUpdate publishes the summary on ticker:<symbol> and the shared
// tickers channel.
func (u *Usecase) TickerUpdate(ctx context.Context, ticker *candlev1.Ticker) {
	message := tickerMessage{
		Symbol:     ticker.Symbol,
		Open:       display(ticker.Open),
		High:       display(ticker.High),
		Low:        display(ticker.Low),
		Last:       display(ticker.Last),
		Volume:     display(ticker.Volume),
		Change:     display(ticker.Change),
		Percentage: display(ticker.Percentage),
		UpdatedAt:  ticker.UpdatedAt,
	}
	u.publish(ctx, "ticker:"+ticker.Symbol, message)
	u.publish(ctx, "tickers", message)
}

func (u *Usecase) publish(ctx context.Context, channel string, message any) {
	payload, err := json.Marshal(message)
	if err != nil {
		u.logger.ErrorContext(ctx, err, logger.NewField("channel", channel))
		return
	}
	if _, err := u.redis.Publish(ctx, channel, payload); err != nil {
		u.logger.ErrorContext(ctx, err, logger.NewField("channel", channel))
	}
}

func display(x *big.Int) string {
	return fixedpoint.FromScaled(x).String()
}
