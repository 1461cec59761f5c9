// Package matching pairs queued orders in price-time priority and turns the
// resulting fills into order mutations and aggregated book deltas.
package matching

import (
	"context"
	"math/big"
	"sort"
	"time"

	marketv1 "github.com/techcsc21/trade4u-sub008/internal/domain/market/v1"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
)

//go:generate mockgen -source=matching.go -destination=mock/matching_mock.go -package=mock

// Settler applies the wallet movements of one fill before the fill is
// committed to either order. A failed settlement reports the failing side
// through the error details Field, "buy" or "sell".
type Settler interface {
	Settle(ctx context.Context, fill *Fill) error
}

// Fill is one pairing between a buy and a sell order. Amount is in base
// units, Price and Cost in quote units, all fixed-point scaled.
type Fill struct {
	Symbol    string
	Buy       *orderv1.Order
	Sell      *orderv1.Order
	Amount    *big.Int
	Price     *big.Int
	Cost      *big.Int
	TakerSide orderv1.Side
	Timestamp time.Time
}

// Result is the outcome of one matching pass.
type Result struct {
	// Fills that settled, in execution order.
	Fills []*Fill
	// Touched lists every order mutated this pass, queue order preserved.
	Touched []*orderv1.Order
	// Canceled lists market orders canceled for lack of counter-liquidity.
	// Their remaining locked funds still need to be released.
	Canceled []*orderv1.Order
	// Deltas are the aggregated book changes, merged per (side, price).
	Deltas []orderbookv1.Delta
}

// Usecase runs the batch matching algorithm for one symbol at a time.
type Usecase struct {
	registry marketv1.Registry
	settler  Settler
	logger   logger.Interface
	now      func() time.Time
}

// NewUsecase creates a matching usecase.
func NewUsecase(registry marketv1.Registry, settler Settler, log logger.Interface) *Usecase {
	return &Usecase{
		registry: registry,
		settler:  settler,
		logger:   log,
		now:      time.Now,
	}
}

// Match runs one pass over the queued orders of a symbol.
//
// Buys are walked best price first, then oldest first; sells likewise with
// the price order reversed. Market orders walk ahead of all limit orders on
// their side. Two limit orders pair only while buy.price >= sell.price; a
// market order pairs with any limit counterparty. The fill amount is the
// smaller remaining of the pair and the fill price is the maker's, the side
// that was created earlier. After each pairing a cursor advances only when
// its order is exhausted, so a part-filled market order keeps consuming
// counterparties until the opposite side runs out.
//
// Settlement runs per pairing before the fill is committed; a settlement
// failure skips only the failing side and leaves both orders untouched.
// When the loop ends, unfilled market orders are canceled and limit orders
// not yet published to the book contribute their remaining as positive
// deltas.
func (u *Usecase) Match(ctx context.Context, symbol string, queued []*orderv1.Order) *Result {
	buys, sells := partition(queued)
	sortBuys(buys)
	sortSells(sells)

	precision := u.registry.PricePrecision(ctx, symbol)
	deltas := orderbookv1.NewDeltaSet(symbol)
	result := &Result{}
	touched := make(map[string]bool)

	i, j := 0, 0
	for i < len(buys) && j < len(sells) {
		buy, sell := buys[i], sells[j]

		if buy.Type == orderv1.TypeMarket && sell.Type == orderv1.TypeMarket {
			// No price reference between two market orders; the younger
			// one waits for limit liquidity.
			if buy.CreatedAt.After(sell.CreatedAt) {
				i++
			} else {
				j++
			}
			continue
		}

		if !crosses(buy, sell) {
			break
		}

		amount := fixedpoint.Min(buy.Remaining, sell.Remaining)
		if amount.Sign() <= 0 {
			if buy.Exhausted() {
				i++
			}
			if sell.Exhausted() {
				j++
			}
			if !buy.Exhausted() && !sell.Exhausted() {
				break
			}
			continue
		}

		price := matchPrice(buy, sell)
		fill := &Fill{
			Symbol:    symbol,
			Buy:       buy,
			Sell:      sell,
			Amount:    amount,
			Price:     price,
			Cost:      fixedpoint.MulDiv(amount, price),
			TakerSide: takerSide(buy, sell),
			Timestamp: u.now().UTC(),
		}

		if err := u.settler.Settle(ctx, fill); err != nil {
			u.logger.ErrorContext(ctx, err,
				logger.NewField("symbol", symbol),
				logger.NewField("buy_order", buy.ID),
				logger.NewField("sell_order", sell.ID),
			)
			switch failedSide(err) {
			case orderv1.SideBuy:
				i++
			case orderv1.SideSell:
				j++
			default:
				i++
				j++
			}
			continue
		}

		u.commit(fill, deltas, precision)
		result.Fills = append(result.Fills, fill)
		touched[buy.ID] = true
		touched[sell.ID] = true

		if buy.Exhausted() {
			i++
		}
		if sell.Exhausted() {
			j++
		}
	}

	now := u.now().UTC()
	for _, order := range queued {
		if !order.IsOpen() || order.Exhausted() {
			continue
		}
		switch order.Type {
		case orderv1.TypeMarket:
			order.Status = orderv1.StatusCanceled
			order.UpdatedAt = now
			result.Canceled = append(result.Canceled, order)
			touched[order.ID] = true
		case orderv1.TypeLimit:
			if !order.InBook {
				deltas.Add(order.Side, orderbookv1.PriceKey(order.Price, precision), order.Remaining)
				order.InBook = true
				touched[order.ID] = true
			}
		}
	}

	for _, order := range queued {
		if touched[order.ID] {
			result.Touched = append(result.Touched, order)
		}
	}
	result.Deltas = deltas.Deltas()
	return result
}

// commit applies a settled fill to both orders, records the trade on each
// side and decrements the book levels the pair was resting on.
func (u *Usecase) commit(fill *Fill, deltas *orderbookv1.DeltaSet, precision int) {
	fill.Buy.ApplyFill(fill.Amount, fill.Timestamp)
	fill.Sell.ApplyFill(fill.Amount, fill.Timestamp)

	taker := fill.Buy
	if fill.TakerSide == orderv1.SideSell {
		taker = fill.Sell
	}
	trade := orderv1.Trade{
		ID:        taker.ID,
		Amount:    fixedpoint.Clone(fill.Amount),
		Price:     fixedpoint.Clone(fill.Price),
		Cost:      fixedpoint.Clone(fill.Cost),
		Side:      fill.TakerSide,
		Timestamp: fill.Timestamp,
	}
	fill.Buy.AppendTrade(trade)
	fill.Sell.AppendTrade(trade)

	if fill.Buy.Type == orderv1.TypeLimit && fill.Buy.InBook {
		deltas.Add(orderv1.SideBuy, orderbookv1.PriceKey(fill.Buy.Price, precision), new(big.Int).Neg(fill.Amount))
	}
	if fill.Sell.Type == orderv1.TypeLimit && fill.Sell.InBook {
		deltas.Add(orderv1.SideSell, orderbookv1.PriceKey(fill.Sell.Price, precision), new(big.Int).Neg(fill.Amount))
	}
}

func partition(queued []*orderv1.Order) (buys, sells []*orderv1.Order) {
	for _, order := range queued {
		if !order.IsOpen() || order.Exhausted() {
			continue
		}
		if order.IsBuy() {
			buys = append(buys, order)
		} else {
			sells = append(sells, order)
		}
	}
	return buys, sells
}

func sortBuys(buys []*orderv1.Order) {
	sort.SliceStable(buys, func(i, j int) bool {
		a, b := buys[i], buys[j]
		if (a.Type == orderv1.TypeMarket) != (b.Type == orderv1.TypeMarket) {
			return a.Type == orderv1.TypeMarket
		}
		if cmp := a.Price.Cmp(b.Price); cmp != 0 {
			return cmp > 0
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func sortSells(sells []*orderv1.Order) {
	sort.SliceStable(sells, func(i, j int) bool {
		a, b := sells[i], sells[j]
		if (a.Type == orderv1.TypeMarket) != (b.Type == orderv1.TypeMarket) {
			return a.Type == orderv1.TypeMarket
		}
		if cmp := a.Price.Cmp(b.Price); cmp != 0 {
			return cmp < 0
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func crosses(buy, sell *orderv1.Order) bool {
	if buy.Type == orderv1.TypeMarket || sell.Type == orderv1.TypeMarket {
		return true
	}
	return buy.Price.Cmp(sell.Price) >= 0
}

// matchPrice is the maker's price. A market order is always the taker; for
// two limit orders the maker is the earlier one, the resting sell on a tie.
func matchPrice(buy, sell *orderv1.Order) *big.Int {
	if buy.Type == orderv1.TypeMarket {
		return sell.Price
	}
	if sell.Type == orderv1.TypeMarket {
		return buy.Price
	}
	if buy.CreatedAt.Before(sell.CreatedAt) {
		return buy.Price
	}
	return sell.Price
}

func takerSide(buy, sell *orderv1.Order) orderv1.Side {
	if buy.Type == orderv1.TypeMarket {
		return orderv1.SideBuy
	}
	if sell.Type == orderv1.TypeMarket {
		return orderv1.SideSell
	}
	if buy.CreatedAt.Before(sell.CreatedAt) {
		return orderv1.SideSell
	}
	return orderv1.SideBuy
}

func failedSide(err error) orderv1.Side {
	details, ok := err.(*errors.ErrorDetails)
	if !ok {
		return ""
	}
	switch details.Field {
	case "buy":
		return orderv1.SideBuy
	case "sell":
		return orderv1.SideSell
	}
	return ""
}
