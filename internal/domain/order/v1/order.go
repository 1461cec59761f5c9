package orderv1

import (
	"math/big"
	"strings"
	"time"

	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
)

// Side represents the side of an order.
type Side string

const (
	// SideBuy represents a buy order.
	SideBuy Side = "BUY"
	// SideSell represents a sell order.
	SideSell Side = "SELL"
)

// Type represents the type of an order.
type Type string

const (
	// TypeLimit represents a limit order.
	TypeLimit Type = "LIMIT"
	// TypeMarket represents a market order.
	TypeMarket Type = "MARKET"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	// StatusOpen represents an order with remaining amount to fill.
	StatusOpen Status = "OPEN"
	// StatusClosed represents a fully filled order.
	StatusClosed Status = "CLOSED"
	// StatusCanceled represents an order removed before being fully filled.
	StatusCanceled Status = "CANCELED"
)

// Trade is a fill record appended to both counterparties of a match.
// Its ID is the originating order's id; records are never mutated after append.
type Trade struct {
	ID        string    `json:"id"`
	Amount    *big.Int  `json:"amount"`
	Price     *big.Int  `json:"price"`
	Cost      *big.Int  `json:"cost"`
	Side      Side      `json:"side"`
	Timestamp time.Time `json:"timestamp"`
}

// Order represents a single order in the trading core. All monetary fields
// are fixed-point scaled integers.
//
// For a buy order Cost is the total quote amount locked at submission,
// fee included. For a sell order Fee is deducted from proceeds at match time.
type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Symbol      string    `json:"symbol"`
	Side        Side      `json:"side"`
	Type        Type      `json:"type"`
	Price       *big.Int  `json:"price"`
	Amount      *big.Int  `json:"amount"`
	Filled      *big.Int  `json:"filled"`
	Remaining   *big.Int  `json:"remaining"`
	Cost        *big.Int  `json:"cost"`
	Fee         *big.Int  `json:"fee"`
	FeeCurrency string    `json:"feeCurrency"`
	Status      Status    `json:"status"`
	Trades      []Trade   `json:"trades"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// InBook marks a limit order whose resting amount has been published to
	// the aggregated book. Orders reloaded from the store start marked.
	InBook bool `json:"-"`
}

// IsBuy checks if the order is a buy order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsOpen checks if the order still has remaining amount to fill.
func (o *Order) IsOpen() bool {
	return o.Status == StatusOpen
}

// Exhausted reports whether the order can take no further fills.
// Cursor advancement in the matching loop is a pure function of this state.
func (o *Order) Exhausted() bool {
	return o.Remaining == nil || o.Remaining.Sign() <= 0
}

// ApplyFill applies a fill to the order: filled grows, remaining shrinks and
// the order closes when nothing remains. The matching pass appends the
// corresponding trade record separately, after settlement succeeds.
func (o *Order) ApplyFill(amount *big.Int, now time.Time) {
	o.Filled = fixedpoint.Add(o.Filled, amount)
	o.Remaining = fixedpoint.Sub(o.Remaining, amount)
	if o.Remaining.Sign() == 0 {
		o.Status = StatusClosed
	}
	o.UpdatedAt = now
}

// AppendTrade appends a fill record, keeping the list ordered by timestamp.
func (o *Order) AppendTrade(trade Trade) {
	o.Trades = append(o.Trades, trade)
}

// FillRatio returns filled amount / order amount for a given fill, scaled.
func FillRatio(fillAmount, orderAmount *big.Int) *big.Int {
	return fixedpoint.Ratio(fillAmount, orderAmount)
}

// SplitSymbol splits a symbol like "BTC/USDT" into base and quote currencies.
func SplitSymbol(symbol string) (base, quote string) {
	parts := strings.SplitN(symbol, "/", 2)
	if len(parts) != 2 {
		return symbol, ""
	}
	return parts[0], parts[1]
}
