package orderv1

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
)

// PlaceOrderRequest is the intake payload for a new order. Monetary fields
// are display-precision decimal strings; the order-entry path has already
// validated funds and locked them.
type PlaceOrderRequest struct {
	OrderID     string `json:"orderId"`
	UserID      string `json:"userId"`
	Symbol      string `json:"symbol"`
	Side        Side   `json:"side"`
	Type        Type   `json:"type"`
	Price       string `json:"price"`
	Amount      string `json:"amount"`
	Fee         string `json:"fee"`
	FeeCurrency string `json:"feeCurrency"`
	CreatedAt   int64  `json:"createdAt"` // unix milliseconds
	Offset      int64  `json:"-"`         // offset of the payload in the stream
}

// ToOrder validates the payload and converts it to a scaled Order.
// A payload missing required numeric or date fields is malformed and is
// never enqueued.
func (r *PlaceOrderRequest) ToOrder() (*Order, error) {
	if r.OrderID == "" || r.UserID == "" || r.Symbol == "" {
		return nil, errors.NewErrorDetails("order payload missing identity fields", string(errors.OrderMalformed), "orderId")
	}
	if r.Side != SideBuy && r.Side != SideSell {
		return nil, errors.NewErrorDetails("order payload has invalid side", string(errors.OrderMalformed), "side")
	}
	if r.Type != TypeLimit && r.Type != TypeMarket {
		return nil, errors.NewErrorDetails("order payload has invalid type", string(errors.OrderMalformed), "type")
	}
	if r.CreatedAt <= 0 {
		return nil, errors.NewErrorDetails("order payload missing createdAt", string(errors.OrderMalformed), "createdAt")
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, errors.NewErrorDetails("order payload has invalid amount", string(errors.OrderMalformed), "amount")
	}

	price := decimal.Zero
	if r.Type == TypeLimit {
		price, err = decimal.NewFromString(r.Price)
		if err != nil || price.Sign() <= 0 {
			return nil, errors.NewErrorDetails("order payload has invalid price", string(errors.OrderMalformed), "price")
		}
	}

	fee := decimal.Zero
	if r.Fee != "" {
		fee, err = decimal.NewFromString(r.Fee)
		if err != nil || fee.Sign() < 0 {
			return nil, errors.NewErrorDetails("order payload has invalid fee", string(errors.OrderMalformed), "fee")
		}
	}

	scaledPrice := fixedpoint.ToScaled(price)
	scaledAmount := fixedpoint.ToScaled(amount)
	scaledFee := fixedpoint.ToScaled(fee)

	// Buyers lock cost plus fee upfront; the cost field carries the full lock.
	cost := fixedpoint.MulDiv(scaledAmount, scaledPrice)
	if r.Side == SideBuy {
		cost = fixedpoint.Add(cost, scaledFee)
	}

	createdAt := time.UnixMilli(r.CreatedAt).UTC()

	return &Order{
		ID:          r.OrderID,
		UserID:      r.UserID,
		Symbol:      r.Symbol,
		Side:        r.Side,
		Type:        r.Type,
		Price:       scaledPrice,
		Amount:      scaledAmount,
		Filled:      fixedpoint.Clone(nil),
		Remaining:   fixedpoint.Clone(scaledAmount),
		Cost:        cost,
		Fee:         scaledFee,
		FeeCurrency: r.FeeCurrency,
		Status:      StatusOpen,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil
}
