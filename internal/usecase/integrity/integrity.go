// Package integrity reconciles the aggregated book, the open-order queue
// and the wallet locks after the in-memory state has drifted from the
// persistent store.
package integrity

import (
	"context"
	"math/big"
	"time"

	marketv1 "github.com/techcsc21/trade4u-sub008/internal/domain/market/v1"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
	walletv1 "github.com/techcsc21/trade4u-sub008/internal/domain/wallet/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
)

// Report summarizes one self-heal pass.
type Report struct {
	GhostLevels    int
	RepairedLevels int
	LockedOrders   int
	Canceled       []*orderv1.Order
	BooksTouched   []string
	// OrdersFixed is set when any order was auto-locked or canceled;
	// the caller reloads its queues and reruns one matching pass.
	OrdersFixed bool
}

// Usecase runs the two reconciliation passes.
type Usecase struct {
	orders   orderv1.Repository
	books    orderbookv1.Repository
	wallets  walletv1.Service
	registry marketv1.Registry
	logger   logger.Interface
}

// NewUsecase creates an integrity usecase.
func NewUsecase(
	orders orderv1.Repository,
	books orderbookv1.Repository,
	wallets walletv1.Service,
	registry marketv1.Registry,
	log logger.Interface,
) *Usecase {
	return &Usecase{
		orders:   orders,
		books:    books,
		wallets:  wallets,
		registry: registry,
		logger:   log,
	}
}

// Run reconciles every given symbol. Pass one rebuilds the stored book from
// the open-order queue, deleting ghost levels and rewriting understated or
// overstated ones. Pass two compares each user's required lock against
// their wallet and either locks the shortfall from free balance or cancels
// the newest orders until the lock covers what remains.
func (u *Usecase) Run(ctx context.Context, symbols []string) (*Report, error) {
	report := &Report{}

	for _, symbol := range symbols {
		open, err := u.orders.GetOpenBySymbol(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if err := u.healBook(ctx, symbol, open, report); err != nil {
			return nil, err
		}
		if err := u.healLocks(ctx, symbol, open, report); err != nil {
			return nil, err
		}
	}

	report.OrdersFixed = report.LockedOrders > 0 || len(report.Canceled) > 0
	u.logger.InfoContext(ctx, "integrity pass finished",
		logger.NewField("ghost_levels", report.GhostLevels),
		logger.NewField("repaired_levels", report.RepairedLevels),
		logger.NewField("locked_orders", report.LockedOrders),
		logger.NewField("canceled_orders", len(report.Canceled)),
	)
	return report, nil
}

// healBook aggregates the remaining amount of every open limit order per
// (side, price) and rewrites the stored book to match.
func (u *Usecase) healBook(ctx context.Context, symbol string, open []*orderv1.Order, report *Report) error {
	precision := u.registry.PricePrecision(ctx, symbol)

	expected := orderbookv1.NewBook(symbol)
	for _, order := range open {
		if order.Type != orderv1.TypeLimit || order.Exhausted() {
			continue
		}
		key := orderbookv1.PriceKey(order.Price, precision)
		levels := expected.Side(order.Side)
		if current, ok := levels[key]; ok {
			levels[key] = fixedpoint.Add(current, order.Remaining)
		} else {
			levels[key] = fixedpoint.Clone(order.Remaining)
		}
	}

	stored, err := u.books.GetBook(ctx, symbol)
	if err != nil {
		return err
	}

	touched := false
	for _, side := range []orderv1.Side{orderv1.SideBuy, orderv1.SideSell} {
		storedLevels := stored.Side(side)
		expectedLevels := expected.Side(side)

		for key := range storedLevels {
			if _, ok := expectedLevels[key]; ok {
				continue
			}
			if err := u.books.DeleteLevel(ctx, symbol, side, key); err != nil {
				return err
			}
			report.GhostLevels++
			touched = true
		}
		for key, amount := range expectedLevels {
			if storedAmount, ok := storedLevels[key]; ok && storedAmount.Cmp(amount) == 0 {
				continue
			}
			if err := u.books.SaveLevel(ctx, symbol, side, key, amount); err != nil {
				return err
			}
			report.RepairedLevels++
			touched = true
		}
	}

	if touched {
		report.BooksTouched = append(report.BooksTouched, symbol)
	}
	return nil
}

// lockRequirement is the aggregate lock one user needs in one currency to
// back their open orders on a symbol.
type lockRequirement struct {
	userID   string
	currency string
	required *big.Int
	orders   []*orderv1.Order
}

// healLocks verifies that each user's wallet still locks enough to back
// their open orders. Sellers need their remaining base amount; buyers need
// remaining times price in quote, without tolerance removal.
func (u *Usecase) healLocks(ctx context.Context, symbol string, open []*orderv1.Order, report *Report) error {
	base, quote := orderv1.SplitSymbol(symbol)

	requirements := make(map[string]*lockRequirement)
	for _, order := range open {
		if order.Type != orderv1.TypeLimit || order.Exhausted() {
			continue
		}
		currency := base
		required := fixedpoint.Clone(order.Remaining)
		if order.IsBuy() {
			currency = quote
			required = fixedpoint.MulDiv(order.Remaining, order.Price)
		}

		key := order.UserID + "|" + currency
		req, ok := requirements[key]
		if !ok {
			req = &lockRequirement{userID: order.UserID, currency: currency, required: big.NewInt(0)}
			requirements[key] = req
		}
		req.required = fixedpoint.Add(req.required, required)
		req.orders = append(req.orders, order)
	}

	for _, req := range requirements {
		wallet, err := u.wallets.GetWallet(ctx, req.userID, req.currency)
		if err != nil {
			u.logger.ErrorContext(ctx, err,
				logger.NewField("user_id", req.userID),
				logger.NewField("currency", req.currency),
			)
			continue
		}
		if wallet.InOrder.Cmp(req.required) >= 0 {
			continue
		}

		shortfall := fixedpoint.Sub(req.required, wallet.InOrder)
		if wallet.Available().Cmp(shortfall) >= 0 {
			if err := u.wallets.AdjustForFill(ctx, wallet, big.NewInt(0), shortfall); err != nil {
				return err
			}
			report.LockedOrders += len(req.orders)
			continue
		}

		// Free balance cannot cover the lock; cancel newest orders until
		// the wallet backs what remains.
		if err := u.cancelUntilCovered(ctx, wallet, req, report); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usecase) cancelUntilCovered(ctx context.Context, wallet *walletv1.Wallet, req *lockRequirement, report *Report) error {
	required := fixedpoint.Clone(req.required)

	for idx := len(req.orders) - 1; idx >= 0; idx-- {
		if wallet.InOrder.Cmp(required) >= 0 {
			break
		}
		order := req.orders[idx]

		orderLock := fixedpoint.Clone(order.Remaining)
		if order.IsBuy() {
			orderLock = fixedpoint.MulDiv(order.Remaining, order.Price)
		}

		order.Status = orderv1.StatusCanceled
		order.UpdatedAt = time.Now().UTC()
		if err := u.orders.Update(ctx, order); err != nil {
			return err
		}
		required = fixedpoint.Sub(required, orderLock)
		report.Canceled = append(report.Canceled, order)
	}
	return nil
}
