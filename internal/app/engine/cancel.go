package engine

import (
	"context"
	"math/big"
	"time"

	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
)

// Cancel removes one order out of band. The order's lock is taken first,
// so a matching pass holding it makes the cancel fail with
// order_lock_conflict and the caller retries. A successful cancel releases
// the remaining locked funds, retracts the order's resting amount from the
// book and schedules a fresh matching pass for the symbol.
func (e *Engine) Cancel(ctx context.Context, symbol, orderID string) error {
	queue, err := e.queueFor(ctx, symbol)
	if err != nil {
		return err
	}

	if !e.locks.TryLockAll([]string{orderID}) {
		return errors.NewErrorDetails(
			"order is being matched, retry the cancel",
			string(errors.OrderLockConflict), "orderId")
	}
	defer e.locks.Unlock([]string{orderID})

	queue.mu.Lock()
	var order *orderv1.Order
	remaining := queue.orders[:0]
	for _, queued := range queue.orders {
		if queued.ID == orderID {
			order = queued
			continue
		}
		remaining = append(remaining, queued)
	}
	queue.orders = remaining
	queue.mu.Unlock()

	if order == nil {
		return errors.NewErrorDetails(
			"order not found in the queue",
			string(errors.GeneralNotFoundError), "orderId")
	}

	order.Status = orderv1.StatusCanceled
	order.UpdatedAt = time.Now().UTC()
	if err := e.deps.Orders.Update(ctx, order); err != nil {
		e.deps.Logger.ErrorContext(ctx, err,
			logger.NewField("operation", "cancel"),
			logger.NewField("order_id", orderID),
		)
	}

	e.refundRemaining(ctx, order)

	if order.Type == orderv1.TypeLimit && order.InBook {
		precision := e.deps.Registry.PricePrecision(ctx, symbol)
		priceKey := orderbookv1.PriceKey(order.Price, precision)
		delta := orderbookv1.Delta{
			Symbol:   symbol,
			Side:     order.Side,
			PriceKey: priceKey,
			Amount:   new(big.Int).Neg(order.Remaining),
		}

		queue.mu.Lock()
		queue.book.Apply(delta)
		amount := queue.book.Amount(order.Side, priceKey)
		queue.mu.Unlock()

		if err := e.deps.Books.SaveLevel(ctx, symbol, order.Side, priceKey, amount); err != nil {
			e.deps.Logger.ErrorContext(ctx, err,
				logger.NewField("operation", "cancel"),
				logger.NewField("order_id", orderID),
			)
		}
		e.deps.Broadcaster.BookUpdate(ctx, symbol, []orderbookv1.Delta{delta})
	}

	e.deps.Broadcaster.OrderUpdate(ctx, order)
	e.wake(queue)
	return nil
}
