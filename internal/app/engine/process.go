package engine

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	candlev1 "github.com/techcsc21/trade4u-sub008/internal/domain/candle/v1"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/matching"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
)

// lockRetryDelay paces the re-trigger after a batch lost the race for one
// of its order locks.
const lockRetryDelay = 10 * time.Millisecond

// processSymbol runs one batch for a symbol: lock the queued orders, match,
// fold fills into candles, persist every mutation as one store batch and
// broadcast the outcome. Settlement runs inside the matching pass, pair by
// pair.
func (e *Engine) processSymbol(ctx context.Context, queue *symbolQueue) {
	queue.mu.Lock()
	queued := make([]*orderv1.Order, len(queue.orders))
	copy(queued, queue.orders)
	queue.mu.Unlock()

	if len(queued) == 0 {
		return
	}

	ids := make([]string, 0, len(queued))
	for _, order := range queued {
		ids = append(ids, order.ID)
	}
	if !e.locks.TryLockAll(ids) {
		e.deps.Logger.DebugContext(ctx, "batch skipped, order lock held elsewhere",
			logger.NewField("symbol", queue.symbol),
			logger.NewField("orders", len(ids)),
		)
		time.AfterFunc(lockRetryDelay, func() { e.wake(queue) })
		return
	}
	defer e.locks.Unlock(ids)

	result := e.deps.Matcher.Match(ctx, queue.symbol, queued)
	if len(result.Touched) == 0 {
		return
	}

	for _, order := range result.Canceled {
		e.refundRemaining(ctx, order)
	}

	candles := e.foldCandles(ctx, result)

	queue.mu.Lock()
	for _, delta := range result.Deltas {
		queue.book.Apply(delta)
	}
	open := queue.orders[:0]
	for _, order := range queue.orders {
		if order.IsOpen() {
			open = append(open, order)
		}
	}
	queue.orders = open
	queue.mu.Unlock()

	e.persist(ctx, queue, result, candles)
	e.broadcast(ctx, queue, result, candles)
}

// foldCandles runs every fill through the candle aggregator and returns
// the buckets that changed, deduplicated per (interval, open time).
func (e *Engine) foldCandles(ctx context.Context, result *matching.Result) []*candlev1.Candle {
	type bucketKey struct {
		interval string
		openTime time.Time
	}
	seen := make(map[bucketKey]*candlev1.Candle)
	var order []bucketKey

	for _, fill := range result.Fills {
		updated := e.deps.Candles.Absorb(ctx, fill.Symbol, fill.Price, fill.Amount, fill.Timestamp)
		for _, c := range updated {
			key := bucketKey{interval: c.Interval, openTime: c.OpenTime}
			if _, ok := seen[key]; !ok {
				order = append(order, key)
			}
			seen[key] = c
		}
	}

	candles := make([]*candlev1.Candle, 0, len(order))
	for _, key := range order {
		candles = append(candles, seen[key])
	}
	return candles
}

// persist writes every order, book level and candle the batch touched in
// one store round trip. A failed write is logged and counted; the
// in-memory state stands, and after enough consecutive failures the drift
// window is closed by a self-heal pass.
func (e *Engine) persist(ctx context.Context, queue *symbolQueue, result *matching.Result, candles []*candlev1.Candle) {
	batch := &pgx.Batch{}
	for _, order := range result.Touched {
		e.deps.Orders.QueueUpsert(batch, order)
	}

	queue.mu.Lock()
	for _, delta := range result.Deltas {
		amount := queue.book.Amount(delta.Side, delta.PriceKey)
		e.deps.Books.QueueLevel(batch, queue.symbol, delta.Side, delta.PriceKey, amount)
	}
	queue.mu.Unlock()

	for _, c := range candles {
		e.deps.CandleRepo.QueueUpsert(batch, c)
	}

	if batch.Len() == 0 {
		return
	}

	if err := e.deps.Store.SendBatch(ctx, batch); err != nil {
		queue.mu.Lock()
		queue.failures++
		failures := queue.failures
		queue.mu.Unlock()

		e.deps.Logger.ErrorContext(ctx, err,
			logger.NewField("symbol", queue.symbol),
			logger.NewField("consecutive_failures", failures),
		)
		if failures >= e.deps.Config.ResyncAfterFailures {
			e.selfHeal(ctx, queue)
		}
		return
	}

	queue.mu.Lock()
	queue.failures = 0
	queue.mu.Unlock()
}

func (e *Engine) broadcast(ctx context.Context, queue *symbolQueue, result *matching.Result, candles []*candlev1.Candle) {
	for _, order := range result.Touched {
		e.deps.Broadcaster.OrderUpdate(ctx, order)
	}
	e.deps.Broadcaster.BookUpdate(ctx, queue.symbol, result.Deltas)
	for _, c := range candles {
		e.deps.Broadcaster.CandleUpdate(ctx, c)
	}
	if len(result.Fills) > 0 {
		e.deps.Broadcaster.TickerUpdate(ctx, e.deps.Candles.Ticker(ctx, queue.symbol))
	}
}

// refundRemaining returns the unspent part of a canceled order's lock: the
// proportional slice of the locked cost for a buy, the remaining base
// amount for a sell. Refund failures are logged; the integrity pass will
// pick the wallet up.
func (e *Engine) refundRemaining(ctx context.Context, order *orderv1.Order) {
	base, quote := orderv1.SplitSymbol(order.Symbol)

	currency := base
	amount := fixedpoint.Clone(order.Remaining)
	if order.IsBuy() {
		currency = quote
		amount = fixedpoint.MulDiv(order.Cost, fixedpoint.Ratio(order.Remaining, order.Amount))
	}
	if amount.Sign() <= 0 {
		return
	}

	wallet, err := e.deps.Wallets.GetWallet(ctx, order.UserID, currency)
	if err != nil {
		e.deps.Logger.ErrorContext(ctx, err,
			logger.NewField("operation", "refund"),
			logger.NewField("order_id", order.ID),
		)
		return
	}
	if err := e.deps.Wallets.Unlock(ctx, wallet, amount); err != nil {
		e.deps.Logger.ErrorContext(ctx, err,
			logger.NewField("operation", "refund"),
			logger.NewField("order_id", order.ID),
		)
	}
}

// selfHeal reconciles the symbol against the stores and, when orders were
// repaired, reloads the queue and book and schedules a fresh matching pass.
func (e *Engine) selfHeal(ctx context.Context, queue *symbolQueue) {
	report, err := e.deps.Integrity.Run(ctx, []string{queue.symbol})
	if err != nil {
		e.deps.Logger.ErrorContext(ctx, err,
			logger.NewField("operation", "self-heal"),
			logger.NewField("symbol", queue.symbol),
		)
		return
	}

	for _, symbol := range report.BooksTouched {
		if symbol != queue.symbol {
			continue
		}
		book, err := e.deps.Books.GetBook(ctx, symbol)
		if err != nil {
			e.deps.Logger.ErrorContext(ctx, err, logger.NewField("symbol", symbol))
			continue
		}
		queue.mu.Lock()
		queue.book = book
		queue.mu.Unlock()
		e.deps.Broadcaster.BookSnapshot(ctx, book)
	}

	for _, order := range report.Canceled {
		e.refundRemaining(ctx, order)
		e.deps.Broadcaster.OrderUpdate(ctx, order)
	}

	if report.OrdersFixed {
		open, err := e.deps.Orders.GetOpenBySymbol(ctx, queue.symbol)
		if err != nil {
			e.deps.Logger.ErrorContext(ctx, err, logger.NewField("symbol", queue.symbol))
			return
		}
		queue.mu.Lock()
		queue.orders = open
		queue.mu.Unlock()
		e.wake(queue)
	}

	queue.mu.Lock()
	queue.failures = 0
	queue.mu.Unlock()
}
