// Package engine wires the matching, settlement, candle and integrity
// usecases into one process: per-symbol queues fed by the order intake,
// batched matching passes, batched persistence and best-effort broadcast.
package engine

import (
	"context"
	"sync"
	"time"

	broadcastv1 "github.com/techcsc21/trade4u-sub008/internal/domain/broadcast/v1"
	candlev1 "github.com/techcsc21/trade4u-sub008/internal/domain/candle/v1"
	marketv1 "github.com/techcsc21/trade4u-sub008/internal/domain/market/v1"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
	walletv1 "github.com/techcsc21/trade4u-sub008/internal/domain/wallet/v1"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/candle"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/integrity"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/matching"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/orderintake"
	"github.com/techcsc21/trade4u-sub008/pkg/config"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
	"github.com/techcsc21/trade4u-sub008/pkg/questdb"
)

// Deps are the collaborators the engine is constructed with. Every field
// is required.
type Deps struct {
	Config      config.EngineConfig
	Orders      orderv1.Repository
	Books       orderbookv1.Repository
	Candles     *candle.Usecase
	CandleRepo  candlev1.Repository
	Wallets     walletv1.Service
	Registry    marketv1.Registry
	Markets     marketv1.Repository
	Matcher     *matching.Usecase
	Integrity   *integrity.Usecase
	Broadcaster broadcastv1.Broadcaster
	Intake      orderintake.Intake
	Store       questdb.QuestDBClient
	Logger      logger.Interface
}

// symbolQueue is the in-memory state of one symbol: its open orders in
// arrival order and the aggregated book the matching passes mutate.
type symbolQueue struct {
	mu       sync.Mutex
	symbol   string
	orders   []*orderv1.Order
	book     *orderbookv1.Book
	failures int
	trigger  chan struct{}
}

// Engine owns the per-symbol queues and the control loop.
type Engine struct {
	deps  Deps
	locks *keyedLock

	mu     sync.Mutex
	queues map[string]*symbolQueue

	wg sync.WaitGroup

	// loopCtx is set by Run and carries the lifetime of the workers.
	loopCtx    context.Context
	loopCancel context.CancelFunc
}

// New builds an engine and seeds its state from the stores: active markets,
// the open-order queue of every symbol and the current candle of every
// (symbol, interval) pair, then runs one reconciliation pass over every
// symbol before matching starts. Seeding failure is the only fatal error
// path; reconciliation failures are logged and retried on the next heal.
func New(ctx context.Context, deps Deps) (*Engine, error) {
	e := &Engine{
		deps:   deps,
		locks:  newKeyedLock(),
		queues: make(map[string]*symbolQueue),
	}

	markets, err := deps.Markets.GetAll(ctx)
	if err != nil {
		return nil, errors.NewTracer("engine init: failed to load markets").Wrap(err)
	}

	symbols := make([]string, 0, len(markets))
	for _, market := range markets {
		symbols = append(symbols, market.Symbol)
	}

	open, err := deps.Orders.GetOpen(ctx)
	if err != nil {
		return nil, errors.NewTracer("engine init: failed to seed order queues").Wrap(err)
	}
	for _, order := range open {
		queue, err := e.queueFor(ctx, order.Symbol)
		if err != nil {
			return nil, errors.NewTracer("engine init: failed to load book for "+order.Symbol).Wrap(err)
		}
		queue.orders = append(queue.orders, order)
	}

	// Symbols with no open orders still need their book and candles warm.
	for _, symbol := range symbols {
		if _, err := e.queueFor(ctx, symbol); err != nil {
			return nil, errors.NewTracer("engine init: failed to load book for "+symbol).Wrap(err)
		}
	}

	if err := deps.Candles.Seed(ctx, e.symbols()); err != nil {
		return nil, errors.NewTracer("engine init: failed to seed candles").Wrap(err)
	}

	// Reconcile stored state before the first matching pass. Drift
	// accumulated while the process was down (ghost book levels,
	// under-locked orders) would otherwise survive until a persistence
	// failure crosses the resync threshold.
	e.mu.Lock()
	queues := make([]*symbolQueue, 0, len(e.queues))
	for _, queue := range e.queues {
		queues = append(queues, queue)
	}
	e.mu.Unlock()
	for _, queue := range queues {
		e.selfHeal(ctx, queue)
	}

	deps.Logger.InfoContext(ctx, "engine seeded",
		logger.NewField("markets", len(markets)),
		logger.NewField("open_orders", len(open)),
	)
	return e, nil
}

// queueFor returns the symbol's queue, creating it with a freshly loaded
// book on first sight. Callers hold no queue mutex.
func (e *Engine) queueFor(ctx context.Context, symbol string) (*symbolQueue, error) {
	e.mu.Lock()
	if queue, ok := e.queues[symbol]; ok {
		e.mu.Unlock()
		return queue, nil
	}
	e.mu.Unlock()

	book, err := e.deps.Books.GetBook(ctx, symbol)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if queue, ok := e.queues[symbol]; ok {
		return queue, nil
	}
	queue := &symbolQueue{
		symbol:  symbol,
		book:    book,
		trigger: make(chan struct{}, 1),
	}
	e.queues[symbol] = queue
	if e.loopCtx != nil {
		e.startWorker(queue)
	}
	return queue, nil
}

func (e *Engine) symbols() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	symbols := make([]string, 0, len(e.queues))
	for symbol := range e.queues {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// Run starts one worker per symbol plus the intake loop and blocks until
// the context is canceled and every worker has drained.
func (e *Engine) Run(ctx context.Context) error {
	e.loopCtx, e.loopCancel = context.WithCancel(ctx)

	e.mu.Lock()
	for _, queue := range e.queues {
		e.startWorker(queue)
	}
	e.mu.Unlock()

	e.wg.Add(1)
	go e.intakeLoop(e.loopCtx)

	<-e.loopCtx.Done()
	if err := e.deps.Intake.Close(); err != nil {
		e.deps.Logger.Error(err, logger.NewField("operation", "intake close"))
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(e.deps.Config.ShutdownTimeout):
		e.deps.Logger.Warn("shutdown timed out waiting for workers")
	}
	return nil
}

// Stop cancels the control loop. Safe to call before Run.
func (e *Engine) Stop() {
	if e.loopCancel != nil {
		e.loopCancel()
	}
}

func (e *Engine) startWorker(queue *symbolQueue) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for {
			select {
			case <-e.loopCtx.Done():
				return
			case <-queue.trigger:
				e.processSymbol(e.loopCtx, queue)
			}
		}
	}()
}

// intakeLoop drains the order feed into the symbol queues. Transport
// errors back off briefly; the loop only exits with the context.
func (e *Engine) intakeLoop(ctx context.Context) {
	defer e.wg.Done()
	for {
		order, err := e.deps.Intake.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			e.deps.Logger.ErrorContext(ctx, err, logger.NewField("operation", "intake"))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		e.Submit(ctx, order)
	}
}

// Submit enqueues one order and wakes its symbol's worker.
func (e *Engine) Submit(ctx context.Context, order *orderv1.Order) {
	queue, err := e.queueFor(ctx, order.Symbol)
	if err != nil {
		e.deps.Logger.ErrorContext(ctx, err,
			logger.NewField("operation", "submit"),
			logger.NewField("symbol", order.Symbol),
			logger.NewField("order_id", order.ID),
		)
		return
	}

	queue.mu.Lock()
	queue.orders = append(queue.orders, order)
	queue.mu.Unlock()

	e.wake(queue)
}

func (e *Engine) wake(queue *symbolQueue) {
	select {
	case queue.trigger <- struct{}{}:
	default:
	}
}
