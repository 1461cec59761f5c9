// Package candle aggregates fills into OHLCV buckets across all supported
// intervals and derives the per-symbol ticker from the daily bucket.
package candle

import (
	"context"
	"math/big"
	"sync"
	"time"

	candlev1 "github.com/techcsc21/trade4u-sub008/internal/domain/candle/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/interval"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
)

// Usecase keeps one cached current candle per (symbol, interval) and folds
// fills into it, rolling the bucket over when a fill lands past its close.
type Usecase struct {
	repo   candlev1.Repository
	logger logger.Interface

	mu    sync.Mutex
	cache map[string]*candlev1.Candle
}

// NewUsecase creates a candle usecase with an empty cache.
func NewUsecase(repo candlev1.Repository, log logger.Interface) *Usecase {
	return &Usecase{
		repo:   repo,
		logger: log,
		cache:  make(map[string]*candlev1.Candle),
	}
}

func cacheKey(symbol, intervalName string) string {
	return symbol + "|" + intervalName
}

// Seed loads the latest stored candle for every (symbol, interval) pair so
// that a restart continues the same buckets instead of opening fresh ones.
// A symbol with no history simply starts cold.
func (u *Usecase) Seed(ctx context.Context, symbols []string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, symbol := range symbols {
		for _, iv := range interval.AllIntervals {
			candle, err := u.repo.GetLatest(ctx, symbol, iv.Name)
			if err != nil {
				return err
			}
			if candle == nil {
				continue
			}
			u.cache[cacheKey(symbol, iv.Name)] = candle
		}
	}
	return nil
}

// Absorb folds one fill into the current candle of every interval and
// returns the candles that changed, one per interval.
//
// A fill inside the cached bucket mutates it in place. A fill past the
// bucket's close opens the successor with open equal to the previous close.
// A symbol with no cached candle opens its first bucket at the trade price.
func (u *Usecase) Absorb(ctx context.Context, symbol string, price, amount *big.Int, tradeTime time.Time) []*candlev1.Candle {
	u.mu.Lock()
	defer u.mu.Unlock()

	updated := make([]*candlev1.Candle, 0, len(interval.AllIntervals))
	for _, iv := range interval.AllIntervals {
		key := cacheKey(symbol, iv.Name)
		current, ok := u.cache[key]

		switch {
		case !ok:
			current = candlev1.NewCandle(symbol, iv, tradeTime, price, amount)
		case current.Contains(tradeTime):
			current.Absorb(tradeTime, price, amount)
		case tradeTime.Before(current.OpenTime):
			// Late fill behind the current bucket; fold it into the
			// current candle's volume so totals stay right, price
			// fields keep the newer data.
			current.Volume = new(big.Int).Add(current.Volume, amount)
			current.UpdatedAt = tradeTime
		default:
			current = current.Roll(iv, tradeTime, price, amount)
		}

		u.cache[key] = current
		updated = append(updated, current)
	}
	return updated
}

// Current returns the cached candle for a (symbol, interval) pair, nil when
// the symbol has seen no fill and had no stored history.
func (u *Usecase) Current(symbol, intervalName string) *candlev1.Candle {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cache[cacheKey(symbol, intervalName)]
}

// Ticker derives the market summary from the daily candle. Without a
// current-day candle the ticker is all zeros.
func (u *Usecase) Ticker(ctx context.Context, symbol string) *candlev1.Ticker {
	u.mu.Lock()
	daily := u.cache[cacheKey(symbol, interval.Interval1d.Name)]
	u.mu.Unlock()

	if daily == nil || !daily.Contains(time.Now().UTC()) {
		return &candlev1.Ticker{
			Symbol:     symbol,
			Open:       big.NewInt(0),
			High:       big.NewInt(0),
			Low:        big.NewInt(0),
			Last:       big.NewInt(0),
			Volume:     big.NewInt(0),
			Change:     big.NewInt(0),
			Percentage: big.NewInt(0),
			UpdatedAt:  time.Now().UTC(),
		}
	}
	return candlev1.TickerFromCandle(daily)
}
