package candlev1

import (
	"math/big"
	"time"

	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/interval"
)

// Candle is one OHLCV bucket for a (symbol, interval) pair. Monetary fields
// are fixed-point scaled integers; Volume aggregates base amounts.
type Candle struct {
	Symbol    string    `json:"symbol"`
	Interval  string    `json:"interval"`
	OpenTime  time.Time `json:"openTime"`
	CloseTime time.Time `json:"closeTime"`
	Open      *big.Int  `json:"open"`
	High      *big.Int  `json:"high"`
	Low       *big.Int  `json:"low"`
	Close     *big.Int  `json:"close"`
	Volume    *big.Int  `json:"volume"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCandle opens a fresh bucket at the trade price. Rollover candles use
// the previous close as open instead, see Roll.
func NewCandle(symbol string, iv interval.Interval, tradeTime time.Time, price, amount *big.Int) *Candle {
	openTime, closeTime := iv.BucketRange(tradeTime)
	return &Candle{
		Symbol:    symbol,
		Interval:  iv.Name,
		OpenTime:  openTime,
		CloseTime: closeTime,
		Open:      fixedpoint.Clone(price),
		High:      fixedpoint.Clone(price),
		Low:       fixedpoint.Clone(price),
		Close:     fixedpoint.Clone(price),
		Volume:    fixedpoint.Clone(amount),
		UpdatedAt: tradeTime,
	}
}

// Roll opens the successor bucket for a trade that falls past this candle's
// close time. The new candle opens at this candle's close so consecutive
// buckets stay price-continuous, then absorbs the trade.
func (c *Candle) Roll(iv interval.Interval, tradeTime time.Time, price, amount *big.Int) *Candle {
	openTime, closeTime := iv.BucketRange(tradeTime)
	next := &Candle{
		Symbol:    c.Symbol,
		Interval:  c.Interval,
		OpenTime:  openTime,
		CloseTime: closeTime,
		Open:      fixedpoint.Clone(c.Close),
		High:      fixedpoint.Clone(c.Close),
		Low:       fixedpoint.Clone(c.Close),
		Close:     fixedpoint.Clone(c.Close),
		Volume:    big.NewInt(0),
		UpdatedAt: tradeTime,
	}
	next.Absorb(tradeTime, price, amount)
	return next
}

// Absorb folds one trade into the candle in place.
func (c *Candle) Absorb(tradeTime time.Time, price, amount *big.Int) {
	if price.Cmp(c.High) > 0 {
		c.High = fixedpoint.Clone(price)
	}
	if price.Cmp(c.Low) < 0 {
		c.Low = fixedpoint.Clone(price)
	}
	c.Close = fixedpoint.Clone(price)
	c.Volume = fixedpoint.Add(c.Volume, amount)
	c.UpdatedAt = tradeTime
}

// Contains reports whether the trade time falls inside this bucket.
func (c *Candle) Contains(tradeTime time.Time) bool {
	return !tradeTime.Before(c.OpenTime) && tradeTime.Before(c.CloseTime)
}

// Ticker is the 24h-style market summary derived from the daily candle.
// Change is the absolute last-minus-open move, Percentage the relative one.
type Ticker struct {
	Symbol     string    `json:"symbol"`
	Open       *big.Int  `json:"open"`
	High       *big.Int  `json:"high"`
	Low        *big.Int  `json:"low"`
	Last       *big.Int  `json:"last"`
	Volume     *big.Int  `json:"volume"`
	Change     *big.Int  `json:"change"`
	Percentage *big.Int  `json:"percentage"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TickerFromCandle derives a ticker from a daily candle. The daily open is
// the prior day's close, so both change figures measure against it.
// Percentage is the last-over-open ratio minus one, scaled, zero when open
// is zero.
func TickerFromCandle(c *Candle) *Ticker {
	percentage := big.NewInt(0)
	if c.Open.Sign() != 0 {
		percentage = fixedpoint.Sub(fixedpoint.Ratio(c.Close, c.Open), fixedpoint.Scale)
	}
	return &Ticker{
		Symbol:     c.Symbol,
		Open:       fixedpoint.Clone(c.Open),
		High:       fixedpoint.Clone(c.High),
		Low:        fixedpoint.Clone(c.Low),
		Last:       fixedpoint.Clone(c.Close),
		Volume:     fixedpoint.Clone(c.Volume),
		Change:     fixedpoint.Sub(c.Close, c.Open),
		Percentage: percentage,
		UpdatedAt:  c.UpdatedAt,
	}
}
