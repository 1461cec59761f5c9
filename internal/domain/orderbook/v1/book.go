package orderbookv1

import (
	"math/big"

	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
)

// PriceKey renders a scaled price as the canonical book key for its level.
// Prices are quantized to the market precision before keying so that noise
// below the tolerance threshold collapses onto one level.
func PriceKey(price *big.Int, precision int) string {
	return fixedpoint.RemoveTolerance(price, precision).String()
}

// Book is the aggregated order book for one symbol. Each side maps a
// quantized price key to the total open amount resting at that level.
type Book struct {
	Symbol string              `json:"symbol"`
	Bids   map[string]*big.Int `json:"bids"`
	Asks   map[string]*big.Int `json:"asks"`
}

// NewBook creates an empty book for the symbol.
func NewBook(symbol string) *Book {
	return &Book{
		Symbol: symbol,
		Bids:   make(map[string]*big.Int),
		Asks:   make(map[string]*big.Int),
	}
}

// Side returns the level map for the given order side.
func (b *Book) Side(side orderv1.Side) map[string]*big.Int {
	if side == orderv1.SideBuy {
		return b.Bids
	}
	return b.Asks
}

// Amount returns the resting amount at a price level, zero when absent.
func (b *Book) Amount(side orderv1.Side, priceKey string) *big.Int {
	if amount, ok := b.Side(side)[priceKey]; ok {
		return amount
	}
	return big.NewInt(0)
}

// Apply adds a signed delta to a price level. Levels that reach zero are
// removed; a level driven negative is clamped and removed, the caller is
// expected to flag the inconsistency.
func (b *Book) Apply(delta Delta) {
	levels := b.Side(delta.Side)
	current, ok := levels[delta.PriceKey]
	if !ok {
		current = big.NewInt(0)
	}
	next := fixedpoint.Add(current, delta.Amount)
	if next.Sign() <= 0 {
		delete(levels, delta.PriceKey)
		return
	}
	levels[delta.PriceKey] = next
}

// Depth returns the number of populated price levels on both sides.
func (b *Book) Depth() int {
	return len(b.Bids) + len(b.Asks)
}

// Delta is a signed change to one price level of one side. Deltas are
// accumulated per (side, price) over a matching pass and applied once.
type Delta struct {
	Symbol   string       `json:"symbol"`
	Side     orderv1.Side `json:"side"`
	PriceKey string       `json:"price"`
	Amount   *big.Int     `json:"amount"`
}

// DeltaSet accumulates book deltas for a matching pass, merging changes
// that land on the same (side, price) level.
type DeltaSet struct {
	Symbol string
	deltas map[deltaKey]*Delta
	order  []deltaKey
}

type deltaKey struct {
	side     orderv1.Side
	priceKey string
}

// NewDeltaSet creates an empty delta accumulator for the symbol.
func NewDeltaSet(symbol string) *DeltaSet {
	return &DeltaSet{
		Symbol: symbol,
		deltas: make(map[deltaKey]*Delta),
	}
}

// Add merges a signed amount into the delta for (side, priceKey).
func (s *DeltaSet) Add(side orderv1.Side, priceKey string, amount *big.Int) {
	key := deltaKey{side: side, priceKey: priceKey}
	if existing, ok := s.deltas[key]; ok {
		existing.Amount = fixedpoint.Add(existing.Amount, amount)
		return
	}
	s.deltas[key] = &Delta{
		Symbol:   s.Symbol,
		Side:     side,
		PriceKey: priceKey,
		Amount:   fixedpoint.Clone(amount),
	}
	s.order = append(s.order, key)
}

// Deltas returns the accumulated deltas in first-touched order, skipping
// levels whose changes canceled out.
func (s *DeltaSet) Deltas() []Delta {
	out := make([]Delta, 0, len(s.order))
	for _, key := range s.order {
		delta := s.deltas[key]
		if delta.Amount.Sign() == 0 {
			continue
		}
		out = append(out, *delta)
	}
	return out
}
