// Package candle persists OHLCV buckets in the wide-row store. The candles
// table deduplicates on (created_at, symbol, interval), so re-inserting a
// bucket overwrites its previous state.
package candle

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	candlev1 "github.com/techcsc21/trade4u-sub008/internal/domain/candle/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/interval"
	"github.com/techcsc21/trade4u-sub008/pkg/questdb"
)

const columns = `symbol, interval, created_at, open, high, low, close, volume, updated_at`

const upsertQuery = `INSERT INTO candles (` + columns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Repository stores candles in the wide-row store.
type Repository struct {
	client questdb.QuestDBClient
}

var _ candlev1.Repository = (*Repository)(nil)

// NewRepository creates a candle repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// GetLatest returns the newest bucket for a (symbol, interval) pair, nil
// when the pair has no history.
func (r *Repository) GetLatest(ctx context.Context, symbol, intervalName string) (*candlev1.Candle, error) {
	query := `SELECT ` + columns + ` FROM candles
		WHERE symbol = $1 AND interval = $2
		ORDER BY created_at DESC LIMIT 1`

	candle := &candlev1.Candle{}
	var open, high, low, cls, volume string
	var createdAt time.Time

	err := r.client.QueryRow(ctx, query, symbol, intervalName).Scan(
		&candle.Symbol, &candle.Interval, &createdAt,
		&open, &high, &low, &cls, &volume, &candle.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest candle: %w", err)
	}

	if err := fill(candle, createdAt, open, high, low, cls, volume); err != nil {
		return nil, err
	}
	return candle, nil
}

// GetRange returns the buckets of a (symbol, interval) pair inside
// [from, to), oldest first.
func (r *Repository) GetRange(ctx context.Context, symbol, intervalName string, from, to time.Time) ([]*candlev1.Candle, error) {
	query := `SELECT ` + columns + ` FROM candles
		WHERE symbol = $1 AND interval = $2 AND created_at >= $3 AND created_at < $4
		ORDER BY created_at ASC`

	rows, err := r.client.Query(ctx, query, symbol, intervalName, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query candles: %w", err)
	}
	defer rows.Close()

	var candles []*candlev1.Candle
	for rows.Next() {
		candle := &candlev1.Candle{}
		var open, high, low, cls, volume string
		var createdAt time.Time

		err := rows.Scan(
			&candle.Symbol, &candle.Interval, &createdAt,
			&open, &high, &low, &cls, &volume, &candle.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candle: %w", err)
		}
		if err := fill(candle, createdAt, open, high, low, cls, volume); err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candles: %w", err)
	}
	return candles, nil
}

// QueueUpsert appends the candle's row to the shared write batch.
func (r *Repository) QueueUpsert(batch *pgx.Batch, candle *candlev1.Candle) {
	batch.Queue(upsertQuery,
		candle.Symbol, candle.Interval, candle.OpenTime,
		encode(candle.Open), encode(candle.High), encode(candle.Low),
		encode(candle.Close), encode(candle.Volume), candle.UpdatedAt,
	)
}

func fill(candle *candlev1.Candle, createdAt time.Time, open, high, low, cls, volume string) error {
	iv, err := interval.Get(candle.Interval)
	if err != nil {
		return fmt.Errorf("candle row carries %w", err)
	}
	candle.OpenTime, candle.CloseTime = iv.BucketRange(createdAt)

	for name, pair := range map[string]struct {
		value string
		dst   **big.Int
	}{
		"open":   {open, &candle.Open},
		"high":   {high, &candle.High},
		"low":    {low, &candle.Low},
		"close":  {cls, &candle.Close},
		"volume": {volume, &candle.Volume},
	} {
		parsed, ok := new(big.Int).SetString(pair.value, 10)
		if !ok {
			return fmt.Errorf("candle column %s holds malformed scaled integer %q", name, pair.value)
		}
		*pair.dst = parsed
	}
	return nil
}

func encode(x *big.Int) string {
	if x == nil {
		return "0"
	}
	return x.String()
}
