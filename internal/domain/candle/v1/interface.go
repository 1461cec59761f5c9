package candlev1

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// Repository persists candle buckets, one row per (symbol, interval, openTime).
type Repository interface {
	GetLatest(ctx context.Context, symbol, intervalName string) (*Candle, error)
	GetRange(ctx context.Context, symbol, intervalName string, from, to time.Time) ([]*Candle, error)

	// QueueUpsert appends the candle's upsert statement to the shared
	// persistence batch.
	QueueUpsert(batch *pgx.Batch, candle *Candle)
}
