package orderv1

import (
	"context"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// Repository is the persistence contract for orders. Orders are keyed by
// (user_id, created_at, id) with secondary access by symbol and by status.
type Repository interface {
	Store(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetOpen(ctx context.Context) ([]*Order, error)
	GetOpenBySymbol(ctx context.Context, symbol string) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)

	// QueueUpsert appends the order's upsert statement to a heterogeneous
	// batch applied best-effort together with book and candle deltas.
	QueueUpsert(batch *pgx.Batch, order *Order)
}
