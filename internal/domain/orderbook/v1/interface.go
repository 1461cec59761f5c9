package orderbookv1

import (
	"context"
	"math/big"

	"github.com/jackc/pgx/v5"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// Repository persists aggregated book levels and rebuilds books on startup.
type Repository interface {
	GetBook(ctx context.Context, symbol string) (*Book, error)
	SaveLevel(ctx context.Context, symbol string, side orderv1.Side, priceKey string, amount *big.Int) error
	DeleteLevel(ctx context.Context, symbol string, side orderv1.Side, priceKey string) error

	// QueueLevel appends the statement writing one level's new absolute
	// amount to the shared persistence batch. A zero amount deletes the row.
	QueueLevel(batch *pgx.Batch, symbol string, side orderv1.Side, priceKey string, amount *big.Int)
}
