// Package orderbook persists aggregated book levels in the wide-row store.
// Level rows are append only; the current book is the latest row per
// (side, price) resolved with LATEST ON, and a zero amount row tombstones
// its level.
package orderbook

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	orderbookv1 "github.com/techcsc21/trade4u-sub008/internal/domain/orderbook/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/questdb"
)

const insertQuery = `INSERT INTO orderbook (symbol, side, price, amount, ts)
	VALUES ($1, $2, $3, $4, $5)`

// Repository stores book levels in the wide-row store.
type Repository struct {
	client questdb.QuestDBClient
	now    func() time.Time
}

var _ orderbookv1.Repository = (*Repository)(nil)

// NewRepository creates a book repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
		now:    time.Now,
	}
}

// GetBook rebuilds a symbol's aggregated book from the latest level rows.
func (r *Repository) GetBook(ctx context.Context, symbol string) (*orderbookv1.Book, error) {
	query := `SELECT side, price, amount
		FROM (orderbook LATEST ON ts PARTITION BY side, price)
		WHERE symbol = $1 AND amount != '0'`

	rows, err := r.client.Query(ctx, query, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to query book for %s: %w", symbol, err)
	}
	defer rows.Close()

	book := orderbookv1.NewBook(symbol)
	for rows.Next() {
		var side, price, amount string
		if err := rows.Scan(&side, &price, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan book level: %w", err)
		}
		parsed, ok := new(big.Int).SetString(amount, 10)
		if !ok {
			return nil, fmt.Errorf("book level %s/%s holds malformed amount %q", side, price, amount)
		}
		book.Side(orderv1.Side(side))[price] = parsed
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book levels: %w", err)
	}
	return book, nil
}

// SaveLevel writes one level's absolute amount.
func (r *Repository) SaveLevel(ctx context.Context, symbol string, side orderv1.Side, priceKey string, amount *big.Int) error {
	if err := r.client.Exec(ctx, insertQuery, symbol, string(side), priceKey, encode(amount), r.now().UTC()); err != nil {
		return fmt.Errorf("failed to save book level %s %s %s: %w", symbol, side, priceKey, err)
	}
	return nil
}

// DeleteLevel tombstones one level with a zero amount row.
func (r *Repository) DeleteLevel(ctx context.Context, symbol string, side orderv1.Side, priceKey string) error {
	return r.SaveLevel(ctx, symbol, side, priceKey, big.NewInt(0))
}

// QueueLevel appends one level write to the shared batch. A zero amount
// tombstones the level.
func (r *Repository) QueueLevel(batch *pgx.Batch, symbol string, side orderv1.Side, priceKey string, amount *big.Int) {
	batch.Queue(insertQuery, symbol, string(side), priceKey, encode(amount), r.now().UTC())
}

func encode(x *big.Int) string {
	if x == nil {
		return "0"
	}
	return x.String()
}
