// Package order persists orders in the wide-row store. Rows are append
// only; the current state of an order is its latest row by updated_at, the
// table's designated timestamp, resolved with LATEST ON.
package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/questdb"
)

const columns = `id, user_id, symbol, side, type, price, amount, filled,
	remaining, cost, fee, fee_currency, status, trades, created_at, updated_at`

const insertQuery = `INSERT INTO orders (` + columns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

// Repository stores orders in the wide-row store.
type Repository struct {
	client questdb.QuestDBClient
}

var _ orderv1.Repository = (*Repository)(nil)

// NewRepository creates an order repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store appends the order's current state.
func (r *Repository) Store(ctx context.Context, order *orderv1.Order) error {
	row, err := fromOrder(order)
	if err != nil {
		return err
	}
	if err := r.client.Exec(ctx, insertQuery, args(row)...); err != nil {
		return fmt.Errorf("failed to store order %s: %w", order.ID, err)
	}
	return nil
}

// Update appends a new state row for the order.
func (r *Repository) Update(ctx context.Context, order *orderv1.Order) error {
	return r.Store(ctx, order)
}

// QueueUpsert appends the order's state row to the shared write batch.
func (r *Repository) QueueUpsert(batch *pgx.Batch, order *orderv1.Order) {
	row, err := fromOrder(order)
	if err != nil {
		// Trade marshalling only fails on unencodable values, which the
		// domain types cannot produce; queue nothing and let the
		// integrity pass reconcile if it ever happens.
		return
	}
	batch.Queue(insertQuery, args(row)...)
}

// GetOpen returns the latest state of every open order, oldest first.
func (r *Repository) GetOpen(ctx context.Context) ([]*orderv1.Order, error) {
	query := `SELECT ` + columns + ` FROM (orders LATEST ON updated_at PARTITION BY id)
		WHERE status = 'OPEN' ORDER BY created_at ASC`
	return r.queryOrders(ctx, query)
}

// GetOpenBySymbol returns the latest state of a symbol's open orders,
// oldest first.
func (r *Repository) GetOpenBySymbol(ctx context.Context, symbol string) ([]*orderv1.Order, error) {
	query := `SELECT ` + columns + ` FROM (orders LATEST ON updated_at PARTITION BY id)
		WHERE status = 'OPEN' AND symbol = $1 ORDER BY created_at ASC`
	return r.queryOrders(ctx, query, symbol)
}

// GetByID returns the latest state of one order, nil when unknown.
func (r *Repository) GetByID(ctx context.Context, id string) (*orderv1.Order, error) {
	query := `SELECT ` + columns + ` FROM (orders LATEST ON updated_at PARTITION BY id)
		WHERE id = $1 LIMIT 1`

	row := &row{}
	err := r.client.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.UserID, &row.Symbol, &row.Side, &row.Type,
		&row.Price, &row.Amount, &row.Filled, &row.Remaining, &row.Cost,
		&row.Fee, &row.FeeCurrency, &row.Status, &row.Trades,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return row.toOrder()
}

func (r *Repository) queryOrders(ctx context.Context, query string, queryArgs ...any) ([]*orderv1.Order, error) {
	rows, err := r.client.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*orderv1.Order
	for rows.Next() {
		row := &row{}
		err := rows.Scan(
			&row.ID, &row.UserID, &row.Symbol, &row.Side, &row.Type,
			&row.Price, &row.Amount, &row.Filled, &row.Remaining, &row.Cost,
			&row.Fee, &row.FeeCurrency, &row.Status, &row.Trades,
			&row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		order, err := row.toOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

func args(r *row) []any {
	return []any{
		r.ID, r.UserID, r.Symbol, r.Side, r.Type, r.Price, r.Amount,
		r.Filled, r.Remaining, r.Cost, r.Fee, r.FeeCurrency, r.Status,
		r.Trades, r.CreatedAt, r.UpdatedAt,
	}
}
