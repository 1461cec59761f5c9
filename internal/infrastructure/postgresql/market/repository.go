// Package market loads trading pair metadata from the relational store and
// answers precision lookups with a cache that also remembers misses.
package market

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	marketv1 "github.com/techcsc21/trade4u-sub008/internal/domain/market/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
	"github.com/techcsc21/trade4u-sub008/pkg/postgresql"
)

// Repository loads markets from PostgreSQL.
type Repository struct {
	client postgresql.PostgreSQLClient
}

var _ marketv1.Repository = (*Repository)(nil)

// NewRepository creates a market repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
	}
}

const columns = `symbol, base_currency, quote_currency, price_precision, amount_precision, active`

// Get loads one market by symbol.
func (r *Repository) Get(ctx context.Context, symbol string) (*marketv1.Market, error) {
	query := `SELECT ` + columns + ` FROM markets WHERE symbol = $1`

	market := &marketv1.Market{}
	err := r.client.QueryRow(ctx, query, symbol).Scan(
		&market.Symbol, &market.BaseCurrency, &market.QuoteCurrency,
		&market.PricePrecision, &market.AmountPrecision, &market.Active,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.NewErrorDetails(
				fmt.Sprintf("unknown market %s", symbol),
				string(errors.MarketNotFound), "symbol")
		}
		return nil, fmt.Errorf("failed to get market %s: %w", symbol, err)
	}
	return market, nil
}

// GetAll loads every active market.
func (r *Repository) GetAll(ctx context.Context) ([]*marketv1.Market, error) {
	query := `SELECT ` + columns + ` FROM markets WHERE active = true ORDER BY symbol`

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query markets: %w", err)
	}
	defer rows.Close()

	var markets []*marketv1.Market
	for rows.Next() {
		market := &marketv1.Market{}
		err := rows.Scan(
			&market.Symbol, &market.BaseCurrency, &market.QuoteCurrency,
			&market.PricePrecision, &market.AmountPrecision, &market.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market: %w", err)
		}
		markets = append(markets, market)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating markets: %w", err)
	}
	return markets, nil
}

// Registry caches market lookups, misses included, in front of a
// repository. A symbol with no metadata row resolves to the default
// precision without another store round trip.
type Registry struct {
	repo             marketv1.Repository
	logger           logger.Interface
	defaultPrecision int

	mu    sync.RWMutex
	cache map[string]*marketv1.Market
}

var _ marketv1.Registry = (*Registry)(nil)

// NewRegistry creates a caching registry over the repository.
func NewRegistry(repo marketv1.Repository, defaultPrecision int, log logger.Interface) *Registry {
	return &Registry{
		repo:             repo,
		logger:           log,
		defaultPrecision: defaultPrecision,
		cache:            make(map[string]*marketv1.Market),
	}
}

// Market returns the cached metadata for a symbol, nil for a cached miss.
func (r *Registry) Market(ctx context.Context, symbol string) (*marketv1.Market, error) {
	r.mu.RLock()
	market, ok := r.cache[symbol]
	r.mu.RUnlock()
	if ok {
		return market, nil
	}

	market, err := r.repo.Get(ctx, symbol)
	if err != nil {
		if !errors.ErrorCodeEquals(err, errors.MarketNotFound) {
			return nil, err
		}
		r.logger.WarnContext(ctx, "market metadata missing, assuming defaults",
			logger.NewField("symbol", symbol),
			logger.NewField("default_precision", r.defaultPrecision),
		)
		market = nil
	}

	r.mu.Lock()
	r.cache[symbol] = market
	r.mu.Unlock()
	return market, nil
}

// PricePrecision returns the symbol's price precision, the default on a miss.
func (r *Registry) PricePrecision(ctx context.Context, symbol string) int {
	market, err := r.Market(ctx, symbol)
	if err != nil || market == nil {
		return r.defaultPrecision
	}
	return market.PricePrecision
}

// AmountPrecision returns the symbol's amount precision, the default on a miss.
func (r *Registry) AmountPrecision(ctx context.Context, symbol string) int {
	market, err := r.Market(ctx, symbol)
	if err != nil || market == nil {
		return r.defaultPrecision
	}
	return market.AmountPrecision
}
