package marketv1

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=mock/registry_mock.go -package=mock

// Repository loads market metadata from the relational store.
type Repository interface {
	Get(ctx context.Context, symbol string) (*Market, error)
	GetAll(ctx context.Context) ([]*Market, error)
}

// Registry answers precision lookups during matching. Implementations cache
// lookups, including misses, so a symbol with no metadata row resolves to a
// default precision without hitting the store every pass.
type Registry interface {
	PricePrecision(ctx context.Context, symbol string) int
	AmountPrecision(ctx context.Context, symbol string) int
	Market(ctx context.Context, symbol string) (*Market, error)
}
