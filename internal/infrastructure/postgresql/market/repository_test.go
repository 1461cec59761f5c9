package market

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	marketv1 "github.com/techcsc21/trade4u-sub008/internal/domain/market/v1"
	marketmock "github.com/techcsc21/trade4u-sub008/internal/domain/market/v1/mock"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
	pgmock "github.com/techcsc21/trade4u-sub008/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// rowStub satisfies pgx.Row for a scripted scan.
type rowStub struct {
	scan func(dest ...any) error
}

func (r *rowStub) Scan(dest ...any) error {
	return r.scan(dest...)
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(mock *pgmock.MockPostgreSQLClient)
		assertFn func(t *testing.T, market *marketv1.Market, err error)
	}{
		{
			name: "success",
			mockFn: func(mock *pgmock.MockPostgreSQLClient) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "BTC/USDT").
					Return(&rowStub{scan: func(dest ...any) error {
						*dest[0].(*string) = "BTC/USDT"
						*dest[1].(*string) = "BTC"
						*dest[2].(*string) = "USDT"
						*dest[3].(*int) = 2
						*dest[4].(*int) = 6
						*dest[5].(*bool) = true
						return nil
					}})
			},
			assertFn: func(t *testing.T, market *marketv1.Market, err error) {
				require.NoError(t, err)
				assert.Equal(t, "BTC", market.BaseCurrency)
				assert.Equal(t, 2, market.PricePrecision)
				assert.True(t, market.Active)
			},
		},
		{
			name: "error - unknown symbol",
			mockFn: func(mock *pgmock.MockPostgreSQLClient) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "BTC/USDT").
					Return(&rowStub{scan: func(dest ...any) error {
						return pgx.ErrNoRows
					}})
			},
			assertFn: func(t *testing.T, market *marketv1.Market, err error) {
				assert.Nil(t, market)
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, errors.MarketNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := pgmock.NewMockPostgreSQLClient(ctrl)
			tc.mockFn(client)

			market, err := NewRepository(client).Get(context.Background(), "BTC/USDT")
			tc.assertFn(t, market, err)
		})
	}
}

func TestRegistry_CachesLookups(t *testing.T) {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	repo := marketmock.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "BTC/USDT").Return(&marketv1.Market{
		Symbol:          "BTC/USDT",
		PricePrecision:  2,
		AmountPrecision: 6,
	}, nil).Times(1)

	registry := NewRegistry(repo, 8, log)

	// The second lookup never reaches the repository.
	assert.Equal(t, 2, registry.PricePrecision(context.Background(), "BTC/USDT"))
	assert.Equal(t, 2, registry.PricePrecision(context.Background(), "BTC/USDT"))
	assert.Equal(t, 6, registry.AmountPrecision(context.Background(), "BTC/USDT"))
}

func TestRegistry_CachesMisses(t *testing.T) {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	missing := errors.NewErrorDetails("unknown market", string(errors.MarketNotFound), "symbol")
	repo := marketmock.NewMockRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "DOGE/USDT").Return(nil, missing).Times(1)

	registry := NewRegistry(repo, 8, log)

	// A miss resolves to the default precision and is itself cached.
	assert.Equal(t, 8, registry.PricePrecision(context.Background(), "DOGE/USDT"))
	assert.Equal(t, 8, registry.PricePrecision(context.Background(), "DOGE/USDT"))

	market, err := registry.Market(context.Background(), "DOGE/USDT")
	require.NoError(t, err)
	assert.Nil(t, market)
}
