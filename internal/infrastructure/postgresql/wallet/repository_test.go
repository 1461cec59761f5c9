package wallet

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	walletv1 "github.com/techcsc21/trade4u-sub008/internal/domain/wallet/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	pgmock "github.com/techcsc21/trade4u-sub008/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

// rowStub satisfies pgx.Row for a scripted scan.
type rowStub struct {
	scan func(dest ...any) error
}

func (r *rowStub) Scan(dest ...any) error {
	return r.scan(dest...)
}

func newTestRepository(client *pgmock.MockPostgreSQLClient) *Repository {
	repo := NewRepository(client)
	repo.now = func() time.Time { return baseTime }
	return repo
}

func TestGetWallet(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(mock *pgmock.MockPostgreSQLClient)
		assertFn func(t *testing.T, wallet *walletv1.Wallet, err error)
	}{
		{
			name: "success",
			mockFn: func(mock *pgmock.MockPostgreSQLClient) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "alice", "USDT").
					Return(&rowStub{scan: func(dest ...any) error {
						*dest[0].(*string) = "w1"
						*dest[1].(*string) = "alice"
						*dest[2].(*string) = "USDT"
						*dest[3].(*string) = fixedpoint.MustFromString("200").String()
						*dest[4].(*string) = fixedpoint.MustFromString("50").String()
						*dest[5].(*time.Time) = baseTime
						return nil
					}})
			},
			assertFn: func(t *testing.T, wallet *walletv1.Wallet, err error) {
				require.NoError(t, err)
				assert.Equal(t, "w1", wallet.ID)
				assert.Equal(t, fixedpoint.MustFromString("200"), wallet.Balance)
				assert.Equal(t, fixedpoint.MustFromString("50"), wallet.InOrder)
				assert.Equal(t, fixedpoint.MustFromString("150"), wallet.Available())
			},
		},
		{
			name: "error - wallet not found",
			mockFn: func(mock *pgmock.MockPostgreSQLClient) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "alice", "USDT").
					Return(&rowStub{scan: func(dest ...any) error {
						return pgx.ErrNoRows
					}})
			},
			assertFn: func(t *testing.T, wallet *walletv1.Wallet, err error) {
				assert.Nil(t, wallet)
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, errors.WalletNotFound))
			},
		},
		{
			name: "error - malformed balance",
			mockFn: func(mock *pgmock.MockPostgreSQLClient) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "alice", "USDT").
					Return(&rowStub{scan: func(dest ...any) error {
						*dest[3].(*string) = "garbage"
						return nil
					}})
			},
			assertFn: func(t *testing.T, wallet *walletv1.Wallet, err error) {
				assert.Nil(t, wallet)
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := pgmock.NewMockPostgreSQLClient(ctrl)
			tc.mockFn(client)

			wallet, err := newTestRepository(client).GetWallet(context.Background(), "alice", "USDT")
			tc.assertFn(t, wallet, err)
		})
	}
}

func TestAdjustForFill(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := pgmock.NewMockPostgreSQLClient(ctrl)

	wallet := &walletv1.Wallet{
		ID:      "w1",
		UserID:  "alice",
		Balance: fixedpoint.MustFromString("200"),
		InOrder: fixedpoint.MustFromString("100"),
	}

	client.EXPECT().Exec(gomock.Any(), gomock.Any(),
		fixedpoint.MustFromString("150").String(),
		fixedpoint.MustFromString("50").String(),
		baseTime, "w1",
	).Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	err := newTestRepository(client).AdjustForFill(context.Background(), wallet,
		fixedpoint.MustFromString("-50"), fixedpoint.MustFromString("-50"))

	require.NoError(t, err)
	assert.Equal(t, fixedpoint.MustFromString("150"), wallet.Balance)
	assert.Equal(t, fixedpoint.MustFromString("50"), wallet.InOrder)
}

func TestAdjustBalance_DebitNegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := pgmock.NewMockPostgreSQLClient(ctrl)

	wallet := &walletv1.Wallet{
		ID:      "w1",
		Balance: fixedpoint.MustFromString("200"),
		InOrder: big.NewInt(0),
	}

	client.EXPECT().Exec(gomock.Any(), gomock.Any(),
		fixedpoint.MustFromString("170").String(), "0", baseTime, "w1",
	).Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	err := newTestRepository(client).AdjustBalance(context.Background(), wallet,
		fixedpoint.MustFromString("30"), walletv1.DirectionDebit)

	require.NoError(t, err)
	assert.Equal(t, fixedpoint.MustFromString("170"), wallet.Balance)
}

func TestUnlock_ClampsAtZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := pgmock.NewMockPostgreSQLClient(ctrl)

	wallet := &walletv1.Wallet{
		ID:      "w1",
		Balance: fixedpoint.MustFromString("100"),
		InOrder: fixedpoint.MustFromString("10"),
	}

	client.EXPECT().Exec(gomock.Any(), gomock.Any(),
		fixedpoint.MustFromString("100").String(), "0", baseTime, "w1",
	).Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	err := newTestRepository(client).Unlock(context.Background(), wallet,
		fixedpoint.MustFromString("25"))

	require.NoError(t, err)
	assert.True(t, fixedpoint.IsZero(wallet.InOrder))
}

func TestSave_VanishedWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := pgmock.NewMockPostgreSQLClient(ctrl)

	wallet := &walletv1.Wallet{
		ID:      "w1",
		Balance: big.NewInt(0),
		InOrder: big.NewInt(0),
	}

	client.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	err := newTestRepository(client).AdjustForFill(context.Background(), wallet,
		big.NewInt(0), big.NewInt(0))

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.WalletNotFound))
}
