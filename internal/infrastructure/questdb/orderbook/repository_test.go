package orderbook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	questdbmock "github.com/techcsc21/trade4u-sub008/pkg/questdb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

func newTestRepository(client *questdbmock.MockQuestDBClient) *Repository {
	repo := NewRepository(client)
	repo.now = func() time.Time { return baseTime }
	return repo
}

func TestGetBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := questdbmock.NewMockQuestDBClient(ctrl)

	bid := fixedpoint.MustFromString("100").String()
	ask := fixedpoint.MustFromString("101").String()

	rows := questdbmock.NewMockRowsInterface(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), "BTC/USDT").Return(rows, nil)
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*string) = "BUY"
			*dest[1].(*string) = bid
			*dest[2].(*string) = fixedpoint.MustFromString("1.5").String()
			return nil
		}),
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*string) = "SELL"
			*dest[1].(*string) = ask
			*dest[2].(*string) = fixedpoint.MustFromString("2").String()
			return nil
		}),
		rows.EXPECT().Next().Return(false),
	)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	book, err := newTestRepository(client).GetBook(context.Background(), "BTC/USDT")

	require.NoError(t, err)
	assert.Equal(t, fixedpoint.MustFromString("1.5"), book.Amount(orderv1.SideBuy, bid))
	assert.Equal(t, fixedpoint.MustFromString("2"), book.Amount(orderv1.SideSell, ask))
	assert.Equal(t, 2, book.Depth())
}

func TestGetBook_MalformedAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := questdbmock.NewMockQuestDBClient(ctrl)

	rows := questdbmock.NewMockRowsInterface(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), "BTC/USDT").Return(rows, nil)
	rows.EXPECT().Next().Return(true)
	rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		*dest[0].(*string) = "BUY"
		*dest[1].(*string) = "100"
		*dest[2].(*string) = "garbage"
		return nil
	})
	rows.EXPECT().Close()

	book, err := newTestRepository(client).GetBook(context.Background(), "BTC/USDT")

	assert.Nil(t, book)
	assert.Error(t, err)
}

func TestSaveLevel(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(mock *questdbmock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mock *questdbmock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), insertQuery,
					"BTC/USDT", "BUY", "100", fixedpoint.MustFromString("1.5").String(), baseTime,
				).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error - exec fails",
			mockFn: func(mock *questdbmock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), insertQuery,
					"BTC/USDT", "BUY", "100", fixedpoint.MustFromString("1.5").String(), baseTime,
				).Return(errors.New("exec failed"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := questdbmock.NewMockQuestDBClient(ctrl)
			tc.mockFn(client)

			err := newTestRepository(client).SaveLevel(context.Background(),
				"BTC/USDT", orderv1.SideBuy, "100", fixedpoint.MustFromString("1.5"))
			tc.assertFn(t, err)
		})
	}
}

func TestDeleteLevel_WritesZeroTombstone(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := questdbmock.NewMockQuestDBClient(ctrl)

	client.EXPECT().Exec(gomock.Any(), insertQuery,
		"BTC/USDT", "SELL", "101", "0", baseTime,
	).Return(nil)

	err := newTestRepository(client).DeleteLevel(context.Background(),
		"BTC/USDT", orderv1.SideSell, "101")
	assert.NoError(t, err)
}

func TestQueueLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := newTestRepository(questdbmock.NewMockQuestDBClient(ctrl))

	batch := &pgx.Batch{}
	repo.QueueLevel(batch, "BTC/USDT", orderv1.SideBuy, "100", fixedpoint.MustFromString("1"))

	assert.Equal(t, 1, batch.Len())
}
