package settlement

import (
	"context"
	"math/big"
	"testing"
	"time"

	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	walletv1 "github.com/techcsc21/trade4u-sub008/internal/domain/wallet/v1"
	walletmock "github.com/techcsc21/trade4u-sub008/internal/domain/wallet/v1/mock"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/matching"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testFixture struct {
	ctrl    *gomock.Controller
	wallets *walletmock.MockService
	usecase *Usecase
}

func setupTestFixture(t *testing.T) *testFixture {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	wallets := walletmock.NewMockService(ctrl)

	return &testFixture{
		ctrl:    ctrl,
		wallets: wallets,
		usecase: NewUsecase(wallets, log),
	}
}

func testWallet(userID, currency, balance, inOrder string) *walletv1.Wallet {
	return &walletv1.Wallet{
		ID:        userID + "-" + currency,
		UserID:    userID,
		Currency:  currency,
		Balance:   fixedpoint.MustFromString(balance),
		InOrder:   fixedpoint.MustFromString(inOrder),
		UpdatedAt: time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC),
	}
}

// testFill pairs a buy for 1 BTC at a 100 USDT cost against a sell of 1 BTC
// carrying a 1 USDT fee, half filled at price 100.
func testFill() *matching.Fill {
	amount := fixedpoint.MustFromString("0.5")
	price := fixedpoint.MustFromString("100")
	return &matching.Fill{
		Symbol: "BTC/USDT",
		Buy: &orderv1.Order{
			ID:     "b1",
			UserID: "buyer",
			Symbol: "BTC/USDT",
			Side:   orderv1.SideBuy,
			Amount: fixedpoint.MustFromString("1"),
			Cost:   fixedpoint.MustFromString("100"),
			Fee:    big.NewInt(0),
		},
		Sell: &orderv1.Order{
			ID:     "s1",
			UserID: "seller",
			Symbol: "BTC/USDT",
			Side:   orderv1.SideSell,
			Amount: fixedpoint.MustFromString("1"),
			Fee:    fixedpoint.MustFromString("1"),
		},
		Amount:    amount,
		Price:     price,
		Cost:      fixedpoint.MulDiv(amount, price),
		TakerSide: orderv1.SideSell,
		Timestamp: time.Date(2025, 6, 18, 12, 0, 1, 0, time.UTC),
	}
}

func expectWallets(f *testFixture, buyerBase, buyerQuote, sellerBase, sellerQuote *walletv1.Wallet) {
	f.wallets.EXPECT().GetWallet(gomock.Any(), "buyer", "BTC").Return(buyerBase, nil)
	f.wallets.EXPECT().GetWallet(gomock.Any(), "buyer", "USDT").Return(buyerQuote, nil)
	f.wallets.EXPECT().GetWallet(gomock.Any(), "seller", "BTC").Return(sellerBase, nil)
	f.wallets.EXPECT().GetWallet(gomock.Any(), "seller", "USDT").Return(sellerQuote, nil)
}

func TestSettle_MovesAllFourLegs(t *testing.T) {
	f := setupTestFixture(t)

	buyerBase := testWallet("buyer", "BTC", "2", "0")
	buyerQuote := testWallet("buyer", "USDT", "500", "100")
	sellerBase := testWallet("seller", "BTC", "3", "1")
	sellerQuote := testWallet("seller", "USDT", "0", "0")
	expectWallets(f, buyerBase, buyerQuote, sellerBase, sellerQuote)

	// Half the order fills, so half the buyer's 100 USDT lock releases. The
	// seller's proceeds are the 50 USDT cost minus half their 1 USDT fee.
	f.wallets.EXPECT().AdjustForFill(gomock.Any(), buyerBase,
		fixedpoint.MustFromString("0.5"), big.NewInt(0)).Return(nil)
	f.wallets.EXPECT().AdjustForFill(gomock.Any(), buyerQuote,
		fixedpoint.MustFromString("-50"), fixedpoint.MustFromString("-50")).Return(nil)
	f.wallets.EXPECT().AdjustForFill(gomock.Any(), sellerBase,
		fixedpoint.MustFromString("-0.5"), fixedpoint.MustFromString("-0.5")).Return(nil)
	f.wallets.EXPECT().AdjustForFill(gomock.Any(), sellerQuote,
		fixedpoint.MustFromString("49.5"), big.NewInt(0)).Return(nil)

	err := f.usecase.Settle(context.Background(), testFill())
	assert.NoError(t, err)
}

func TestSettle_SellerLockShort(t *testing.T) {
	f := setupTestFixture(t)

	// Seller has only 0.2 BTC locked against a 0.5 fill. No wallet may be
	// touched.
	expectWallets(f,
		testWallet("buyer", "BTC", "2", "0"),
		testWallet("buyer", "USDT", "500", "100"),
		testWallet("seller", "BTC", "3", "0.2"),
		testWallet("seller", "USDT", "0", "0"),
	)

	err := f.usecase.Settle(context.Background(), testFill())

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.InsufficientLockedFunds))
	assert.Equal(t, "sell", err.(*errors.ErrorDetails).Field)
}

func TestSettle_BuyerLockShort(t *testing.T) {
	f := setupTestFixture(t)

	// Buyer has 10 USDT locked against a 50 USDT release.
	expectWallets(f,
		testWallet("buyer", "BTC", "2", "0"),
		testWallet("buyer", "USDT", "500", "10"),
		testWallet("seller", "BTC", "3", "1"),
		testWallet("seller", "USDT", "0", "0"),
	)

	err := f.usecase.Settle(context.Background(), testFill())

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.InsufficientLockedFunds))
	assert.Equal(t, "buy", err.(*errors.ErrorDetails).Field)
}

func TestSettle_MissingWalletTagsSide(t *testing.T) {
	f := setupTestFixture(t)

	missing := errors.NewErrorDetails("no wallet", string(errors.WalletNotFound), "")
	f.wallets.EXPECT().GetWallet(gomock.Any(), "buyer", "BTC").Return(nil, missing)

	err := f.usecase.Settle(context.Background(), testFill())

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.WalletNotFound))
	assert.Equal(t, "buy", err.(*errors.ErrorDetails).Field)
}

func TestSettle_LegPersistFailure(t *testing.T) {
	f := setupTestFixture(t)

	buyerBase := testWallet("buyer", "BTC", "2", "0")
	expectWallets(f,
		buyerBase,
		testWallet("buyer", "USDT", "500", "100"),
		testWallet("seller", "BTC", "3", "1"),
		testWallet("seller", "USDT", "0", "0"),
	)

	f.wallets.EXPECT().AdjustForFill(gomock.Any(), buyerBase, gomock.Any(), gomock.Any()).
		Return(errors.NewErrorDetails("db down", string(errors.GeneralRepositoryError), ""))

	err := f.usecase.Settle(context.Background(), testFill())

	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.PersistenceFailure))
	assert.Equal(t, "buy", err.(*errors.ErrorDetails).Field)
}
