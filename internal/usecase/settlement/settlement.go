// Package settlement moves funds between the four wallets of a fill, the
// buyer and seller sides of the base and quote currencies.
package settlement

import (
	"context"
	"math/big"

	orderv1 "github.com/techcsc21/trade4u-sub008/internal/domain/order/v1"
	walletv1 "github.com/techcsc21/trade4u-sub008/internal/domain/wallet/v1"
	"github.com/techcsc21/trade4u-sub008/internal/usecase/matching"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/logger"
)

// Usecase settles fills against the wallet collaborator. It implements
// matching.Settler.
type Usecase struct {
	wallets walletv1.Service
	logger  logger.Interface
}

// NewUsecase creates a settlement usecase.
func NewUsecase(wallets walletv1.Service, log logger.Interface) *Usecase {
	return &Usecase{
		wallets: wallets,
		logger:  log,
	}
}

// Settle validates and applies the wallet movements of one fill.
//
// The buyer locked the full order cost, fee included, at submission; each
// fill releases the slice of that lock proportional to the filled fraction
// of the order. The seller locked base units and receives quote proceeds
// minus the proportional part of their fee.
//
// Both locks are validated before either wallet is touched. A missing
// wallet or a short lock aborts the pairing with the failing side in the
// error details Field; no funds move.
func (u *Usecase) Settle(ctx context.Context, fill *matching.Fill) error {
	base, quote := orderv1.SplitSymbol(fill.Symbol)

	buyerBase, err := u.loadWallet(ctx, fill.Buy.UserID, base, "buy")
	if err != nil {
		return err
	}
	buyerQuote, err := u.loadWallet(ctx, fill.Buy.UserID, quote, "buy")
	if err != nil {
		return err
	}
	sellerBase, err := u.loadWallet(ctx, fill.Sell.UserID, base, "sell")
	if err != nil {
		return err
	}
	sellerQuote, err := u.loadWallet(ctx, fill.Sell.UserID, quote, "sell")
	if err != nil {
		return err
	}

	ratio := fixedpoint.Ratio(fill.Amount, fill.Buy.Amount)
	release := fixedpoint.MulDiv(fill.Buy.Cost, ratio)

	if !sellerBase.CanRelease(fill.Amount) {
		return errors.NewErrorDetails(
			"seller base wallet holds less than the fill amount",
			string(errors.InsufficientLockedFunds), "sell")
	}
	if !buyerQuote.CanRelease(release) {
		return errors.NewErrorDetails(
			"buyer quote wallet holds less than the proportional cost release",
			string(errors.InsufficientLockedFunds), "buy")
	}

	sellerFee := fixedpoint.MulDiv(fill.Sell.Fee, fixedpoint.Ratio(fill.Amount, fill.Sell.Amount))
	proceeds := fixedpoint.Sub(fill.Cost, sellerFee)

	legs := []struct {
		wallet       *walletv1.Wallet
		balanceDelta *big.Int
		inOrderDelta *big.Int
		side         string
	}{
		{buyerBase, fixedpoint.Clone(fill.Amount), big.NewInt(0), "buy"},
		{buyerQuote, new(big.Int).Neg(release), new(big.Int).Neg(release), "buy"},
		{sellerBase, new(big.Int).Neg(fill.Amount), new(big.Int).Neg(fill.Amount), "sell"},
		{sellerQuote, proceeds, big.NewInt(0), "sell"},
	}

	for _, leg := range legs {
		if err := u.wallets.AdjustForFill(ctx, leg.wallet, leg.balanceDelta, leg.inOrderDelta); err != nil {
			u.logger.ErrorContext(ctx, err,
				logger.NewField("symbol", fill.Symbol),
				logger.NewField("user_id", leg.wallet.UserID),
				logger.NewField("currency", leg.wallet.Currency),
			)
			return errors.NewErrorDetails(
				"settlement leg failed to persist",
				string(errors.PersistenceFailure), leg.side)
		}
	}

	return nil
}

func (u *Usecase) loadWallet(ctx context.Context, userID, currency, side string) (*walletv1.Wallet, error) {
	wallet, err := u.wallets.GetWallet(ctx, userID, currency)
	if err != nil {
		if errors.ErrorCodeEquals(err, errors.WalletNotFound) {
			return nil, errors.NewErrorDetails(
				"settlement wallet missing for "+currency,
				string(errors.WalletNotFound), side)
		}
		return nil, err
	}
	return wallet, nil
}
