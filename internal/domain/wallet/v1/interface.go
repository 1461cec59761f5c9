package walletv1

import (
	"context"
	"math/big"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Direction tells AdjustBalance which way to move the balance.
type Direction string

const (
	// DirectionCredit adds to the balance.
	DirectionCredit Direction = "CREDIT"
	// DirectionDebit subtracts from the balance.
	DirectionDebit Direction = "DEBIT"
)

// Service is the wallet collaborator used by settlement and cancellation.
// The engine never creates or destroys wallets; a missing wallet surfaces
// as a typed wallet_not_found error.
type Service interface {
	GetWallet(ctx context.Context, userID, currency string) (*Wallet, error)
	AdjustBalance(ctx context.Context, wallet *Wallet, amount *big.Int, direction Direction) error

	// AdjustForFill applies one settlement leg: balanceDelta moves the
	// total balance, inOrderDelta moves the locked part. Both deltas are
	// signed and applied to the in-memory wallet before the row is written.
	AdjustForFill(ctx context.Context, wallet *Wallet, balanceDelta, inOrderDelta *big.Int) error

	// Unlock releases locked funds back to available without spending them,
	// used when a canceled order returns its remaining lock.
	Unlock(ctx context.Context, wallet *Wallet, amount *big.Int) error
}
