// Package wallet backs the wallet collaborator with the relational store.
// Balance columns are text-encoded scaled integers, parsed once per load
// and written back whole after each adjustment.
package wallet

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	walletv1 "github.com/techcsc21/trade4u-sub008/internal/domain/wallet/v1"
	"github.com/techcsc21/trade4u-sub008/pkg/errors"
	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
	"github.com/techcsc21/trade4u-sub008/pkg/postgresql"
)

// Repository implements the wallet service over PostgreSQL.
type Repository struct {
	client postgresql.PostgreSQLClient
	now    func() time.Time
}

var _ walletv1.Service = (*Repository)(nil)

// NewRepository creates a wallet repository.
func NewRepository(client postgresql.PostgreSQLClient) *Repository {
	return &Repository{
		client: client,
		now:    time.Now,
	}
}

// GetWallet loads one user's wallet in one currency. A missing wallet is a
// typed wallet_not_found error; the engine never creates wallets.
func (r *Repository) GetWallet(ctx context.Context, userID, currency string) (*walletv1.Wallet, error) {
	query := `SELECT id, user_id, currency, balance, in_order, updated_at
		FROM wallets WHERE user_id = $1 AND currency = $2`

	wallet := &walletv1.Wallet{}
	var balance, inOrder string
	err := r.client.QueryRow(ctx, query, userID, currency).Scan(
		&wallet.ID, &wallet.UserID, &wallet.Currency,
		&balance, &inOrder, &wallet.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.NewErrorDetails(
				fmt.Sprintf("no %s wallet for user %s", currency, userID),
				string(errors.WalletNotFound), "currency")
		}
		return nil, fmt.Errorf("failed to get wallet %s/%s: %w", userID, currency, err)
	}

	if wallet.Balance, err = decode(balance); err != nil {
		return nil, fmt.Errorf("wallet %s balance: %w", wallet.ID, err)
	}
	if wallet.InOrder, err = decode(inOrder); err != nil {
		return nil, fmt.Errorf("wallet %s in_order: %w", wallet.ID, err)
	}
	return wallet, nil
}

// AdjustBalance moves the total balance in one direction.
func (r *Repository) AdjustBalance(ctx context.Context, wallet *walletv1.Wallet, amount *big.Int, direction walletv1.Direction) error {
	delta := fixedpoint.Clone(amount)
	if direction == walletv1.DirectionDebit {
		delta.Neg(delta)
	}
	return r.AdjustForFill(ctx, wallet, delta, big.NewInt(0))
}

// AdjustForFill applies one settlement leg to the wallet and writes the row.
func (r *Repository) AdjustForFill(ctx context.Context, wallet *walletv1.Wallet, balanceDelta, inOrderDelta *big.Int) error {
	wallet.Balance = fixedpoint.Add(wallet.Balance, balanceDelta)
	wallet.InOrder = fixedpoint.Add(wallet.InOrder, inOrderDelta)
	wallet.UpdatedAt = r.now().UTC()
	return r.save(ctx, wallet)
}

// Unlock returns locked funds to available without spending them.
func (r *Repository) Unlock(ctx context.Context, wallet *walletv1.Wallet, amount *big.Int) error {
	wallet.Unlock(amount, r.now().UTC())
	return r.save(ctx, wallet)
}

func (r *Repository) save(ctx context.Context, wallet *walletv1.Wallet) error {
	query := `UPDATE wallets SET balance = $1, in_order = $2, updated_at = $3
		WHERE id = $4`

	tag, err := r.client.Exec(ctx, query,
		wallet.Balance.String(), wallet.InOrder.String(), wallet.UpdatedAt, wallet.ID)
	if err != nil {
		return fmt.Errorf("failed to save wallet %s: %w", wallet.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return errors.NewErrorDetails(
			fmt.Sprintf("wallet %s vanished during update", wallet.ID),
			string(errors.WalletNotFound), "id")
	}
	return nil
}

func decode(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("malformed scaled integer %q", s)
	}
	return x, nil
}
