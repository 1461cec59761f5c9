package walletv1

import (
	"math/big"
	"time"

	"github.com/techcsc21/trade4u-sub008/pkg/fixedpoint"
)

// Wallet holds one user's balance in one currency. Balance is the total
// amount owned; InOrder is the part locked by open orders and is always
// less than or equal to Balance.
type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Currency  string    `json:"currency"`
	Balance   *big.Int  `json:"balance"`
	InOrder   *big.Int  `json:"inOrder"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Available returns the spendable part of the balance.
func (w *Wallet) Available() *big.Int {
	return fixedpoint.Sub(w.Balance, w.InOrder)
}

// CanRelease reports whether the wallet has at least amount locked.
func (w *Wallet) CanRelease(amount *big.Int) bool {
	return w.InOrder.Cmp(amount) >= 0
}

// Release unlocks and spends amount from the locked part. The caller must
// have checked CanRelease first; settlement validates both sides of a
// pairing before mutating either.
func (w *Wallet) Release(amount *big.Int, now time.Time) {
	w.InOrder = fixedpoint.Sub(w.InOrder, amount)
	w.Balance = fixedpoint.Sub(w.Balance, amount)
	w.UpdatedAt = now
}

// Credit adds amount to the balance without touching the locked part.
func (w *Wallet) Credit(amount *big.Int, now time.Time) {
	w.Balance = fixedpoint.Add(w.Balance, amount)
	w.UpdatedAt = now
}

// Lock moves amount from available into the locked part.
func (w *Wallet) Lock(amount *big.Int, now time.Time) {
	w.InOrder = fixedpoint.Add(w.InOrder, amount)
	w.UpdatedAt = now
}

// Unlock returns amount from the locked part to available.
func (w *Wallet) Unlock(amount *big.Int, now time.Time) {
	w.InOrder = fixedpoint.Sub(w.InOrder, amount)
	if w.InOrder.Sign() < 0 {
		w.InOrder = big.NewInt(0)
	}
	w.UpdatedAt = now
}
