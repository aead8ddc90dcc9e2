// Package ledger holds the domain entities and error taxonomy of the ledger:
// accounts, the append-only transaction log, and the rules every balance
// mutation must satisfy. Amounts are fixed-point decimals with two decimal
// places; balances never go below zero between operations.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a ledger account. The account number is the identity and is
// immutable once assigned; the balance is mutated exclusively by the deposit
// and transfer operations while the account's lock is held.
type Account struct {
	AccountNumber string
	Name          string
	Surname       string
	Phone         string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount creates an account with a zero opening balance.
func NewAccount(accountNumber, name, surname, phone string) *Account {
	now := time.Now()
	return &Account{
		AccountNumber: accountNumber,
		Name:          name,
		Surname:       surname,
		Phone:         phone,
		Balance:       decimal.Zero.Round(2),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Credit increases the balance by amount. The amount must already be
// validated; Credit re-checks positivity as a last line of defense.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	a.Balance = a.Balance.Add(amount).Round(2)
	a.UpdatedAt = time.Now()
	return nil
}

// Debit decreases the balance by amount, rejecting overdrafts with an
// InsufficientFundsError carrying the available and required amounts.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	if a.Balance.LessThan(amount) {
		return &InsufficientFundsError{Available: a.Balance, Required: amount}
	}
	a.Balance = a.Balance.Sub(amount).Round(2)
	a.UpdatedAt = time.Now()
	return nil
}
