package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger mutation.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindTransfer   TransactionKind = "transfer"
)

// Transaction is one immutable entry in the append-only transaction log.
// FromAccount is nil for deposits. Entries are created once, never updated or
// deleted, and ordered by CreatedAt for history queries.
type Transaction struct {
	ID          int64
	FromAccount *string
	ToAccount   string
	Amount      decimal.Decimal
	Kind        TransactionKind
	CreatedAt   time.Time
}

// NewDepositTransaction records a credit with no source account.
func NewDepositTransaction(toAccount string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ToAccount: toAccount,
		Amount:    amount.Round(2),
		Kind:      KindDeposit,
		CreatedAt: time.Now(),
	}
}

// NewTransferTransaction records a movement between two accounts.
func NewTransferTransaction(fromAccount, toAccount string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		FromAccount: &fromAccount,
		ToAccount:   toAccount,
		Amount:      amount.Round(2),
		Kind:        KindTransfer,
		CreatedAt:   time.Now(),
	}
}
