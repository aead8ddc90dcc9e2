// Package transaction provides the gorm-backed transaction-log repository.
package transaction

import (
	"context"
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"gorm.io/gorm"
)

// Repository implements repository.TransactionRepository on gorm.
type Repository struct {
	db *gorm.DB
}

// New creates a transaction repository bound to the given session.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends one transaction record and fills in its generated ID.
// Records are immutable: there are no update or delete operations.
func (r *Repository) Create(ctx context.Context, tx *ledger.Transaction) error {
	m := fromDomain(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tx.ID = m.ID
	return nil
}

// ListByAccount returns transactions where the account is source or
// destination, most recent first, capped at limit.
func (r *Repository) ListByAccount(ctx context.Context, accountNumber string, limit int) ([]*ledger.Transaction, error) {
	var models []Transaction
	err := r.db.WithContext(ctx).
		Where("from_account = ? OR to_account = ?", accountNumber, accountNumber).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*ledger.Transaction, 0, len(models))
	for i := range models {
		out = append(out, toDomain(&models[i]))
	}
	return out, nil
}

// CountSince counts transactions touching the account created at or after the
// given instant.
func (r *Repository) CountSince(ctx context.Context, accountNumber string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("(from_account = ? OR to_account = ?) AND created_at >= ?",
			accountNumber, accountNumber, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func toDomain(m *Transaction) *ledger.Transaction {
	return &ledger.Transaction{
		ID:          m.ID,
		FromAccount: m.FromAccount,
		ToAccount:   m.ToAccount,
		Amount:      m.Amount,
		Kind:        ledger.TransactionKind(m.Kind),
		CreatedAt:   m.CreatedAt,
	}
}

func fromDomain(tx *ledger.Transaction) *Transaction {
	return &Transaction{
		FromAccount: tx.FromAccount,
		ToAccount:   tx.ToAccount,
		Amount:      tx.Amount,
		Kind:        string(tx.Kind),
		CreatedAt:   tx.CreatedAt,
	}
}
