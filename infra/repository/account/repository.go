// Package account provides the gorm-backed account repository.
package account

import (
	"context"
	"errors"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"gorm.io/gorm"
)

// Repository implements repository.AccountRepository on gorm.
type Repository struct {
	db *gorm.DB
}

// New creates an account repository bound to the given session.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the account by number, or ledger.ErrAccountNotFound.
func (r *Repository) Get(ctx context.Context, accountNumber string) (*ledger.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Where("account_number = ?", accountNumber).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, err
	}
	return toDomain(&m), nil
}

// GetByPhone returns the account registered with the phone number.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*ledger.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, err
	}
	return toDomain(&m), nil
}

// Exists reports whether an account number is already assigned.
func (r *Repository) Exists(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Account{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new account record.
func (r *Repository) Create(ctx context.Context, a *ledger.Account) error {
	m := fromDomain(a)
	return r.db.WithContext(ctx).Create(m).Error
}

// Update persists a mutated balance. Callers must hold the account's lock.
func (r *Repository) Update(ctx context.Context, a *ledger.Account) error {
	return r.db.WithContext(ctx).Model(&Account{}).
		Where("account_number = ?", a.AccountNumber).
		Updates(map[string]any{
			"balance":    a.Balance,
			"updated_at": a.UpdatedAt,
		}).Error
}

func toDomain(m *Account) *ledger.Account {
	return &ledger.Account{
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		Surname:       m.Surname,
		Phone:         m.Phone,
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromDomain(a *ledger.Account) *Account {
	return &Account{
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		Surname:       a.Surname,
		Phone:         a.Phone,
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
