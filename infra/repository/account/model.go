package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	AccountNumber string          `gorm:"primaryKey;type:varchar(12)"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Surname       string          `gorm:"type:varchar(100);not null"`
	Phone         string          `gorm:"type:varchar(20);uniqueIndex;not null"`
	Balance       decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
