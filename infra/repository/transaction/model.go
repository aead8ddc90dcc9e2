package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one row of the append-only transaction log.
// FromAccount is null for deposits.
type Transaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	FromAccount *string         `gorm:"type:varchar(12);index"`
	ToAccount   string          `gorm:"type:varchar(12);index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Kind        string          `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time       `gorm:"index"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
