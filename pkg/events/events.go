// Package events defines the ledger's outbound event types and the publisher
// contract. Publishing is best effort and happens after commit: a failed
// publish is logged, never surfaced to the caller, and never undoes a
// committed mutation.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCompleted is emitted after a deposit or transfer commits.
type TransactionCompleted struct {
	TransferID  string          `json:"transfer_id,omitempty"`
	Kind        string          `json:"kind"`
	FromAccount string          `json:"from_account,omitempty"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	CompletedAt time.Time       `json:"completed_at"`
}

// Publisher delivers ledger events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// NoopPublisher discards events; it is the default when no broker is configured.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, any) error { return nil }
