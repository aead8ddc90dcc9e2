package ledger

import "github.com/shopspring/decimal"

// MaxAmount is the largest amount accepted for a single deposit or transfer.
var MaxAmount = decimal.NewFromInt(1_000_000)

// Quantize rounds an amount to the ledger's fixed two decimal places.
func Quantize(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// ValidateAmount checks the defensive invariants every mutation re-checks even
// though the schema layer validates first: positivity and the upper bound.
// The returned amount is quantized to two decimal places.
func ValidateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = Quantize(amount)
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrAmountNotPositive
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrAmountTooLarge
	}
	return amount, nil
}
