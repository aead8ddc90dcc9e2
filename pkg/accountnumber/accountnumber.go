// Package accountnumber generates and validates ledger account numbers.
package accountnumber

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"

	"github.com/corebank/ledger/pkg/repository"
)

// DefaultLength is the number of digits in a generated account number.
const DefaultLength = 10

const maxAttempts = 100

// ErrExhausted is returned when no unique account number could be generated
// within the attempt budget.
var ErrExhausted = errors.New("could not generate a unique account number")

var accountNumberPattern = regexp.MustCompile(`^[1-9][0-9]{7,11}$`)

// IsValid reports whether s is a well-formed account number: 8 to 12 digits
// with no leading zero.
func IsValid(s string) bool {
	return accountNumberPattern.MatchString(s)
}

// Generate produces a unique account number by drawing random candidates and
// checking them against the store, bounded at maxAttempts.
func Generate(ctx context.Context, accounts repository.AccountRepository) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := randomNumber(DefaultLength)
		if err != nil {
			return "", err
		}
		taken, err := accounts.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}

// randomNumber draws length digits, first digit nonzero.
func randomNumber(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		base := int64(10)
		if i == 0 {
			base = 9
		}
		n, err := rand.Int(rand.Reader, big.NewInt(base))
		if err != nil {
			return "", err
		}
		d := byte(n.Int64())
		if i == 0 {
			d++
		}
		digits[i] = '0' + d
	}
	return string(digits), nil
}
