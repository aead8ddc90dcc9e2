// Package transfer exposes the mutation endpoints (deposit, transfer) and the
// read-only diagnostics of the concurrent mutation engine.
package transfer

import (
	ledgersvc "github.com/corebank/ledger/pkg/service/ledger"
	"github.com/corebank/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Routes registers the mutation and diagnostics route group.
//
//   - POST /api/v1/deposit                                : credit an account
//   - POST /api/v1/transfer                               : move funds between accounts
//   - POST /api/v1/validate-transfer                      : advisory pre-flight check
//   - GET  /api/v1/account/:number/concurrent-status      : recent volume + lock flag
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	v1 := app.Group("/api/v1")
	v1.Post("/deposit", Deposit(svc))
	v1.Post("/transfer", Transfer(svc))
	v1.Post("/validate-transfer", ValidateTransfer(svc))
	v1.Get("/account/:number/concurrent-status", ConcurrencyStatus(svc))
}

// Deposit returns the handler that credits a single account.
func Deposit(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err // error response already written
		}
		result, err := svc.Deposit(c.Context(), input.AccountNumber,
			decimal.NewFromFloat(input.Amount))
		if err != nil {
			return common.DomainErrorJSON(c, "Deposit failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful",
			DepositResponse{
				AccountNumber:   result.AccountNumber,
				NewBalance:      result.NewBalance.InexactFloat64(),
				DepositedAmount: result.DepositedAmount.InexactFloat64(),
			})
	}
}

// Transfer returns the handler that debits one account and credits another as
// a single atomic unit.
func Transfer(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		result, err := svc.Transfer(c.Context(), input.FromAccount, input.ToAccount,
			decimal.NewFromFloat(input.Amount))
		if err != nil {
			return common.DomainErrorJSON(c, "Transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful",
			TransferResponse{
				TransferID:  result.TransferID,
				FromAccount: result.FromAccount,
				ToAccount:   result.ToAccount,
				Amount:      result.Amount.InexactFloat64(),
				FromBalance: result.FromBalance.InexactFloat64(),
				ToBalance:   result.ToBalance.InexactFloat64(),
			})
	}
}

// ValidateTransfer returns the handler for the advisory pre-flight check. It
// reserves nothing.
func ValidateTransfer(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ValidateTransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		report, err := svc.ValidateTransfer(c.Context(), input.FromAccount, input.ToAccount,
			decimal.NewFromFloat(input.Amount))
		if err != nil {
			return common.DomainErrorJSON(c, "Transfer validation failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer validation completed",
			ValidateTransferResponse{
				From:            toAccountCheckResponse(report.From),
				To:              toAccountCheckResponse(report.To),
				Amount:          report.Amount.InexactFloat64(),
				SameAccount:     report.SameAccount,
				SufficientFunds: report.SufficientFunds,
				Valid:           report.Valid,
			})
	}
}

// ConcurrencyStatus returns the handler reporting recent transaction volume
// and the advisory lock flag for one account.
func ConcurrencyStatus(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := svc.GetConcurrencyStatus(c.Context(), c.Params("number"))
		if err != nil {
			return common.DomainErrorJSON(c, "Concurrency status failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Concurrency status retrieved",
			ConcurrencyStatusResponse{
				AccountNumber:          status.AccountNumber,
				RecentTransactionCount: status.RecentTransactionCount,
				LockHeld:               status.LockHeld,
			})
	}
}

func toAccountCheckResponse(check ledgersvc.AccountCheck) AccountCheckResponse {
	return AccountCheckResponse{
		AccountNumber: check.AccountNumber,
		Exists:        check.Exists,
		Balance:       check.Balance.InexactFloat64(),
		LockHeld:      check.LockHeld,
	}
}
