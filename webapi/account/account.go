// Package account exposes account creation, lookup, balance and history
// endpoints.
package account

import (
	"time"

	"github.com/corebank/ledger/pkg/domain/ledger"
	accountsvc "github.com/corebank/ledger/pkg/service/account"
	ledgersvc "github.com/corebank/ledger/pkg/service/ledger"
	"github.com/corebank/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the account route group.
//
//   - POST /api/v1/accounts                          : open a new account
//   - GET  /api/v1/account/:number                   : account details
//   - GET  /api/v1/account/:number/balance           : current balance
//   - GET  /api/v1/account/:number/transactions      : history, most recent first
func Routes(app *fiber.App, accountSvc *accountsvc.Service, ledgerSvc *ledgersvc.Service) {
	v1 := app.Group("/api/v1")
	v1.Post("/accounts", CreateAccount(accountSvc))
	v1.Get("/account/:number", GetAccount(accountSvc))
	v1.Get("/account/:number/balance", GetBalance(ledgerSvc))
	v1.Get("/account/:number/transactions", GetHistory(ledgerSvc))
}

// CreateAccount returns the handler that opens a new account with a generated
// account number and zero balance.
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		acct, err := svc.CreateAccount(c.Context(), input.Name, input.Surname, input.Phone)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created successfully",
			toAccountResponse(acct))
	}
}

// GetAccount returns the handler for account detail lookups.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct, err := svc.GetAccount(c.Context(), c.Params("number"))
		if err != nil {
			return common.DomainErrorJSON(c, "Account lookup failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved successfully",
			toAccountResponse(acct))
	}
}

// GetBalance returns the handler for balance queries.
func GetBalance(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := c.Params("number")
		balance, err := svc.GetBalance(c.Context(), number)
		if err != nil {
			return common.DomainErrorJSON(c, "Balance check failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance retrieved successfully",
			BalanceResponse{
				AccountNumber: number,
				Balance:       balance.InexactFloat64(),
			})
	}
}

// GetHistory returns the handler for transaction history queries. The limit
// query parameter is optional and capped by the service.
func GetHistory(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := c.Params("number")
		limit := c.QueryInt("limit")
		history, err := svc.GetHistory(c.Context(), number, limit)
		if err != nil {
			return common.DomainErrorJSON(c, "Transaction history failed", err)
		}
		out := make([]TransactionResponse, 0, len(history))
		for _, tx := range history {
			out = append(out, toTransactionResponse(tx))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction history retrieved successfully",
			HistoryResponse{
				AccountNumber: number,
				Transactions:  out,
				Count:         len(out),
			})
	}
}

func toAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		Surname:       a.Surname,
		Balance:       a.Balance.InexactFloat64(),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		FromAccount: tx.FromAccount,
		ToAccount:   tx.ToAccount,
		Amount:      tx.Amount.InexactFloat64(),
		Kind:        string(tx.Kind),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
