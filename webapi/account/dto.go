package account

// CreateAccountRequest is the payload for opening a new account.
type CreateAccountRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Surname string `json:"surname" validate:"required,min=2,max=100"`
	Phone   string `json:"phone" validate:"required,e164"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	AccountNumber string  `json:"account_number"`
	Name          string  `json:"name"`
	Surname       string  `json:"surname"`
	Balance       float64 `json:"balance"`
	CreatedAt     string  `json:"created_at"`
}

// BalanceResponse reports an account's current balance.
type BalanceResponse struct {
	AccountNumber string  `json:"account_number"`
	Balance       float64 `json:"balance"`
}

// TransactionResponse is one entry of a history listing.
type TransactionResponse struct {
	ID          int64   `json:"id"`
	FromAccount *string `json:"from_account"`
	ToAccount   string  `json:"to_account"`
	Amount      float64 `json:"amount"`
	Kind        string  `json:"kind"`
	CreatedAt   string  `json:"created_at"`
}

// HistoryResponse wraps a history listing.
type HistoryResponse struct {
	AccountNumber string                `json:"account_number"`
	Transactions  []TransactionResponse `json:"transactions"`
	Count         int                   `json:"count"`
}
