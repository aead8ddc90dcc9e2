package transfer

// DepositRequest is the payload for crediting an account.
type DepositRequest struct {
	AccountNumber string  `json:"account_number" validate:"required,numeric,min=8,max=12"`
	Amount        float64 `json:"amount" validate:"required,gt=0,lte=1000000"`
}

// DepositResponse reports a completed deposit.
type DepositResponse struct {
	AccountNumber   string  `json:"account_number"`
	NewBalance      float64 `json:"new_balance"`
	DepositedAmount float64 `json:"deposited_amount"`
}

// TransferRequest is the payload for moving funds between two accounts.
type TransferRequest struct {
	FromAccount string  `json:"from_account" validate:"required,numeric,min=8,max=12"`
	ToAccount   string  `json:"to_account" validate:"required,numeric,min=8,max=12"`
	Amount      float64 `json:"amount" validate:"required,gt=0,lte=1000000"`
}

// TransferResponse reports a completed transfer.
type TransferResponse struct {
	TransferID  string  `json:"transfer_id"`
	FromAccount string  `json:"from_account"`
	ToAccount   string  `json:"to_account"`
	Amount      float64 `json:"amount"`
	FromBalance float64 `json:"from_balance"`
	ToBalance   float64 `json:"to_balance"`
}

// ValidateTransferRequest asks for an advisory pre-flight check.
type ValidateTransferRequest struct {
	FromAccount string  `json:"from_account" validate:"required,numeric,min=8,max=12"`
	ToAccount   string  `json:"to_account" validate:"required,numeric,min=8,max=12"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

// AccountCheckResponse describes one side of a prospective transfer.
type AccountCheckResponse struct {
	AccountNumber string  `json:"account_number"`
	Exists        bool    `json:"exists"`
	Balance       float64 `json:"balance"`
	LockHeld      bool    `json:"lock_held"`
}

// ValidateTransferResponse is the advisory pre-flight report.
type ValidateTransferResponse struct {
	From            AccountCheckResponse `json:"from"`
	To              AccountCheckResponse `json:"to"`
	Amount          float64              `json:"amount"`
	SameAccount     bool                 `json:"same_account"`
	SufficientFunds bool                 `json:"sufficient_funds"`
	Valid           bool                 `json:"valid"`
}

// ConcurrencyStatusResponse reports recent transaction volume and the
// advisory lock flag.
type ConcurrencyStatusResponse struct {
	AccountNumber          string `json:"account_number"`
	RecentTransactionCount int64  `json:"recent_transaction_count"`
	LockHeld               bool   `json:"lock_held"`
}
