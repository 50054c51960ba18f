package apistrings

const (
	ServerError    = "Something went wrong, please try again later"
	BadRequest     = "Invalid request, please check your input"
	UserNotFound   = "User could not be found"
	TradeOpened    = "Trade opened successfully"
	TradeResolved  = "Trade resolved"
	DepositCreated = "Deposit request created"
	WithdrawCreate = "Withdrawal request created, funds reserved"
)
