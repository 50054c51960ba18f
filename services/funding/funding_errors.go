package funding

import "fmt"

var (
	ErrInvalidAmount      = fmt.Errorf("amount must be greater than zero")
	ErrDepositNotFound    = fmt.Errorf("deposit not found")
	ErrWithdrawalNotFound = fmt.Errorf("withdrawal request not found")
	ErrInvalidTransition  = fmt.Errorf("invalid status transition")
	ErrAdminOnly          = fmt.Errorf("admin role required")
)
