package wallet

import "fmt"

var (
	ErrWalletNotFound    = fmt.Errorf("wallet not found")
	ErrWalletNotPossible = fmt.Errorf("could not create wallet")
	ErrInsufficientFunds = fmt.Errorf("insufficient funds")
	ErrInvalidAmount     = fmt.Errorf("amount must be greater than zero")
)

type WalletError struct {
	ErrorObj error
	WalletID string
	Other    []error
}

func (w *WalletError) Error() string {
	return w.ErrorObj.Error()
}

func (w *WalletError) Unwrap() error {
	return w.ErrorObj
}

func NewWalletError(err error, wallID string, e ...error) *WalletError {
	return &WalletError{
		ErrorObj: err,
		WalletID: wallID,
		Other:    e,
	}
}
