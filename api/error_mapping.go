package api

import (
	"errors"
	"net/http"

	"github.com/BitLeap/BitLeap-Backend/services/funding"
	"github.com/BitLeap/BitLeap-Backend/services/pricing"
	"github.com/BitLeap/BitLeap-Backend/services/trade"
	user_service "github.com/BitLeap/BitLeap-Backend/services/user"
	"github.com/BitLeap/BitLeap-Backend/services/wallet"
)

// statusForError maps service-layer failures onto HTTP status codes so
// handlers don't repeat the switch.
func statusForError(err error) int {
	switch {
	case errors.Is(err, trade.ErrTradeNotFound),
		errors.Is(err, funding.ErrDepositNotFound),
		errors.Is(err, funding.ErrWithdrawalNotFound),
		errors.Is(err, user_service.ErrUserNotFound),
		errors.Is(err, user_service.ErrKYCNotFound),
		errors.Is(err, wallet.ErrWalletNotFound):
		return http.StatusNotFound

	case errors.Is(err, trade.ErrNotYourTrade),
		errors.Is(err, funding.ErrAdminOnly),
		errors.Is(err, user_service.ErrAdminOnly):
		return http.StatusForbidden

	case errors.Is(err, funding.ErrInvalidTransition),
		errors.Is(err, trade.ErrInvalidTradeState),
		errors.Is(err, user_service.ErrKYCNotPending):
		return http.StatusConflict

	case errors.Is(err, pricing.ErrPriceUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, trade.ErrInvalidStake),
		errors.Is(err, trade.ErrInvalidDuration),
		errors.Is(err, trade.ErrInvalidDirection),
		errors.Is(err, trade.ErrInvalidEntryPrice),
		errors.Is(err, funding.ErrInvalidAmount),
		errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, wallet.ErrInsufficientFunds),
		errors.Is(err, pricing.ErrUnknownPair),
		errors.Is(err, user_service.ErrBadCredentials),
		errors.Is(err, user_service.ErrInvalidRole),
		errors.Is(err, user_service.ErrUserAlreadyExists):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
