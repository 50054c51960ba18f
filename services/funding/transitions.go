package funding

import (
	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
)

type DepositAction string

const (
	DepositApprove DepositAction = "approve"
	DepositReject  DepositAction = "reject"
)

type WithdrawalAction string

const (
	WithdrawalApprove WithdrawalAction = "approve"
	WithdrawalReject  WithdrawalAction = "reject"
	WithdrawalPaid    WithdrawalAction = "paid"
)

// NextDepositStatus validates a deposit transition. The second return is
// false when the action was already applied: re-approving a confirmed
// deposit is a success no-op so the wallet is never credited twice.
func NextDepositStatus(current db.DepositStatus, action DepositAction) (db.DepositStatus, bool, error) {
	switch {
	case current == db.DepositPending && action == DepositApprove:
		return db.DepositConfirmed, true, nil
	case current == db.DepositPending && action == DepositReject:
		return db.DepositFailed, true, nil
	case current == db.DepositConfirmed && action == DepositApprove:
		return db.DepositConfirmed, false, nil
	default:
		return current, false, ErrInvalidTransition
	}
}

// NextWithdrawalStatus validates a withdrawal transition. approve and reject
// are only valid from pending, paid only from approved.
func NextWithdrawalStatus(current db.WithdrawalStatus, action WithdrawalAction) (db.WithdrawalStatus, error) {
	switch {
	case current == db.WithdrawalPending && action == WithdrawalApprove:
		return db.WithdrawalApproved, nil
	case current == db.WithdrawalPending && action == WithdrawalReject:
		return db.WithdrawalRejected, nil
	case current == db.WithdrawalApproved && action == WithdrawalPaid:
		return db.WithdrawalPaid, nil
	default:
		return current, ErrInvalidTransition
	}
}
