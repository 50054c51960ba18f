package funding_test

import (
	"errors"
	"testing"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/services/funding"
)

func TestNextDepositStatus_PendingApprove(t *testing.T) {
	next, applied, err := funding.NextDepositStatus(db.DepositPending, funding.DepositApprove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != db.DepositConfirmed || !applied {
		t.Errorf("got (%v, %v), want (confirmed, true)", next, applied)
	}
}

func TestNextDepositStatus_PendingReject(t *testing.T) {
	next, applied, err := funding.NextDepositStatus(db.DepositPending, funding.DepositReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != db.DepositFailed || !applied {
		t.Errorf("got (%v, %v), want (failed, true)", next, applied)
	}
}

func TestNextDepositStatus_ReapproveConfirmedIsNoOp(t *testing.T) {
	// The no-op result is what keeps a double confirm from crediting the
	// wallet twice.
	next, applied, err := funding.NextDepositStatus(db.DepositConfirmed, funding.DepositApprove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != db.DepositConfirmed || applied {
		t.Errorf("got (%v, %v), want (confirmed, false)", next, applied)
	}
}

func TestNextDepositStatus_InvalidTransitions(t *testing.T) {
	cases := []struct {
		current db.DepositStatus
		action  funding.DepositAction
	}{
		{db.DepositConfirmed, funding.DepositReject},
		{db.DepositFailed, funding.DepositApprove},
		{db.DepositFailed, funding.DepositReject},
	}

	for _, tc := range cases {
		_, _, err := funding.NextDepositStatus(tc.current, tc.action)
		if !errors.Is(err, funding.ErrInvalidTransition) {
			t.Errorf("%v + %v: got %v, want ErrInvalidTransition", tc.current, tc.action, err)
		}
	}
}

func TestNextWithdrawalStatus_ValidTransitions(t *testing.T) {
	cases := []struct {
		current db.WithdrawalStatus
		action  funding.WithdrawalAction
		want    db.WithdrawalStatus
	}{
		{db.WithdrawalPending, funding.WithdrawalApprove, db.WithdrawalApproved},
		{db.WithdrawalPending, funding.WithdrawalReject, db.WithdrawalRejected},
		{db.WithdrawalApproved, funding.WithdrawalPaid, db.WithdrawalPaid},
	}

	for _, tc := range cases {
		next, err := funding.NextWithdrawalStatus(tc.current, tc.action)
		if err != nil {
			t.Errorf("%v + %v: unexpected error %v", tc.current, tc.action, err)
			continue
		}
		if next != tc.want {
			t.Errorf("%v + %v: got %v, want %v", tc.current, tc.action, next, tc.want)
		}
	}
}

func TestNextWithdrawalStatus_InvalidTransitions(t *testing.T) {
	cases := []struct {
		current db.WithdrawalStatus
		action  funding.WithdrawalAction
	}{
		{db.WithdrawalPending, funding.WithdrawalPaid},
		{db.WithdrawalApproved, funding.WithdrawalApprove},
		{db.WithdrawalApproved, funding.WithdrawalReject},
		{db.WithdrawalRejected, funding.WithdrawalApprove},
		{db.WithdrawalRejected, funding.WithdrawalPaid},
		{db.WithdrawalPaid, funding.WithdrawalPaid},
		{db.WithdrawalPaid, funding.WithdrawalReject},
	}

	for _, tc := range cases {
		_, err := funding.NextWithdrawalStatus(tc.current, tc.action)
		if !errors.Is(err, funding.ErrInvalidTransition) {
			t.Errorf("%v + %v: got %v, want ErrInvalidTransition", tc.current, tc.action, err)
		}
	}
}
