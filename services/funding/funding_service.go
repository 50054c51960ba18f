package funding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	"github.com/BitLeap/BitLeap-Backend/services/wallet"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FundingService runs the deposit and withdrawal approval workflows.
// Deposits credit the wallet on the confirming transition; withdrawals debit
// the wallet when the request is created, so approval and payout are pure
// status changes.
type FundingService struct {
	store        db.Store
	walletClient *wallet.WalletService
	refs         *utils.ReferenceGenerator
	logger       *logging.Logger
}

func NewFundingService(store db.Store, walletClient *wallet.WalletService, refs *utils.ReferenceGenerator, logger *logging.Logger) *FundingService {
	return &FundingService{
		store:        store,
		walletClient: walletClient,
		refs:         refs,
		logger:       logger,
	}
}

func (s *FundingService) CreateDeposit(ctx context.Context, userID int64, asset, network string, amount decimal.Decimal) (*DepositModel, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	reference, err := s.refs.Generate(userID)
	if err != nil {
		return nil, fmt.Errorf("generate reference: %w", err)
	}

	created, err := s.store.CreateDeposit(ctx, db.CreateDepositParams{
		UserID:    userID,
		Asset:     asset,
		Network:   network,
		Amount:    amount.String(),
		Status:    db.DepositPending,
		Reference: reference,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("deposit %v created for user %v: %v %v", created.ID, userID, amount, asset))
	return ToDepositModel(created)
}

// DecideDeposit applies an admin decision. Confirming credits the wallet by
// the recorded amount exactly once; re-approving an already-confirmed
// deposit returns success without a second credit.
func (s *FundingService) DecideDeposit(ctx context.Context, actorRole db.UserRole, depositID uuid.UUID, action DepositAction) (*DepositModel, error) {
	if actorRole != db.RoleAdmin {
		return nil, ErrAdminOnly
	}

	var result *DepositModel
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		deposit, err := q.GetDepositForUpdate(ctx, depositID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDepositNotFound
		} else if err != nil {
			return err
		}

		next, applied, err := NextDepositStatus(deposit.Status, action)
		if err != nil {
			return err
		}
		if !applied {
			result, err = ToDepositModel(deposit)
			return err
		}

		updated, err := q.UpdateDepositStatus(ctx, db.UpdateDepositStatusParams{
			ID:     depositID,
			Status: next,
		})
		if err != nil {
			return err
		}

		if next == db.DepositConfirmed {
			amount, err := decimal.NewFromString(deposit.Amount)
			if err != nil {
				return err
			}
			if !amount.IsPositive() {
				return ErrInvalidAmount
			}

			userWallet, err := s.walletClient.EnsureWallet(ctx, q, deposit.UserID, deposit.Asset)
			if err != nil {
				return err
			}
			if _, err := s.walletClient.Credit(ctx, q, userWallet.ID, amount); err != nil {
				return err
			}
		}

		result, err = ToDepositModel(updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("deposit %v decided: %v -> %v", depositID, action, result.Status))
	return result, nil
}

// CreateWithdrawal reserves funds immediately: the wallet is debited in the
// same transaction that persists the request. An insufficient balance
// rejects the request without writing a row.
func (s *FundingService) CreateWithdrawal(ctx context.Context, userID int64, asset, network, address string, amount decimal.Decimal) (*WithdrawalModel, *wallet.WalletModel, error) {
	if !amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}

	reference, err := s.refs.Generate(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("generate reference: %w", err)
	}

	var (
		result        *WithdrawalModel
		walletBalance *wallet.WalletModel
	)
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		userWallet, err := s.walletClient.EnsureWallet(ctx, q, userID, asset)
		if err != nil {
			return err
		}

		if userWallet.Balance.LessThan(amount) {
			return wallet.NewWalletError(wallet.ErrInsufficientFunds, userWallet.ID.String())
		}

		debited, err := s.walletClient.Debit(ctx, q, userWallet.ID, amount)
		if err != nil {
			return err
		}

		created, err := q.CreateWithdrawal(ctx, db.CreateWithdrawalParams{
			UserID:    userID,
			Asset:     asset,
			Network:   network,
			Address:   address,
			Amount:    amount.String(),
			Status:    db.WithdrawalPending,
			Reference: reference,
		})
		if err != nil {
			return err
		}

		result, err = ToWithdrawalModel(created)
		if err != nil {
			return err
		}
		walletBalance = debited
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info(fmt.Sprintf("withdrawal %v created for user %v: %v %v reserved", result.ID, userID, amount, asset))
	return result, walletBalance, nil
}

// DecideWithdrawal applies an admin decision. No ledger movement happens
// here: funds were reserved at creation, and a rejection keeps them held for
// manual reversal.
func (s *FundingService) DecideWithdrawal(ctx context.Context, actorRole db.UserRole, withdrawalID uuid.UUID, action WithdrawalAction, note string) (*WithdrawalModel, error) {
	if actorRole != db.RoleAdmin {
		return nil, ErrAdminOnly
	}

	var result *WithdrawalModel
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		withdrawal, err := q.GetWithdrawalForUpdate(ctx, withdrawalID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWithdrawalNotFound
		} else if err != nil {
			return err
		}

		next, err := NextWithdrawalStatus(withdrawal.Status, action)
		if err != nil {
			return err
		}

		noteValue := sql.NullString{String: note, Valid: note != ""}
		if !noteValue.Valid {
			noteValue = withdrawal.Note
		}

		updated, err := q.UpdateWithdrawalStatus(ctx, db.UpdateWithdrawalStatusParams{
			ID:     withdrawalID,
			Status: next,
			Note:   noteValue,
		})
		if err != nil {
			return err
		}

		result, err = ToWithdrawalModel(updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("withdrawal %v decided: %v -> %v", withdrawalID, action, result.Status))
	return result, nil
}

func (s *FundingService) GetUserDeposits(ctx context.Context, userID int64) ([]DepositModel, error) {
	rows, err := s.store.ListDepositsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToDepositModelCollection(rows)
}

func (s *FundingService) GetUserWithdrawals(ctx context.Context, userID int64) ([]WithdrawalModel, error) {
	rows, err := s.store.ListWithdrawalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToWithdrawalModelCollection(rows)
}

func (s *FundingService) GetDepositsByStatus(ctx context.Context, status db.DepositStatus) ([]DepositModel, error) {
	rows, err := s.store.ListDepositsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return ToDepositModelCollection(rows)
}

func (s *FundingService) GetWithdrawalsByStatus(ctx context.Context, status db.WithdrawalStatus) ([]WithdrawalModel, error) {
	rows, err := s.store.ListWithdrawalsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return ToWithdrawalModelCollection(rows)
}
