package wallet

import (
	"context"
	"database/sql"
	"errors"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAsset is the quote currency every balance in this demo is held in.
const DefaultAsset = "USDT"

// WalletService is the account ledger: one balance per (user, asset) with
// atomic mutation primitives. Every method taking a db.Querier must be
// called inside the transaction that also holds the caller's precondition
// checks; the ledger does not re-check balances on its own.
type WalletService struct {
	store  db.Store
	logger *logging.Logger
}

func NewWalletService(store db.Store, logger *logging.Logger) *WalletService {
	return &WalletService{
		store:  store,
		logger: logger,
	}
}

// EnsureWallet creates the (user, asset) balance row with a zero balance if
// it does not exist yet, and locks it for the remainder of the transaction.
func (w *WalletService) EnsureWallet(ctx context.Context, q db.Querier, userID int64, asset string) (*WalletModel, error) {
	_, err := q.UpsertWallet(ctx, db.UpsertWalletParams{
		UserID: userID,
		Asset:  asset,
	})
	if err != nil {
		return nil, NewWalletError(ErrWalletNotPossible, "", err)
	}

	locked, err := q.GetWalletForUpdate(ctx, db.GetWalletForUpdateParams{
		UserID: userID,
		Asset:  asset,
	})
	if err != nil {
		return nil, err
	}

	return ToWalletModel(locked)
}

func (w *WalletService) Credit(ctx context.Context, q db.Querier, walletID uuid.UUID, amount decimal.Decimal) (*WalletModel, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	updated, err := q.CreditWalletBalance(ctx, db.CreditWalletBalanceParams{
		ID:     walletID,
		Amount: amount.String(),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NewWalletError(ErrWalletNotFound, walletID.String())
	} else if err != nil {
		return nil, err
	}

	return ToWalletModel(updated)
}

func (w *WalletService) Debit(ctx context.Context, q db.Querier, walletID uuid.UUID, amount decimal.Decimal) (*WalletModel, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	updated, err := q.DebitWalletBalance(ctx, db.DebitWalletBalanceParams{
		ID:     walletID,
		Amount: amount.String(),
	})
	if errors.Is(err, sql.ErrNoRows) {
		// The guard in the UPDATE matched no row: either the wallet is gone
		// or the balance would have gone negative.
		return nil, NewWalletError(ErrInsufficientFunds, walletID.String())
	} else if err != nil {
		return nil, err
	}

	return ToWalletModel(updated)
}

func (w *WalletService) GetWallet(ctx context.Context, q db.Querier, walletID uuid.UUID) (*WalletModel, error) {
	row, err := q.GetWallet(ctx, walletID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWalletNotFound
	} else if err != nil {
		return nil, err
	}
	return ToWalletModel(row)
}

// GetUserWallets reads outside of any transaction; display only.
func (w *WalletService) GetUserWallets(ctx context.Context, userID int64) ([]WalletModel, error) {
	rows, err := w.store.ListWalletsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToWalletModelCollection(rows)
}
