package funding_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/services/funding"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	"github.com/BitLeap/BitLeap-Backend/services/wallet"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory db.Store covering the funding workflow queries.
// ExecTx restores the previous state when the callback fails, like a rolled
// back transaction.
type memStore struct {
	db.Querier
	wallets     map[uuid.UUID]db.Wallet
	deposits    map[uuid.UUID]db.Deposit
	withdrawals map[uuid.UUID]db.Withdrawal
	references  map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		wallets:     make(map[uuid.UUID]db.Wallet),
		deposits:    make(map[uuid.UUID]db.Deposit),
		withdrawals: make(map[uuid.UUID]db.Withdrawal),
		references:  make(map[string]bool),
	}
}

func (m *memStore) ExecTx(ctx context.Context, fq func(q db.Querier) error) error {
	savedWallets := make(map[uuid.UUID]db.Wallet, len(m.wallets))
	for k, v := range m.wallets {
		savedWallets[k] = v
	}
	savedDeposits := make(map[uuid.UUID]db.Deposit, len(m.deposits))
	for k, v := range m.deposits {
		savedDeposits[k] = v
	}
	savedWithdrawals := make(map[uuid.UUID]db.Withdrawal, len(m.withdrawals))
	for k, v := range m.withdrawals {
		savedWithdrawals[k] = v
	}

	if err := fq(m); err != nil {
		m.wallets = savedWallets
		m.deposits = savedDeposits
		m.withdrawals = savedWithdrawals
		return err
	}
	return nil
}

func (m *memStore) findWallet(userID int64, asset string) (db.Wallet, bool) {
	for _, w := range m.wallets {
		if w.UserID == userID && w.Asset == asset {
			return w, true
		}
	}
	return db.Wallet{}, false
}

func (m *memStore) UpsertWallet(ctx context.Context, arg db.UpsertWalletParams) (db.Wallet, error) {
	if w, ok := m.findWallet(arg.UserID, arg.Asset); ok {
		return w, nil
	}
	w := db.Wallet{ID: uuid.New(), UserID: arg.UserID, Asset: arg.Asset, Balance: "0"}
	m.wallets[w.ID] = w
	return w, nil
}

func (m *memStore) GetWalletForUpdate(ctx context.Context, arg db.GetWalletForUpdateParams) (db.Wallet, error) {
	if w, ok := m.findWallet(arg.UserID, arg.Asset); ok {
		return w, nil
	}
	return db.Wallet{}, sql.ErrNoRows
}

func (m *memStore) CreditWalletBalance(ctx context.Context, arg db.CreditWalletBalanceParams) (db.Wallet, error) {
	w, ok := m.wallets[arg.ID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	balance := decimal.RequireFromString(w.Balance)
	amount := decimal.RequireFromString(arg.Amount)
	w.Balance = balance.Add(amount).String()
	m.wallets[arg.ID] = w
	return w, nil
}

func (m *memStore) DebitWalletBalance(ctx context.Context, arg db.DebitWalletBalanceParams) (db.Wallet, error) {
	w, ok := m.wallets[arg.ID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	balance := decimal.RequireFromString(w.Balance)
	amount := decimal.RequireFromString(arg.Amount)
	if balance.LessThan(amount) {
		return db.Wallet{}, sql.ErrNoRows
	}
	w.Balance = balance.Sub(amount).String()
	m.wallets[arg.ID] = w
	return w, nil
}

func (m *memStore) CreateDeposit(ctx context.Context, arg db.CreateDepositParams) (db.Deposit, error) {
	if m.references[arg.Reference] {
		return db.Deposit{}, errors.New("duplicate reference")
	}
	m.references[arg.Reference] = true
	d := db.Deposit{
		ID:        uuid.New(),
		UserID:    arg.UserID,
		Asset:     arg.Asset,
		Network:   arg.Network,
		Amount:    arg.Amount,
		Status:    arg.Status,
		Reference: arg.Reference,
	}
	m.deposits[d.ID] = d
	return d, nil
}

func (m *memStore) GetDepositForUpdate(ctx context.Context, id uuid.UUID) (db.Deposit, error) {
	d, ok := m.deposits[id]
	if !ok {
		return db.Deposit{}, sql.ErrNoRows
	}
	return d, nil
}

func (m *memStore) UpdateDepositStatus(ctx context.Context, arg db.UpdateDepositStatusParams) (db.Deposit, error) {
	d, ok := m.deposits[arg.ID]
	if !ok {
		return db.Deposit{}, sql.ErrNoRows
	}
	d.Status = arg.Status
	m.deposits[arg.ID] = d
	return d, nil
}

func (m *memStore) CreateWithdrawal(ctx context.Context, arg db.CreateWithdrawalParams) (db.Withdrawal, error) {
	if m.references[arg.Reference] {
		return db.Withdrawal{}, errors.New("duplicate reference")
	}
	m.references[arg.Reference] = true
	w := db.Withdrawal{
		ID:        uuid.New(),
		UserID:    arg.UserID,
		Asset:     arg.Asset,
		Network:   arg.Network,
		Address:   arg.Address,
		Amount:    arg.Amount,
		Status:    arg.Status,
		Reference: arg.Reference,
	}
	m.withdrawals[w.ID] = w
	return w, nil
}

func (m *memStore) GetWithdrawalForUpdate(ctx context.Context, id uuid.UUID) (db.Withdrawal, error) {
	w, ok := m.withdrawals[id]
	if !ok {
		return db.Withdrawal{}, sql.ErrNoRows
	}
	return w, nil
}

func (m *memStore) UpdateWithdrawalStatus(ctx context.Context, arg db.UpdateWithdrawalStatusParams) (db.Withdrawal, error) {
	w, ok := m.withdrawals[arg.ID]
	if !ok {
		return db.Withdrawal{}, sql.ErrNoRows
	}
	w.Status = arg.Status
	w.Note = arg.Note
	m.withdrawals[arg.ID] = w
	return w, nil
}

func newFundingService(t *testing.T, store *memStore) *funding.FundingService {
	t.Helper()
	refs, err := utils.NewReferenceGenerator("test-salt")
	if err != nil {
		t.Fatalf("NewReferenceGenerator: %v", err)
	}
	logger := logging.NewLogger(nil)
	return funding.NewFundingService(store, wallet.NewWalletService(store, logger), refs, logger)
}

func seedWallet(t *testing.T, store *memStore, userID int64, balance string) uuid.UUID {
	t.Helper()
	w := db.Wallet{ID: uuid.New(), UserID: userID, Asset: wallet.DefaultAsset, Balance: balance}
	store.wallets[w.ID] = w
	return w.ID
}

func balanceOf(t *testing.T, store *memStore, walletID uuid.UUID) string {
	t.Helper()
	w, ok := store.wallets[walletID]
	if !ok {
		t.Fatalf("wallet %v not found", walletID)
	}
	return w.Balance
}

func TestDecideDeposit_ConfirmCreditsWallet(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "0")
	svc := newFundingService(t, store)

	created, err := svc.CreateDeposit(context.Background(), 1, wallet.DefaultAsset, "TRC20", decimal.RequireFromString("50"))
	if err != nil {
		t.Fatalf("CreateDeposit: %v", err)
	}
	if got, want := balanceOf(t, store, walletID), "0"; got != want {
		t.Fatalf("balance credited before confirmation: got %q, want %q", got, want)
	}

	decided, err := svc.DecideDeposit(context.Background(), db.RoleAdmin, created.ID, funding.DepositApprove)
	if err != nil {
		t.Fatalf("DecideDeposit: %v", err)
	}
	if decided.Status != string(db.DepositConfirmed) {
		t.Errorf("status: got %v, want confirmed", decided.Status)
	}
	if got, want := balanceOf(t, store, walletID), "50"; got != want {
		t.Errorf("balance after confirm: got %q, want %q", got, want)
	}
}

func TestDecideDeposit_ReconfirmDoesNotDoubleCredit(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "0")
	svc := newFundingService(t, store)

	created, err := svc.CreateDeposit(context.Background(), 1, wallet.DefaultAsset, "TRC20", decimal.RequireFromString("50"))
	if err != nil {
		t.Fatalf("CreateDeposit: %v", err)
	}
	if _, err := svc.DecideDeposit(context.Background(), db.RoleAdmin, created.ID, funding.DepositApprove); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	decided, err := svc.DecideDeposit(context.Background(), db.RoleAdmin, created.ID, funding.DepositApprove)
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if decided.Status != string(db.DepositConfirmed) {
		t.Errorf("status: got %v, want confirmed", decided.Status)
	}
	if got, want := balanceOf(t, store, walletID), "50"; got != want {
		t.Errorf("balance after re-approve: got %q, want %q", got, want)
	}
}

func TestDecideDeposit_RequiresAdmin(t *testing.T) {
	store := newMemStore()
	svc := newFundingService(t, store)

	_, err := svc.DecideDeposit(context.Background(), db.RoleUser, uuid.New(), funding.DepositApprove)
	if !errors.Is(err, funding.ErrAdminOnly) {
		t.Errorf("got %v, want ErrAdminOnly", err)
	}
}

func TestCreateWithdrawal_ReservesFundsImmediately(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "100")
	svc := newFundingService(t, store)

	created, snapshot, err := svc.CreateWithdrawal(context.Background(), 1, wallet.DefaultAsset, "TRC20", "TXyzAddr", decimal.RequireFromString("30"))
	if err != nil {
		t.Fatalf("CreateWithdrawal: %v", err)
	}
	if created.Status != string(db.WithdrawalPending) {
		t.Errorf("status: got %v, want pending", created.Status)
	}
	if got, want := snapshot.Balance.String(), "70"; got != want {
		t.Errorf("snapshot balance: got %q, want %q", got, want)
	}
	if got, want := balanceOf(t, store, walletID), "70"; got != want {
		t.Errorf("balance after request: got %q, want %q", got, want)
	}
}

func TestCreateWithdrawal_InsufficientFundsCommitsNothing(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "10")
	svc := newFundingService(t, store)

	_, _, err := svc.CreateWithdrawal(context.Background(), 1, wallet.DefaultAsset, "TRC20", "TXyzAddr", decimal.RequireFromString("30"))
	if !errors.Is(err, wallet.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}

	if got, want := balanceOf(t, store, walletID), "10"; got != want {
		t.Errorf("balance after failed request: got %q, want %q", got, want)
	}
	if len(store.withdrawals) != 0 {
		t.Errorf("failed request left %d withdrawal rows behind", len(store.withdrawals))
	}
}

func TestDecideWithdrawal_RejectionKeepsFundsHeld(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "100")
	svc := newFundingService(t, store)

	created, _, err := svc.CreateWithdrawal(context.Background(), 1, wallet.DefaultAsset, "TRC20", "TXyzAddr", decimal.RequireFromString("30"))
	if err != nil {
		t.Fatalf("CreateWithdrawal: %v", err)
	}

	decided, err := svc.DecideWithdrawal(context.Background(), db.RoleAdmin, created.ID, funding.WithdrawalReject, "docs missing")
	if err != nil {
		t.Fatalf("DecideWithdrawal: %v", err)
	}
	if decided.Status != string(db.WithdrawalRejected) {
		t.Errorf("status: got %v, want rejected", decided.Status)
	}
	// The rejected amount stays reserved for manual reversal.
	if got, want := balanceOf(t, store, walletID), "70"; got != want {
		t.Errorf("balance after rejection: got %q, want %q", got, want)
	}
}

func TestCreateDeposit_ReferencesDistinctAcrossUsers(t *testing.T) {
	store := newMemStore()
	seedWallet(t, store, 4, "0")
	seedWallet(t, store, 5, "0")
	svc := newFundingService(t, store)

	a, err := svc.CreateDeposit(context.Background(), 4, wallet.DefaultAsset, "TRC20", decimal.RequireFromString("10"))
	if err != nil {
		t.Fatalf("deposit for user 4: %v", err)
	}
	b, err := svc.CreateDeposit(context.Background(), 5, wallet.DefaultAsset, "TRC20", decimal.RequireFromString("10"))
	if err != nil {
		t.Fatalf("deposit for user 5: %v", err)
	}

	if a.Reference == b.Reference {
		t.Errorf("deposits for different users share reference %q", a.Reference)
	}
}
