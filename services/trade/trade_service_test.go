package trade_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	"github.com/BitLeap/BitLeap-Backend/services/trade"
	"github.com/BitLeap/BitLeap-Backend/services/wallet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory db.Store covering the queries the trade engine
// touches. Methods it does not implement come from the embedded nil Querier
// and panic if reached. ExecTx mimics a real transaction by restoring the
// previous state when the callback fails.
type memStore struct {
	db.Querier
	wallets map[uuid.UUID]db.Wallet
	trades  map[uuid.UUID]db.Trade
}

func newMemStore() *memStore {
	return &memStore{
		wallets: make(map[uuid.UUID]db.Wallet),
		trades:  make(map[uuid.UUID]db.Trade),
	}
}

func (m *memStore) ExecTx(ctx context.Context, fq func(q db.Querier) error) error {
	savedWallets := make(map[uuid.UUID]db.Wallet, len(m.wallets))
	for k, v := range m.wallets {
		savedWallets[k] = v
	}
	savedTrades := make(map[uuid.UUID]db.Trade, len(m.trades))
	for k, v := range m.trades {
		savedTrades[k] = v
	}

	if err := fq(m); err != nil {
		m.wallets = savedWallets
		m.trades = savedTrades
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
	w := db.Wallet{
		ID:      uuid.New(),
		UserID:  arg.UserID,
		Asset:   arg.Asset,
		Balance: "0",
	}
	m.wallets[w.ID] = w
	return w, nil
}

func (m *memStore) GetWalletForUpdate(ctx context.Context, arg db.GetWalletForUpdateParams) (db.Wallet, error) {
	if w, ok := m.findWallet(arg.UserID, arg.Asset); ok {
		return w, nil
	}
	return db.Wallet{}, sql.ErrNoRows
}

func (m *memStore) GetWalletByUserAndAsset(ctx context.Context, arg db.GetWalletByUserAndAssetParams) (db.Wallet, error) {
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
	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return db.Wallet{}, err
	}
	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		return db.Wallet{}, err
	}
	w.Balance = balance.Add(amount).String()
	m.wallets[arg.ID] = w
	return w, nil
}

func (m *memStore) DebitWalletBalance(ctx context.Context, arg db.DebitWalletBalanceParams) (db.Wallet, error) {
	w, ok := m.wallets[arg.ID]
	if !ok {
		return db.Wallet{}, sql.ErrNoRows
	}
	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return db.Wallet{}, err
	}
	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		return db.Wallet{}, err
	}
	// Mirrors the guarded UPDATE: no row comes back when the balance would
	// go negative.
	if balance.LessThan(amount) {
		return db.Wallet{}, sql.ErrNoRows
	}
	w.Balance = balance.Sub(amount).String()
	m.wallets[arg.ID] = w
	return w, nil
}

func (m *memStore) CreateTrade(ctx context.Context, arg db.CreateTradeParams) (db.Trade, error) {
	t := db.Trade{
		ID:           uuid.New(),
		UserID:       arg.UserID,
		Pair:         arg.Pair,
		Direction:    arg.Direction,
		Stake:        arg.Stake,
		DurationSecs: arg.DurationSecs,
		EntryPrice:   arg.EntryPrice,
		Payout:       "0",
		CreatedAt:    time.Now(),
	}
	m.trades[t.ID] = t
	return t, nil
}

func (m *memStore) GetTrade(ctx context.Context, id uuid.UUID) (db.Trade, error) {
	t, ok := m.trades[id]
	if !ok {
		return db.Trade{}, sql.ErrNoRows
	}
	return t, nil
}

func (m *memStore) GetTradeForUpdate(ctx context.Context, id uuid.UUID) (db.Trade, error) {
	return m.GetTrade(ctx, id)
}

func (m *memStore) SettleTrade(ctx context.Context, arg db.SettleTradeParams) (db.Trade, error) {
	t, ok := m.trades[arg.ID]
	if !ok || t.ExitPrice.Valid {
		// Settling twice matches no row, like the exit_price IS NULL guard.
		return db.Trade{}, sql.ErrNoRows
	}
	t.ExitPrice = sql.NullString{String: arg.ExitPrice, Valid: true}
	t.Payout = arg.Payout
	t.Outcome = arg.Outcome
	t.ResolvedAt = sql.NullTime{Time: time.Now(), Valid: true}
	m.trades[arg.ID] = t
	return t, nil
}

// stubPrices returns a fixed price, or an error once broken.
type stubPrices struct {
	price  decimal.Decimal
	broken bool
}

func (s *stubPrices) GetPrice(ctx context.Context, pair string) (decimal.Decimal, error) {
	if s.broken {
		return decimal.Zero, errors.New("no price")
	}
	return s.price, nil
}

func newTradeService(store *memStore, prices *stubPrices) *trade.TradeService {
	logger := logging.NewLogger(nil)
	return trade.NewTradeService(store, wallet.NewWalletService(store, logger), prices, logger)
}

func seedWallet(t *testing.T, store *memStore, userID int64, balance string) uuid.UUID {
	t.Helper()
	w := db.Wallet{
		ID:      uuid.New(),
		UserID:  userID,
		Asset:   wallet.DefaultAsset,
		Balance: balance,
	}
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

func openParams(userID int64, stake string) trade.OpenTradeParams {
	entry := decimal.RequireFromString("100")
	return trade.OpenTradeParams{
		UserID:       userID,
		Pair:         "BTC/USDT",
		Direction:    db.DirectionLong,
		Stake:        decimal.RequireFromString(stake),
		DurationSecs: 60,
		EntryPrice:   &entry,
	}
}

func TestOpenTrade_DebitsExactlyTheStake(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "100")
	svc := newTradeService(store, &stubPrices{})

	result, err := svc.OpenTrade(context.Background(), openParams(1, "20"))
	if err != nil {
		t.Fatalf("OpenTrade: %v", err)
	}

	if got, want := balanceOf(t, store, walletID), "80"; got != want {
		t.Errorf("balance after open: got %q, want %q", got, want)
	}
	if got, want := result.Wallet.Balance.String(), "80"; got != want {
		t.Errorf("returned balance: got %q, want %q", got, want)
	}
	if !result.Trade.Payout.IsZero() {
		t.Errorf("payout on an open trade should be zero, got %v", result.Trade.Payout)
	}
	if result.Trade.ExitPrice != nil {
		t.Error("open trade should have no exit price")
	}
}

func TestOpenTrade_InsufficientBalanceCommitsNothing(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "10")
	svc := newTradeService(store, &stubPrices{})

	_, err := svc.OpenTrade(context.Background(), openParams(1, "20"))
	if !errors.Is(err, wallet.ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}

	if got, want := balanceOf(t, store, walletID), "10"; got != want {
		t.Errorf("balance after failed open: got %q, want %q", got, want)
	}
	if len(store.trades) != 0 {
		t.Errorf("failed open left %d trade rows behind", len(store.trades))
	}
}

func TestOpenTrade_PriceFetchFailureCommitsNothing(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "100")
	svc := newTradeService(store, &stubPrices{broken: true})

	arg := openParams(1, "20")
	arg.EntryPrice = nil
	_, err := svc.OpenTrade(context.Background(), arg)
	if err == nil {
		t.Fatal("expected an error when no price is available")
	}

	if got, want := balanceOf(t, store, walletID), "100"; got != want {
		t.Errorf("balance after failed open: got %q, want %q", got, want)
	}
	if len(store.trades) != 0 {
		t.Errorf("failed open left %d trade rows behind", len(store.trades))
	}
}

func TestResolveTrade_WinCreditsStakePlusProfit(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "100")
	prices := &stubPrices{price: decimal.RequireFromString("105")}
	svc := newTradeService(store, prices)

	opened, err := svc.OpenTrade(context.Background(), openParams(1, "20"))
	if err != nil {
		t.Fatalf("OpenTrade: %v", err)
	}

	result, err := svc.ResolveTrade(context.Background(), 1, db.RoleUser, opened.Trade.ID)
	if err != nil {
		t.Fatalf("ResolveTrade: %v", err)
	}

	if got, want := result.Trade.Payout.String(), "36"; got != want {
		t.Errorf("payout: got %q, want %q", got, want)
	}
	if result.Trade.Outcome == nil || !*result.Trade.Outcome {
		t.Error("expected a winning outcome")
	}
	if got, want := balanceOf(t, store, walletID), "116"; got != want {
		t.Errorf("balance after win: got %q, want %q", got, want)
	}
}

func TestResolveTrade_LossCreditsNothing(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "100")
	prices := &stubPrices{price: decimal.RequireFromString("95")}
	svc := newTradeService(store, prices)

	opened, err := svc.OpenTrade(context.Background(), openParams(1, "20"))
	if err != nil {
		t.Fatalf("OpenTrade: %v", err)
	}

	result, err := svc.ResolveTrade(context.Background(), 1, db.RoleUser, opened.Trade.ID)
	if err != nil {
		t.Fatalf("ResolveTrade: %v", err)
	}

	if !result.Trade.Payout.IsZero() {
		t.Errorf("losing payout should be zero, got %v", result.Trade.Payout)
	}
	if got, want := balanceOf(t, store, walletID), "80"; got != want {
		t.Errorf("balance after loss: got %q, want %q", got, want)
	}
}

func TestResolveTrade_SecondResolveReturnsStoredState(t *testing.T) {
	store := newMemStore()
	walletID := seedWallet(t, store, 1, "100")
	prices := &stubPrices{price: decimal.RequireFromString("105")}
	svc := newTradeService(store, prices)

	opened, err := svc.OpenTrade(context.Background(), openParams(1, "20"))
	if err != nil {
		t.Fatalf("OpenTrade: %v", err)
	}
	first, err := svc.ResolveTrade(context.Background(), 1, db.RoleUser, opened.Trade.ID)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	// The oracle moving after settlement must not change the stored result
	// or touch the wallet again.
	prices.price = decimal.RequireFromString("50")
	second, err := svc.ResolveTrade(context.Background(), 1, db.RoleUser, opened.Trade.ID)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if !second.Trade.Payout.Equal(first.Trade.Payout) {
		t.Errorf("payout changed on re-resolve: %v vs %v", second.Trade.Payout, first.Trade.Payout)
	}
	if second.Trade.ExitPrice == nil || !second.Trade.ExitPrice.Equal(*first.Trade.ExitPrice) {
		t.Errorf("exit price changed on re-resolve: %v vs %v", second.Trade.ExitPrice, first.Trade.ExitPrice)
	}
	if got, want := balanceOf(t, store, walletID), "116"; got != want {
		t.Errorf("balance after re-resolve: got %q, want %q", got, want)
	}
}

func TestResolveTrade_OwnerOrAdminOnly(t *testing.T) {
	store := newMemStore()
	seedWallet(t, store, 1, "100")
	prices := &stubPrices{price: decimal.RequireFromString("105")}
	svc := newTradeService(store, prices)

	opened, err := svc.OpenTrade(context.Background(), openParams(1, "20"))
	if err != nil {
		t.Fatalf("OpenTrade: %v", err)
	}

	if _, err := svc.ResolveTrade(context.Background(), 2, db.RoleUser, opened.Trade.ID); !errors.Is(err, trade.ErrNotYourTrade) {
		t.Errorf("stranger resolve: got %v, want ErrNotYourTrade", err)
	}
	if _, err := svc.ResolveTrade(context.Background(), 2, db.RoleAdmin, opened.Trade.ID); err != nil {
		t.Errorf("admin resolve: %v", err)
	}
}

func TestResolveTrade_UnknownTrade(t *testing.T) {
	store := newMemStore()
	svc := newTradeService(store, &stubPrices{})

	_, err := svc.ResolveTrade(context.Background(), 1, db.RoleUser, uuid.New())
	if !errors.Is(err, trade.ErrTradeNotFound) {
		t.Errorf("got %v, want ErrTradeNotFound", err)
	}
}
