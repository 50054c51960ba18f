package trade

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/providers/cryptocurrency"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	"github.com/BitLeap/BitLeap-Backend/services/pricing"
	"github.com/BitLeap/BitLeap-Backend/services/wallet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceSource is what the engine needs from the pricing service.
type PriceSource interface {
	GetPrice(ctx context.Context, pair string) (decimal.Decimal, error)
}

// TradeService opens and resolves price-direction contracts. Stake is
// reserved at open, payout is credited at resolve; both happen inside one
// database transaction with the wallet row locked.
type TradeService struct {
	store        db.Store
	walletClient *wallet.WalletService
	prices       PriceSource
	logger       *logging.Logger
}

func NewTradeService(store db.Store, walletClient *wallet.WalletService, prices PriceSource, logger *logging.Logger) *TradeService {
	return &TradeService{
		store:        store,
		walletClient: walletClient,
		prices:       prices,
		logger:       logger,
	}
}

type OpenTradeParams struct {
	UserID       int64
	Pair         string
	Direction    db.TradeDirection
	Stake        decimal.Decimal
	DurationSecs int32
	// EntryPrice overrides the oracle price when set; nil fetches live.
	EntryPrice *decimal.Decimal
}

type TradeResult struct {
	Trade  *TradeModel         `json:"trade"`
	Wallet *wallet.WalletModel `json:"wallet"`
}

func (s *TradeService) OpenTrade(ctx context.Context, arg OpenTradeParams) (*TradeResult, error) {
	if !arg.Stake.IsPositive() {
		return nil, ErrInvalidStake
	}
	if arg.DurationSecs <= 0 {
		return nil, ErrInvalidDuration
	}
	if arg.Direction != db.DirectionLong && arg.Direction != db.DirectionShort {
		return nil, ErrInvalidDirection
	}
	if !cryptocurrency.IsSupportedPair(arg.Pair) {
		return nil, pricing.ErrUnknownPair
	}

	var entry decimal.Decimal
	if arg.EntryPrice != nil {
		entry = *arg.EntryPrice
	} else {
		fetched, err := s.prices.GetPrice(ctx, arg.Pair)
		if err != nil {
			return nil, pricing.ErrPriceUnavailable
		}
		entry = fetched
	}
	if !entry.IsPositive() {
		return nil, ErrInvalidEntryPrice
	}

	var result TradeResult
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		userWallet, err := s.walletClient.EnsureWallet(ctx, q, arg.UserID, wallet.DefaultAsset)
		if err != nil {
			return err
		}

		// Check and debit under the row lock taken by EnsureWallet.
		if userWallet.Balance.LessThan(arg.Stake) {
			return wallet.NewWalletError(wallet.ErrInsufficientFunds, userWallet.ID.String())
		}

		debited, err := s.walletClient.Debit(ctx, q, userWallet.ID, arg.Stake)
		if err != nil {
			return err
		}

		created, err := q.CreateTrade(ctx, db.CreateTradeParams{
			UserID:       arg.UserID,
			Pair:         arg.Pair,
			Direction:    arg.Direction,
			Stake:        arg.Stake.String(),
			DurationSecs: arg.DurationSecs,
			EntryPrice:   entry.String(),
		})
		if err != nil {
			return fmt.Errorf("create trade: %w", err)
		}

		tradeModel, err := ToTradeModel(created)
		if err != nil {
			return err
		}

		result.Trade = tradeModel
		result.Wallet = debited
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("opened trade %v for user %v: %v %v stake %v", result.Trade.ID, arg.UserID, arg.Pair, arg.Direction, arg.Stake))
	return &result, nil
}

// ResolveTrade settles a contract at the current oracle price. Resolving an
// already-settled trade returns its stored state untouched; a failed price
// fetch leaves the trade open with nothing committed.
func (s *TradeService) ResolveTrade(ctx context.Context, actorID int64, actorRole db.UserRole, tradeID uuid.UUID) (*TradeResult, error) {
	existing, err := s.store.GetTrade(ctx, tradeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTradeNotFound
	} else if err != nil {
		return nil, err
	}

	if existing.UserID != actorID && actorRole != db.RoleAdmin {
		return nil, ErrNotYourTrade
	}

	if existing.ExitPrice.Valid {
		return s.settledResult(ctx, existing)
	}

	// Fetch before the atomic block so an oracle failure cannot leave a
	// half-resolved trade behind.
	exit, err := s.prices.GetPrice(ctx, existing.Pair)
	if err != nil {
		return nil, pricing.ErrPriceUnavailable
	}

	var result TradeResult
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		locked, err := q.GetTradeForUpdate(ctx, tradeID)
		if err != nil {
			return err
		}

		// A concurrent resolve may have won the race after our first read.
		if locked.ExitPrice.Valid {
			return s.fillSettled(ctx, q, locked, &result)
		}

		entry, err := decimal.NewFromString(locked.EntryPrice)
		if err != nil || !entry.IsPositive() {
			return ErrInvalidTradeState
		}
		stake, err := decimal.NewFromString(locked.Stake)
		if err != nil {
			return ErrInvalidTradeState
		}

		outcome := Settle(locked.Direction, entry, exit)
		payout := PayoutFor(stake, locked.DurationSecs, outcome)

		outcomeFlag := sql.NullBool{}
		switch outcome {
		case OutcomeWin:
			outcomeFlag = sql.NullBool{Bool: true, Valid: true}
		case OutcomeLoss:
			outcomeFlag = sql.NullBool{Bool: false, Valid: true}
		}

		settled, err := q.SettleTrade(ctx, db.SettleTradeParams{
			ID:        tradeID,
			ExitPrice: exit.String(),
			Payout:    payout.String(),
			Outcome:   outcomeFlag,
		})
		if err != nil {
			return fmt.Errorf("settle trade: %w", err)
		}

		userWallet, err := s.walletClient.EnsureWallet(ctx, q, locked.UserID, wallet.DefaultAsset)
		if err != nil {
			return err
		}

		if payout.IsPositive() {
			userWallet, err = s.walletClient.Credit(ctx, q, userWallet.ID, payout)
			if err != nil {
				return err
			}
		}

		tradeModel, err := ToTradeModel(settled)
		if err != nil {
			return err
		}

		result.Trade = tradeModel
		result.Wallet = userWallet
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("resolved trade %v: %v payout %v", tradeID, result.Trade.Direction, result.Trade.Payout))
	return &result, nil
}

// settledResult returns an already-resolved trade together with the owner's
// current wallet, without touching either.
func (s *TradeService) settledResult(ctx context.Context, t db.Trade) (*TradeResult, error) {
	var result TradeResult
	if err := s.fillSettled(ctx, s.store, t, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *TradeService) fillSettled(ctx context.Context, q db.Querier, t db.Trade, result *TradeResult) error {
	tradeModel, err := ToTradeModel(t)
	if err != nil {
		return err
	}

	row, err := q.GetWalletByUserAndAsset(ctx, db.GetWalletByUserAndAssetParams{
		UserID: t.UserID,
		Asset:  wallet.DefaultAsset,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return wallet.ErrWalletNotFound
	} else if err != nil {
		return err
	}

	walletModel, err := wallet.ToWalletModel(row)
	if err != nil {
		return err
	}

	result.Trade = tradeModel
	result.Wallet = walletModel
	return nil
}

func (s *TradeService) GetUserTrades(ctx context.Context, userID int64, limit, offset int32) ([]TradeModel, error) {
	rows, err := s.store.ListTradesByUser(ctx, db.ListTradesByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return ToTradeModelCollection(rows)
}

func (s *TradeService) ListAllTrades(ctx context.Context, limit, offset int32) ([]TradeModel, error) {
	rows, err := s.store.ListTrades(ctx, db.ListTradesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return ToTradeModelCollection(rows)
}
