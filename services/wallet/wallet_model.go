package wallet

import (
	"time"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletModel struct {
	ID        uuid.UUID       `json:"id"`
	UserID    int64           `json:"user_id"`
	Asset     string          `json:"asset"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToWalletModel(w db.Wallet) (*WalletModel, error) {
	balance, err := decimal.NewFromString(w.Balance)
	if err != nil {
		return nil, err
	}
	return &WalletModel{
		ID:        w.ID,
		UserID:    w.UserID,
		Asset:     w.Asset,
		Balance:   balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}, nil
}

func ToWalletModelCollection(rows []db.Wallet) ([]WalletModel, error) {
	wallets := make([]WalletModel, 0, len(rows))
	for _, row := range rows {
		m, err := ToWalletModel(row)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *m)
	}
	return wallets, nil
}
