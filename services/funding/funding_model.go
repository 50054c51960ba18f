package funding

import (
	"time"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DepositModel struct {
	ID        uuid.UUID       `json:"id"`
	UserID    int64           `json:"user_id"`
	Asset     string          `json:"asset"`
	Network   string          `json:"network"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToDepositModel(d db.Deposit) (*DepositModel, error) {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, err
	}
	return &DepositModel{
		ID:        d.ID,
		UserID:    d.UserID,
		Asset:     d.Asset,
		Network:   d.Network,
		Amount:    amount,
		Status:    string(d.Status),
		Reference: d.Reference,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

type WithdrawalModel struct {
	ID        uuid.UUID       `json:"id"`
	UserID    int64           `json:"user_id"`
	Asset     string          `json:"asset"`
	Network   string          `json:"network"`
	Address   string          `json:"address"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Note      string          `json:"note,omitempty"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToWithdrawalModel(w db.Withdrawal) (*WithdrawalModel, error) {
	amount, err := decimal.NewFromString(w.Amount)
	if err != nil {
		return nil, err
	}
	return &WithdrawalModel{
		ID:        w.ID,
		UserID:    w.UserID,
		Asset:     w.Asset,
		Network:   w.Network,
		Address:   w.Address,
		Amount:    amount,
		Status:    string(w.Status),
		Note:      w.Note.String,
		Reference: w.Reference,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}, nil
}

func ToDepositModelCollection(rows []db.Deposit) ([]DepositModel, error) {
	deposits := make([]DepositModel, 0, len(rows))
	for _, row := range rows {
		m, err := ToDepositModel(row)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, *m)
	}
	return deposits, nil
}

func ToWithdrawalModelCollection(rows []db.Withdrawal) ([]WithdrawalModel, error) {
	withdrawals := make([]WithdrawalModel, 0, len(rows))
	for _, row := range rows {
		m, err := ToWithdrawalModel(row)
		if err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, *m)
	}
	return withdrawals, nil
}
