package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type KYCStatus string

const (
	KYCUnverified KYCStatus = "unverified"
	KYCPending    KYCStatus = "pending"
	KYCVerified   KYCStatus = "verified"
	KYCRejected   KYCStatus = "rejected"
)

type TradeDirection string

const (
	DirectionLong  TradeDirection = "LONG"
	DirectionShort TradeDirection = "SHORT"
)

type DepositStatus string

const (
	DepositPending   DepositStatus = "pending"
	DepositConfirmed DepositStatus = "confirmed"
	DepositFailed    DepositStatus = "failed"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
	WithdrawalPaid     WithdrawalStatus = "paid"
)

type User struct {
	ID             int64
	FirstName      sql.NullString
	LastName       sql.NullString
	Email          string
	PhoneNumber    string
	HashedPassword string
	Role           UserRole
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type KYC struct {
	ID             int64
	UserID         int64
	Status         KYCStatus
	DocumentType   sql.NullString
	DocumentNumber sql.NullString
	Note           sql.NullString
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Wallet balances are NUMERIC in Postgres and travel as strings; services
// parse them with shopspring/decimal before doing arithmetic.
type Wallet struct {
	ID        uuid.UUID
	UserID    int64
	Asset     string
	Balance   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Trade struct {
	ID           uuid.UUID
	UserID       int64
	Pair         string
	Direction    TradeDirection
	Stake        string
	DurationSecs int32
	EntryPrice   string
	ExitPrice    sql.NullString
	Payout       string
	Outcome      sql.NullBool
	ResolvedAt   sql.NullTime
	CreatedAt    time.Time
}

type Deposit struct {
	ID        uuid.UUID
	UserID    int64
	Asset     string
	Network   string
	Amount    string
	Status    DepositStatus
	Reference string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Withdrawal struct {
	ID        uuid.UUID
	UserID    int64
	Asset     string
	Network   string
	Address   string
	Amount    string
	Status    WithdrawalStatus
	Note      sql.NullString
	Reference string
	CreatedAt time.Time
	UpdatedAt time.Time
}
