package user_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/BitLeap/BitLeap-Backend/services/monitoring/logging"
	"github.com/BitLeap/BitLeap-Backend/services/wallet"
	"github.com/BitLeap/BitLeap-Backend/utils"
	"github.com/lib/pq"
)

type UserService struct {
	store        db.Store
	logger       *logging.Logger
	walletClient *wallet.WalletService
}

func NewUserService(store db.Store, logger *logging.Logger, walletClient *wallet.WalletService) *UserService {
	return &UserService{
		store:        store,
		logger:       logger,
		walletClient: walletClient,
	}
}

// CreateUserWithWalletAndKYC registers a user, their zero-balance USDT
// wallet and an unverified KYC record in one transaction.
func (u *UserService) CreateUserWithWalletAndKYC(ctx context.Context, arg *db.CreateUserParams) (*db.User, error) {
	var newUser db.User
	err := u.store.ExecTx(ctx, func(q db.Querier) error {
		created, err := q.CreateUser(ctx, *arg)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				if pqErr.Code == db.DuplicateEntry {
					// 23505 --> Violated Unique Constraints
					return NewUserError(ErrUserAlreadyExists, arg.Email, err)
				}
			}
			return err
		}

		if _, err := u.walletClient.EnsureWallet(ctx, q, created.ID, wallet.DefaultAsset); err != nil {
			return fmt.Errorf("failed to create wallet for user %v: %w", created.ID, err)
		}

		if _, err := q.CreateNewKYC(ctx, db.CreateNewKYCParams{
			UserID: created.ID,
			Status: db.KYCUnverified,
		}); err != nil {
			return fmt.Errorf("failed to create kyc record for user %v: %w", created.ID, err)
		}

		newUser = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info(fmt.Sprintf("registered user %v (%v)", newUser.ID, newUser.Email))
	return &newUser, nil
}

// Authenticate checks the credentials and returns the user on success. The
// same error comes back for a missing user and a wrong password.
func (u *UserService) Authenticate(ctx context.Context, email, password string) (*db.User, error) {
	found, err := u.store.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBadCredentials
	} else if err != nil {
		return nil, err
	}

	if err := utils.VerifyHashValue(password, found.HashedPassword); err != nil {
		return nil, ErrBadCredentials
	}

	return &found, nil
}

func (u *UserService) GetUser(ctx context.Context, userID int64) (*db.User, error) {
	found, err := u.store.GetUserByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &found, nil
}

func (u *UserService) ListUsers(ctx context.Context, limit, offset int32) ([]db.User, error) {
	return u.store.ListUsers(ctx, db.ListUsersParams{
		Limit:  limit,
		Offset: offset,
	})
}

// SetUserRole promotes or demotes a user. Admin only.
func (u *UserService) SetUserRole(ctx context.Context, actorRole db.UserRole, userID int64, role db.UserRole) (*db.User, error) {
	if actorRole != db.RoleAdmin {
		return nil, ErrAdminOnly
	}
	if role != db.RoleUser && role != db.RoleAdmin {
		return nil, ErrInvalidRole
	}

	updated, err := u.store.UpdateUserRole(ctx, db.UpdateUserRoleParams{
		ID:   userID,
		Role: role,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	u.logger.Info(fmt.Sprintf("user %v role set to %v", userID, role))
	return &updated, nil
}

// SubmitKYC records the user's document details and moves their record to
// pending review.
func (u *UserService) SubmitKYC(ctx context.Context, userID int64, documentType, documentNumber string) (*db.KYC, error) {
	updated, err := u.store.SubmitKYC(ctx, db.SubmitKYCParams{
		UserID:         userID,
		Status:         db.KYCPending,
		DocumentType:   sql.NullString{String: documentType, Valid: documentType != ""},
		DocumentNumber: sql.NullString{String: documentNumber, Valid: documentNumber != ""},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKYCNotFound
	} else if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DecideKYC approves or rejects a pending submission.
func (u *UserService) DecideKYC(ctx context.Context, actorRole db.UserRole, userID int64, approve bool, note string) (*db.KYC, error) {
	if actorRole != db.RoleAdmin {
		return nil, ErrAdminOnly
	}

	current, err := u.store.GetKYCByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKYCNotFound
	} else if err != nil {
		return nil, err
	}

	if current.Status != db.KYCPending {
		return nil, ErrKYCNotPending
	}

	status := db.KYCRejected
	if approve {
		status = db.KYCVerified
	}

	updated, err := u.store.UpdateKYCStatus(ctx, db.UpdateKYCStatusParams{
		UserID: userID,
		Status: status,
		Note:   sql.NullString{String: note, Valid: note != ""},
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info(fmt.Sprintf("kyc for user %v decided: %v", userID, status))
	return &updated, nil
}

func (u *UserService) GetKYC(ctx context.Context, userID int64) (*db.KYC, error) {
	found, err := u.store.GetKYCByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKYCNotFound
	} else if err != nil {
		return nil, err
	}
	return &found, nil
}

func (u *UserService) ListPendingKYC(ctx context.Context) ([]db.KYC, error) {
	return u.store.ListKYCByStatus(ctx, db.KYCPending)
}
