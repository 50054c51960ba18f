package user_service

import "fmt"

var (
	ErrUserAlreadyExists = fmt.Errorf("user already exists")
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrBadCredentials    = fmt.Errorf("invalid email or password")
	ErrKYCNotFound       = fmt.Errorf("kyc record not found")
	ErrKYCNotPending     = fmt.Errorf("kyc record is not awaiting review")
	ErrAdminOnly         = fmt.Errorf("admin role required")
	ErrInvalidRole       = fmt.Errorf("unknown role")
)

type UserError struct {
	ErrorObj error
	Email    string
	Other    []error
}

func (u *UserError) Error() string {
	return u.ErrorObj.Error()
}

func (u *UserError) Unwrap() error {
	return u.ErrorObj
}

func NewUserError(err error, email string, e ...error) *UserError {
	return &UserError{
		ErrorObj: err,
		Email:    email,
		Other:    e,
	}
}
