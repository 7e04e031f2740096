package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrInvalidPasswordLength  = errors.New("password must be at least 8 characters")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrOAuthProviderIDExists  = errors.New("oauth provider id already registered")
)
