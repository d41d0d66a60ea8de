package user

import "errors"

var (
	ErrProfileNotFound        = errors.New("user profile not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
