package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrInvalidUsernameFormat  = errors.New("invalid username format")
	ErrInvalidPasswordLength  = errors.New("password must be at least 6 characters")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrCannotDeleteSelf       = errors.New("cannot delete own account")
	ErrInvalidAvatarType      = errors.New("avatar must be jpg, png or webp")
)
