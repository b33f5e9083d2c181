package store

import (
	"errors"
)

// 业务错误，handler 层据此映射状态码和提示文案
var (
	ErrNotFound           = errors.New("record not found")
	ErrNotOwner           = errors.New("not the owner of this resource")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyField         = errors.New("required field is empty")
	ErrSelfMessage        = errors.New("cannot message yourself")
)
