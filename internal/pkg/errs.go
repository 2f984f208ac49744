package pkg

import (
	"errors"
	"fmt"
)

// 错误分类，service 层用 %w 包装，handler 层用 errors.Is 映射为状态码
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
	ErrUpload     = errors.New("upload error")
	ErrImage      = errors.New("image processing error")

	// 登录失败的具体原因，对外返回 invalidEmail / invalidPassword
	ErrInvalidEmail    = fmt.Errorf("%w: invalidEmail", ErrAuth)
	ErrInvalidPassword = fmt.Errorf("%w: invalidPassword", ErrAuth)
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Storage 包装底层存储错误，保留原始错误链
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// Reason 返回登录错误的原因码
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return "invalidEmail"
	case errors.Is(err, ErrInvalidPassword):
		return "invalidPassword"
	}
	return ""
}
