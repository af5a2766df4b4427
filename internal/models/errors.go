package models

import (
	"errors"
	"fmt"
)

var (
	ErrUNIQUEConstraintFailed = errors.New("unique constraint failed")
	ErrFailedToAddUser        = errors.New("failed to add user")
	ErrInternal               = errors.New("internal server error")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrForbidden              = errors.New("access denied")
	ErrInvalidParams          = errors.New("invalid params")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrSessionNotFound        = errors.New("sessions not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTeacherNotFound        = errors.New("teacher not found")
	ErrReviewNotFound         = errors.New("review not found")
	ErrSchoolInfoNotFound     = errors.New("school info not found")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrImageNotFound          = errors.New("product image not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrFileNotFound           = errors.New("file not found")
	ErrStorageInconsistent    = errors.New("storage inconsistency detected")
	ErrRateLimited            = errors.New("rate limit exceeded")
	ErrProductOutOfStock      = errors.New("product out of stock")
	ErrInvalidSize            = errors.New("invalid size selection")
	ErrInvalidColor           = errors.New("invalid color selection")
	ErrTotalMismatch          = errors.New("order total mismatch")
)

type UniqueConstraintError struct {
	Constraint string
	Err        error
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Constraint)
}

func (e *UniqueConstraintError) Unwrap() error {
	return e.Err
}
