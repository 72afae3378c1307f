package service

import (
	"errors"

	"daily-app/internal/repository"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "validation"
	ErrorCodeDuplicate    ErrorCode = "duplicate"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	ErrorCodeForbidden    ErrorCode = "forbidden"
	ErrorCodeConflict     ErrorCode = "conflict"
	ErrorCodeNotFound     ErrorCode = "not_found"
	ErrorCodeInternal     ErrorCode = "internal"
)

// MsgNoAccess is shown for both missing and foreign records so that non-owners
// cannot probe for record existence.
const MsgNoAccess = "记录不存在或无权访问"

type ServiceError struct {
	Code    ErrorCode
	Message string
	Fields  map[string]string // per-field form messages
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string, fields map[string]string) error {
	return &ServiceError{Code: ErrorCodeValidation, Message: message, Fields: fields}
}

func NewDuplicateError(fields map[string]string) error {
	return &ServiceError{Code: ErrorCodeDuplicate, Message: "提交的信息已被使用", Fields: fields}
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError() error {
	return NewServiceError(ErrorCodeForbidden, MsgNoAccess)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError() error {
	return NewServiceError(ErrorCodeNotFound, MsgNoAccess)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// HasCode reports whether err is a ServiceError with the given code.
func HasCode(err error, code ErrorCode) bool {
	se, ok := AsServiceError(err)
	return ok && se.Code == code
}

// fromRepo maps a repository failure: not found stays visible, anything else is logged
// and hidden behind an internal error.
func fromRepo(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return NewNotFoundError()
	}
	logrus.WithError(err).WithField("op", op).Error("repository failure")
	return NewInternalError("服务器内部错误，请稍后再试")
}

func invalid(field, msg string) error {
	return NewValidationError("参数错误", map[string]string{field: msg})
}
