package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// 通用的存储库错误
var (
	// ErrNotFound 表示请求的记录未找到
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry 表示插入或更新的数据违反了唯一约束
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
	// ErrInUse 表示记录仍被其他记录引用，不能删除
	ErrInUse = errors.New("repository: record still referenced")
)

// wrap maps gorm/driver errors onto the repository errors and adds the operation name.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInUse), errors.Is(err, ErrDuplicateEntry):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicateEntry)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation recognizes unique-constraint messages of sqlite, mysql and postgres
// for dialects that do not translate errors.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}
