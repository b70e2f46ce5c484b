package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store error")
)

// Бизнес-ошибки
var (
	ErrAssetNotFound    = fmt.Errorf("asset %w", ErrNotFound)
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
	ErrIDColumnInCSV    = NewValidationError("id", "CSV file contains 'id' column, remove it and try again")
)

// ValidationError описывает некорректное значение поля
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError создаёт ошибку валидации поля
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Reason
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StoreError оборачивает ошибку хранилища, сохраняя исходную причину
func StoreError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
