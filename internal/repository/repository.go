package repository

import (
	"context"
	"errors"

	"github.com/asset-tracker/internal/domain"
	"gorm.io/gorm"
)

// inTx выполняет операцию в отдельной транзакции: commit при успехе, rollback при ошибке
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// storeErr оборачивает ошибку gorm, не трогая уже классифицированные доменные ошибки
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrStore) {
		return err
	}
	return domain.StoreError(op, err)
}
