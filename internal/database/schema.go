package database

import (
	"context"
	"fmt"

	"github.com/asset-tracker/internal/domain"
	"gorm.io/gorm"
)

// legacyColumn - колонка, которой могло не быть в таблицах старой версии
type legacyColumn struct {
	model any
	field string
	name  string
}

var legacyColumns = []legacyColumn{
	{model: &domain.Asset{}, field: "DateReceived", name: "date_received"},
	{model: &domain.Employee{}, field: "Department", name: "department"},
	{model: &domain.Employee{}, field: "Supervisor", name: "supervisor"},
	{model: &domain.Employee{}, field: "Salary", name: "salary"},
}

// EnsureSchema создаёт недостающие таблицы и добавляет недостающие колонки.
// Идемпотентна, выполняется в одной транзакции: при ошибке схема не остаётся
// наполовину обновлённой.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := tx.Migrator()

		for _, model := range []any{&domain.Asset{}, &domain.Employee{}} {
			if m.HasTable(model) {
				continue
			}
			if err := m.CreateTable(model); err != nil {
				return domain.StoreError(fmt.Sprintf("create table %T", model), err)
			}
		}

		for _, col := range legacyColumns {
			if m.HasColumn(col.model, col.name) {
				continue
			}
			if err := m.AddColumn(col.model, col.field); err != nil {
				return domain.StoreError("add column "+col.name, err)
			}
		}

		for _, col := range dateColumns {
			if err := normalizeDates(tx, col.model, col.name); err != nil {
				return err
			}
		}

		return nil
	})
}

// dateColumns - текстовые даты, которые старая версия писала без ведущих нулей (5-1-2024)
var dateColumns = []legacyColumn{
	{model: &domain.Asset{}, name: "date_received"},
	{model: &domain.Employee{}, name: "hire_date"},
}

// normalizeDates приводит сохранённые даты к DD-MM-YYYY.
// Затрагивает только строки короче 10 символов; нераспознанные значения не меняются.
func normalizeDates(tx *gorm.DB, model any, column string) error {
	var rows []struct {
		ID    int64
		Value string
	}
	err := tx.Model(model).
		Select("id, "+column+" AS value").
		Where("length("+column+") <> ?", len("DD-MM-YYYY")).
		Scan(&rows).Error
	if err != nil {
		return domain.StoreError("read "+column, err)
	}

	for _, row := range rows {
		date, err := domain.NormalizeDate(row.Value)
		if err != nil || date == row.Value {
			continue
		}
		if err := tx.Model(model).Where("id = ?", row.ID).Update(column, date).Error; err != nil {
			return domain.StoreError("normalize "+column, err)
		}
	}
	return nil
}
