package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"gorm.io/gorm"
)

// dateKeyExpr переставляет DD-MM-YYYY в YYYYMMDD, чтобы строки сравнивались хронологически.
// Рассчитывает на даты, нормализованные при записи (с ведущими нулями).
const dateKeyExpr = "substr(date_received, 7, 4) || substr(date_received, 4, 2) || substr(date_received, 1, 2)"

// FilterColumns - колонки, по которым допустим фильтр-подстрока
var FilterColumns = []string{
	"name", "description", "value", "responsible_person", "purchase_place",
	"city", "street", "building_number", "room", "date_received",
}

// sortExprs - белый список колонок сортировки и соответствующие им выражения
var sortExprs = map[string]string{
	"id":                 "id",
	"name":               "name",
	"description":        "description",
	"value":              "value",
	"responsible_person": "responsible_person",
	"purchase_place":     "purchase_place",
	"city":               "city",
	"street":             "street",
	"building_number":    "building_number",
	"room":               "room",
	"date_received":      dateKeyExpr,
}

// AssetRepository определяет интерфейс для работы с имуществом
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id int64) (*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query *dto.ListAssetsQuery) ([]domain.Asset, error)
}

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository создаёт новый экземпляр репозитория
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(asset).Error
	})
	return storeErr("create asset", err)
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	var asset domain.Asset
	err := r.db.WithContext(ctx).First(&asset, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, storeErr("get asset", err)
	}
	return &asset, nil
}

// Update заменяет все поля строки; отсутствие строки - ErrAssetNotFound
func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Asset{}).Where("id = ?", asset.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrAssetNotFound
		}
		return tx.Save(asset).Error
	})
	return storeErr("update asset", err)
}

// Delete идемпотентен: удаление несуществующей строки не считается ошибкой
func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Delete(&domain.Asset{}, id).Error
	})
	return storeErr("delete asset", err)
}

// List возвращает имущество с учётом фильтров и сортировки.
// Имена колонок берутся только из белых списков, значения передаются параметрами.
func (r *assetRepository) List(ctx context.Context, q *dto.ListAssetsQuery) ([]domain.Asset, error) {
	if q == nil {
		q = &dto.ListAssetsQuery{}
	}

	orderBy, err := assetOrder(q.SortBy, q.SortOrder)
	if err != nil {
		return nil, err
	}

	var assets []domain.Asset
	err = inTx(ctx, r.db, func(tx *gorm.DB) error {
		query := tx.Model(&domain.Asset{})

		contains := containsFunc(r.db.Dialector.Name())
		for _, col := range sortedKeys(q.Filters) {
			if !slices.Contains(FilterColumns, col) {
				return domain.NewValidationError("filters", fmt.Sprintf("unknown filter column %q", col))
			}
			value := q.Filters[col]
			if value == "" {
				continue
			}
			query = query.Where(contains(textExpr(col)), value)
		}

		if q.Value != nil {
			query = query.Where("value BETWEEN ? AND ?", q.Value.Min, q.Value.Max)
		}

		if q.Date != nil {
			query = query.Where(dateKeyExpr+" BETWEEN ? AND ?", DateKey(q.Date.Start), DateKey(q.Date.End))
		}

		return query.Order(orderBy).Order("id ASC").Find(&assets).Error
	})
	if err != nil {
		return nil, storeErr("list assets", err)
	}
	return assets, nil
}

// assetOrder проверяет колонку и направление сортировки по белым спискам
func assetOrder(sortBy, sortOrder string) (string, error) {
	dir := strings.ToUpper(strings.TrimSpace(sortOrder))
	switch dir {
	case "":
		dir = "ASC"
	case "ASC", "DESC":
	default:
		return "", domain.NewValidationError("sort_order", "must be ASC or DESC")
	}

	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		return "id " + dir, nil
	}
	expr, ok := sortExprs[sortBy]
	if !ok {
		return "", domain.NewValidationError("sort_by", fmt.Sprintf("unknown column %q", sortBy))
	}
	return expr + " " + dir, nil
}

// DateKey превращает нормализованную дату DD-MM-YYYY в YYYYMMDD
func DateKey(date string) string {
	if len(date) != len("DD-MM-YYYY") {
		return date
	}
	return date[6:10] + date[3:5] + date[0:2]
}

// textExpr возвращает текстовое представление колонки для поиска подстроки
func textExpr(col string) string {
	if col == "value" {
		return "CAST(value AS TEXT)"
	}
	return col
}

// containsFunc строит регистрозависимую проверку вхождения подстроки.
// LIKE в sqlite не учитывает регистр, поэтому используется instr/strpos.
func containsFunc(dialect string) func(expr string) string {
	if dialect == "postgres" {
		return func(expr string) string { return "strpos(" + expr + ", ?) > 0" }
	}
	return func(expr string) string { return "instr(" + expr + ", ?) > 0" }
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
