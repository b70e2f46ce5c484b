package repository

import (
	"context"
	"errors"

	"github.com/asset-tracker/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Employee, error)
	Names(ctx context.Context) ([]string, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(emp).Error
	})
	return storeErr("create employee", err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, storeErr("get employee", err)
	}
	return &emp, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Employee{}).Where("id = ?", emp.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrEmployeeNotFound
		}
		return tx.Save(emp).Error
	})
	return storeErr("update employee", err)
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Delete(&domain.Employee{}, id).Error
	})
	return storeErr("delete employee", err)
}

// List возвращает всех сотрудников в порядке добавления
func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Order("id ASC").Find(&employees).Error
	})
	if err != nil {
		return nil, storeErr("list employees", err)
	}
	return employees, nil
}

// Names возвращает уникальные имена сотрудников для подсказок ответственного лица
func (r *employeeRepository) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Distinct("name").
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, storeErr("list employee names", err)
	}
	return names, nil
}
