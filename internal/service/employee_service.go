package service

import (
	"context"
	"strings"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/repository"
	"github.com/go-playground/validator/v10"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Employee, error)
	Names(ctx context.Context) ([]string, error)
}

type employeeService struct {
	empRepo   repository.EmployeeRepository
	validator *validator.Validate
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		empRepo:   empRepo,
		validator: newValidator(),
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error) {
	emp, err := s.buildEmployee(req)
	if err != nil {
		return nil, err
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error) {
	emp, err := s.buildEmployee(req)
	if err != nil {
		return nil, err
	}
	emp.ID = id

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *employeeService) Names(ctx context.Context) ([]string, error) {
	return s.empRepo.Names(ctx)
}

func (s *employeeService) buildEmployee(req *dto.EmployeeRequest) (*domain.Employee, error) {
	if req == nil {
		return nil, domain.NewValidationError("", "request is required")
	}

	r := dto.EmployeeRequest{
		Name:       strings.TrimSpace(req.Name),
		Position:   strings.TrimSpace(req.Position),
		HireDate:   strings.TrimSpace(req.HireDate),
		Department: strings.TrimSpace(req.Department),
		Supervisor: strings.TrimSpace(req.Supervisor),
		Salary:     req.Salary,
	}
	if err := validateStruct(s.validator, &r); err != nil {
		return nil, err
	}

	return &domain.Employee{
		Name:       r.Name,
		Position:   r.Position,
		HireDate:   normalizedDate(r.HireDate),
		Department: r.Department,
		Supervisor: r.Supervisor,
		Salary:     *r.Salary,
	}, nil
}
