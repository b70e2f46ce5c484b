package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
)

// Заголовки CSV в фиксированном порядке
var (
	AssetCSVHeader = []string{
		"id", "name", "description", "value", "responsible_person", "purchase_place",
		"city", "street", "building_number", "room", "date_received",
	}
	EmployeeCSVHeader = []string{
		"id", "name", "position", "hire_date", "department", "supervisor", "salary",
	}
)

var requiredCSVColumns = map[domain.EntityKind][]string{
	domain.KindAssets:    {"name", "value", "city", "street", "building_number", "room", "date_received"},
	domain.KindEmployees: {"name", "position", "hire_date", "salary"},
}

// TransferService определяет импорт и экспорт CSV
type TransferService interface {
	Export(ctx context.Context, kind domain.EntityKind, w io.Writer) error
	Import(ctx context.Context, kind domain.EntityKind, r io.Reader) (*dto.ImportResult, error)
}

type transferService struct {
	assetService AssetService
	empService   EmployeeService
}

// NewTransferService создаёт сервис импорта/экспорта поверх сервисов сущностей
func NewTransferService(assetService AssetService, empService EmployeeService) TransferService {
	return &transferService{
		assetService: assetService,
		empService:   empService,
	}
}

func (s *transferService) Export(ctx context.Context, kind domain.EntityKind, w io.Writer) error {
	cw := csv.NewWriter(w)

	switch kind {
	case domain.KindAssets:
		assets, err := s.assetService.List(ctx, nil)
		if err != nil {
			return err
		}
		if err := cw.Write(AssetCSVHeader); err != nil {
			return err
		}
		for _, a := range assets {
			if err := cw.Write(assetRecord(&a)); err != nil {
				return err
			}
		}

	case domain.KindEmployees:
		employees, err := s.empService.List(ctx)
		if err != nil {
			return err
		}
		if err := cw.Write(EmployeeCSVHeader); err != nil {
			return err
		}
		for _, e := range employees {
			if err := cw.Write(employeeRecord(&e)); err != nil {
				return err
			}
		}

	default:
		return domain.NewValidationError("kind", fmt.Sprintf("unknown entity kind %q", kind))
	}

	cw.Flush()
	return cw.Error()
}

// Import создаёт новые строки из CSV. Файл с колонкой id отклоняется целиком:
// импорт никогда не перезаписывает существующие строки. Ошибка валидации строки
// записывается в результат, и импорт продолжается; ошибка хранилища прерывает его.
func (s *transferService) Import(ctx context.Context, kind domain.EntityKind, r io.Reader) (*dto.ImportResult, error) {
	required, ok := requiredCSVColumns[kind]
	if !ok {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown entity kind %q", kind))
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		var perr *csv.ParseError
		switch {
		case errors.Is(err, io.EOF):
			return nil, domain.NewValidationError("header", "CSV file is empty")
		case errors.As(err, &perr):
			return nil, domain.NewValidationError("header", err.Error())
		default:
			return nil, fmt.Errorf("read csv header: %w", err)
		}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	if _, ok := columns["id"]; ok {
		return nil, domain.ErrIDColumnInCSV
	}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, domain.NewValidationError("header", fmt.Sprintf("missing required column %q", col))
		}
	}

	result := &dto.ImportResult{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				result.Failed = append(result.Failed, dto.RowError{Line: perr.Line, Reason: perr.Err.Error()})
				continue
			}
			return result, fmt.Errorf("read csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		row := csvRow{columns: columns, record: record}
		if kind == domain.KindAssets {
			err = s.importAsset(ctx, row)
		} else {
			err = s.importEmployee(ctx, row)
		}

		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				result.Failed = append(result.Failed, dto.RowError{Line: line, Reason: err.Error()})
				continue
			}
			return result, err
		}
		result.Inserted++
	}

	return result, nil
}

func (s *transferService) importAsset(ctx context.Context, row csvRow) error {
	value, err := row.decimal("value")
	if err != nil {
		return err
	}

	_, err = s.assetService.Create(ctx, &dto.AssetRequest{
		Name:              row.get("name"),
		Description:       row.get("description"),
		Value:             value,
		ResponsiblePerson: row.get("responsible_person"),
		PurchasePlace:     row.get("purchase_place"),
		City:              row.get("city"),
		Street:            row.get("street"),
		BuildingNumber:    row.get("building_number"),
		Room:              row.get("room"),
		DateReceived:      row.get("date_received"),
	})
	return err
}

func (s *transferService) importEmployee(ctx context.Context, row csvRow) error {
	salary, err := row.decimal("salary")
	if err != nil {
		return err
	}

	_, err = s.empService.Create(ctx, &dto.EmployeeRequest{
		Name:       row.get("name"),
		Position:   row.get("position"),
		HireDate:   row.get("hire_date"),
		Department: row.get("department"),
		Supervisor: row.get("supervisor"),
		Salary:     salary,
	})
	return err
}

// csvRow - доступ к ячейкам строки по имени колонки
type csvRow struct {
	columns map[string]int
	record  []string
}

func (r csvRow) get(col string) string {
	i, ok := r.columns[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// decimal возвращает nil для пустой ячейки: обязательность проверит сервис
func (r csvRow) decimal(col string) (*float64, error) {
	raw := r.get(col)
	if raw == "" {
		return nil, nil
	}
	v, err := domain.ParseDecimal(col, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func assetRecord(a *domain.Asset) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Name,
		a.Description,
		formatDecimal(a.Value),
		a.ResponsiblePerson,
		a.PurchasePlace,
		a.City,
		a.Street,
		a.BuildingNumber,
		a.Room,
		a.DateReceived,
	}
}

func employeeRecord(e *domain.Employee) []string {
	return []string{
		strconv.FormatInt(e.ID, 10),
		e.Name,
		e.Position,
		e.HireDate,
		e.Department,
		e.Supervisor,
		formatDecimal(e.Salary),
	}
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
