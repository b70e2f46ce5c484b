package service

import (
	"context"
	"strings"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/repository"
	"github.com/go-playground/validator/v10"
)

// AssetService определяет интерфейс бизнес-логики для имущества
type AssetService interface {
	Create(ctx context.Context, req *dto.AssetRequest) (*domain.Asset, error)
	GetByID(ctx context.Context, id int64) (*domain.Asset, error)
	Update(ctx context.Context, id int64, req *dto.AssetRequest) (*domain.Asset, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query *dto.ListAssetsQuery) ([]domain.Asset, error)
}

type assetService struct {
	assetRepo repository.AssetRepository
	validator *validator.Validate
}

// NewAssetService создаёт новый экземпляр сервиса
func NewAssetService(assetRepo repository.AssetRepository) AssetService {
	return &assetService{
		assetRepo: assetRepo,
		validator: newValidator(),
	}
}

func (s *assetService) Create(ctx context.Context, req *dto.AssetRequest) (*domain.Asset, error) {
	asset, err := s.buildAsset(req)
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func (s *assetService) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	return s.assetRepo.GetByID(ctx, id)
}

func (s *assetService) Update(ctx context.Context, id int64, req *dto.AssetRequest) (*domain.Asset, error) {
	asset, err := s.buildAsset(req)
	if err != nil {
		return nil, err
	}
	asset.ID = id

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func (s *assetService) Delete(ctx context.Context, id int64) error {
	return s.assetRepo.Delete(ctx, id)
}

func (s *assetService) List(ctx context.Context, query *dto.ListAssetsQuery) ([]domain.Asset, error) {
	if query == nil {
		return s.assetRepo.List(ctx, nil)
	}

	q := *query
	if len(query.Filters) > 0 {
		q.Filters = make(map[string]string, len(query.Filters))
		for col, value := range query.Filters {
			q.Filters[strings.TrimSpace(col)] = strings.TrimSpace(value)
		}
	}

	// Диапазон дат сравнивается хронологически, поэтому границы
	// приводятся к тому же виду, что и хранимые даты.
	if query.Date != nil {
		if err := validateStruct(s.validator, query.Date); err != nil {
			return nil, err
		}
		q.Date = &dto.DateRange{
			Start: normalizedDate(query.Date.Start),
			End:   normalizedDate(query.Date.End),
		}
	}

	return s.assetRepo.List(ctx, &q)
}

// buildAsset нормализует запрос, проверяет обязательные поля и собирает модель
func (s *assetService) buildAsset(req *dto.AssetRequest) (*domain.Asset, error) {
	if req == nil {
		return nil, domain.NewValidationError("", "request is required")
	}

	r := dto.AssetRequest{
		Name:              strings.TrimSpace(req.Name),
		Description:       strings.TrimSpace(req.Description),
		Value:             req.Value,
		ResponsiblePerson: strings.TrimSpace(req.ResponsiblePerson),
		PurchasePlace:     strings.TrimSpace(req.PurchasePlace),
		City:              strings.TrimSpace(req.City),
		Street:            strings.TrimSpace(req.Street),
		BuildingNumber:    strings.TrimSpace(req.BuildingNumber),
		Room:              strings.TrimSpace(req.Room),
		DateReceived:      strings.TrimSpace(req.DateReceived),
	}
	if err := validateStruct(s.validator, &r); err != nil {
		return nil, err
	}

	return &domain.Asset{
		Name:              r.Name,
		Description:       r.Description,
		Value:             *r.Value,
		ResponsiblePerson: r.ResponsiblePerson,
		PurchasePlace:     r.PurchasePlace,
		City:              r.City,
		Street:            r.Street,
		BuildingNumber:    r.BuildingNumber,
		Room:              r.Room,
		DateReceived:      normalizedDate(r.DateReceived),
	}, nil
}
