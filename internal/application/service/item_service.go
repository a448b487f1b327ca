package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/apperror"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// ItemInput holds the writable fields of a catalog item
type ItemInput struct {
	Name        string
	Weight      *float64
	WeightUnit  string
	RateExclGST float64
	MRPInclGST  *float64
	HSNCode     *string
	GSTRate     float64
}

func validateItemInput(input *ItemInput) error {
	if input.GSTRate < 0 || input.GSTRate > 100 {
		return apperror.NewUnprocessableError("GST rate must be between 0 and 100")
	}
	if input.RateExclGST < 0 {
		return apperror.NewUnprocessableError("Rate cannot be negative")
	}
	return nil
}

// Create adds a new catalog item
func (s *ItemService) Create(ctx context.Context, input *ItemInput) (*entity.Item, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item := &entity.Item{
		Name:        input.Name,
		Weight:      input.Weight,
		WeightUnit:  input.WeightUnit,
		RateExclGST: input.RateExclGST,
		MRPInclGST:  input.MRPInclGST,
		HSNCode:     input.HSNCode,
		GSTRate:     input.GSTRate,
	}
	if item.WeightUnit == "" {
		item.WeightUnit = "g"
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID fetches a catalog item
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// Update replaces the writable fields of a catalog item
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, input *ItemInput) (*entity.Item, error) {
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	item.Name = input.Name
	item.Weight = input.Weight
	if input.WeightUnit != "" {
		item.WeightUnit = input.WeightUnit
	}
	item.RateExclGST = input.RateExclGST
	item.MRPInclGST = input.MRPInclGST
	item.HSNCode = input.HSNCode
	item.GSTRate = input.GSTRate

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete soft-deletes a catalog item. Past invoices keep their
// snapshotted copy of the item.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return s.itemRepo.Delete(ctx, id)
}

// List returns a page of catalog items, optionally filtered by search
func (s *ItemService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(items, params, total), nil
}
