package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	domainRepo "github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

type receiverRepository struct {
	db *gorm.DB
}

// NewReceiverRepository creates a new receiver repository
func NewReceiverRepository(db *gorm.DB) domainRepo.ReceiverRepository {
	return &receiverRepository{db: db}
}

func (r *receiverRepository) Create(ctx context.Context, receiver *entity.Receiver) error {
	return r.db.WithContext(ctx).Create(receiver).Error
}

func (r *receiverRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error) {
	var receiver entity.Receiver
	err := r.db.WithContext(ctx).First(&receiver, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receiver, err
}

func (r *receiverRepository) GetByGSTIN(ctx context.Context, gstin string) (*entity.Receiver, error) {
	var receiver entity.Receiver
	err := r.db.WithContext(ctx).First(&receiver, "gstin = ?", gstin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receiver, err
}

func (r *receiverRepository) Update(ctx context.Context, receiver *entity.Receiver) error {
	return r.db.WithContext(ctx).Save(receiver).Error
}

func (r *receiverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Receiver{}, "id = ?", id).Error
}

func (r *receiverRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Receiver, int64, error) {
	var receivers []entity.Receiver
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receiver{})

	if search != "" {
		query = query.Where("display_name ILIKE ? OR gstin ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("display_name ASC").
		Find(&receivers).Error

	return receivers, total, err
}
