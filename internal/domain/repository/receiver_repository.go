package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

// ReceiverRepository defines the interface for receiver data operations
type ReceiverRepository interface {
	Create(ctx context.Context, receiver *entity.Receiver) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error)
	GetByGSTIN(ctx context.Context, gstin string) (*entity.Receiver, error)
	Update(ctx context.Context, receiver *entity.Receiver) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Receiver, int64, error)
}
