package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/apperror"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

// ReceiverService handles receiver (customer) operations
type ReceiverService struct {
	receiverRepo repository.ReceiverRepository
}

// NewReceiverService creates a new receiver service
func NewReceiverService(receiverRepo repository.ReceiverRepository) *ReceiverService {
	return &ReceiverService{receiverRepo: receiverRepo}
}

// ReceiverInput holds the writable fields of a receiver
type ReceiverInput struct {
	CustomerType    enum.CustomerType
	DisplayName     string
	ContactName     *string
	GSTIN           *string
	Phone           *string
	Email           *string
	BillingAddress  entity.Address
	ShippingAddress entity.Address
}

func (input *ReceiverInput) validate() error {
	if strings.TrimSpace(input.DisplayName) == "" {
		return apperror.NewUnprocessableError("Display name is required")
	}
	if input.GSTIN != nil && *input.GSTIN != "" && len(*input.GSTIN) != 15 {
		return apperror.NewUnprocessableError("GSTIN must be 15 characters")
	}
	return nil
}

func (input *ReceiverInput) apply(r *entity.Receiver) {
	r.CustomerType = input.CustomerType
	r.DisplayName = strings.TrimSpace(input.DisplayName)
	r.ContactName = input.ContactName
	r.GSTIN = input.GSTIN
	r.Phone = input.Phone
	r.Email = input.Email
	r.BillingAddress = input.BillingAddress
	r.ShippingAddress = input.ShippingAddress
}

// Create saves a new receiver
func (s *ReceiverService) Create(ctx context.Context, input *ReceiverInput) (*entity.Receiver, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	receiver := &entity.Receiver{}
	input.apply(receiver)

	if err := s.receiverRepo.Create(ctx, receiver); err != nil {
		return nil, err
	}
	return receiver, nil
}

// GetByID fetches a receiver
func (s *ReceiverService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error) {
	receiver, err := s.receiverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperror.NewNotFoundError("Receiver")
	}
	return receiver, nil
}

// Update replaces the writable fields of a receiver. Invoices already
// generated keep their frozen snapshot.
func (s *ReceiverService) Update(ctx context.Context, id uuid.UUID, input *ReceiverInput) (*entity.Receiver, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	receiver, err := s.receiverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperror.NewNotFoundError("Receiver")
	}

	input.apply(receiver)

	if err := s.receiverRepo.Update(ctx, receiver); err != nil {
		return nil, err
	}
	return receiver, nil
}

// Delete soft-deletes a receiver
func (s *ReceiverService) Delete(ctx context.Context, id uuid.UUID) error {
	receiver, err := s.receiverRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receiver == nil {
		return apperror.NewNotFoundError("Receiver")
	}
	return s.receiverRepo.Delete(ctx, id)
}

// List returns a page of receivers, optionally filtered by search
func (s *ReceiverService) List(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Receiver], error) {
	receivers, total, err := s.receiverRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(receivers, params, total), nil
}
