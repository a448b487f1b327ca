package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/apperror"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

// InvoiceService handles persisted invoice operations. Stored totals
// are authoritative; nothing here recomputes them.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// InvoiceListOutput is a page of invoices with the filtered sales sum
type InvoiceListOutput struct {
	Invoices   []entity.Invoice `json:"invoices"`
	Meta       *pagination.Meta `json:"meta"`
	TotalSales float64          `json:"total_sales"`
}

// List returns a filtered page of invoices together with the total
// sales over the same filter (not just the page).
func (s *InvoiceService) List(ctx context.Context, params *pagination.PaginationParams, filter *repository.InvoiceFilter) (*InvoiceListOutput, error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}

	totalSales, err := s.invoiceRepo.TotalSales(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &InvoiceListOutput{
		Invoices:   invoices,
		Meta:       pagination.NewMeta(params, total),
		TotalSales: totalSales,
	}, nil
}

// GetByID fetches an invoice with its lines
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// UpdatePaymentStatus marks an invoice paid or unpaid. This is the only
// mutable field of a persisted invoice.
func (s *InvoiceService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if err := s.invoiceRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	invoice.PaymentStatus = status
	return invoice, nil
}

// Delete removes an invoice and its lines
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}
