package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

// InvoiceFilter narrows invoice listings and sales summaries
type InvoiceFilter struct {
	PaymentStatus *enum.PaymentStatus
	From          *time.Time
	To            *time.Time
	Search        string
}

// InvoiceRepository defines the interface for invoice data operations.
// Create persists the invoice together with its lines; stored totals
// are authoritative and are never recomputed by reads.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	List(ctx context.Context, params *pagination.PaginationParams, filter *InvoiceFilter) ([]entity.Invoice, int64, error)
	TotalSales(ctx context.Context, filter *InvoiceFilter) (float64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
