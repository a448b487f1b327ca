package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/billing"
	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/apperror"
)

// invoiceSink adapts the invoice repository to the materializer's sink.
type invoiceSink struct {
	repo repository.InvoiceRepository
}

func (s invoiceSink) Save(ctx context.Context, invoice *entity.Invoice) error {
	return s.repo.Create(ctx, invoice)
}

// BillingService owns the per-user current bills. Bills live in memory
// only; an invoice is the persistent outcome of a bill. A mutex guards
// the bill map against concurrent requests from the same user.
type BillingService struct {
	mu    sync.Mutex
	bills map[uuid.UUID]*billing.Bill

	convention   enum.PriceConvention
	itemRepo     repository.ItemRepository
	receiverRepo repository.ReceiverRepository
	materializer *billing.Materializer
}

// NewBillingService creates a new billing service
func NewBillingService(
	itemRepo repository.ItemRepository,
	receiverRepo repository.ReceiverRepository,
	invoiceRepo repository.InvoiceRepository,
	convention enum.PriceConvention,
) *BillingService {
	return &BillingService{
		bills:        make(map[uuid.UUID]*billing.Bill),
		convention:   convention,
		itemRepo:     itemRepo,
		receiverRepo: receiverRepo,
		materializer: billing.NewMaterializer(invoiceSink{repo: invoiceRepo}),
	}
}

// BillView is the serializable state of a user's current bill
type BillView struct {
	Convention enum.PriceConvention `json:"convention"`
	Lines      []billing.Line       `json:"lines"`
	Totals     billing.Totals       `json:"totals"`
}

func (s *BillingService) billFor(userID uuid.UUID) *billing.Bill {
	bill, ok := s.bills[userID]
	if !ok {
		bill = billing.NewBill(s.convention)
		s.bills[userID] = bill
	}
	return bill
}

func (s *BillingService) view(bill *billing.Bill) *BillView {
	return &BillView{
		Convention: bill.Convention(),
		Lines:      bill.Lines(),
		Totals:     bill.Totals(),
	}
}

// GetBill returns the user's current bill with live totals
func (s *BillingService) GetBill(userID uuid.UUID) *BillView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.billFor(userID))
}

// AddItem adds quantity of a catalog item to the user's bill
func (s *BillingService) AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*BillView, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bill := s.billFor(userID)
	if err := bill.AddItem(item, quantity); err != nil {
		return nil, mapBillError(err)
	}
	return s.view(bill), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
func (s *BillingService) UpdateQuantity(userID, itemID uuid.UUID, quantity int) *BillView {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill := s.billFor(userID)
	bill.UpdateQuantity(itemID, quantity)
	return s.view(bill)
}

// RemoveItem removes a line from the user's bill
func (s *BillingService) RemoveItem(userID, itemID uuid.UUID) *BillView {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill := s.billFor(userID)
	bill.RemoveItem(itemID)
	return s.view(bill)
}

// ClearBill empties the user's bill
func (s *BillingService) ClearBill(userID uuid.UUID) *BillView {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill := s.billFor(userID)
	bill.Clear()
	return s.view(bill)
}

// GenerateInvoiceInput carries the commit request for a current bill.
// The receiver is either a saved one (ReceiverID) or supplied inline;
// an inline receiver may additionally be saved for future invoices.
type GenerateInvoiceInput struct {
	ReceiverID    *uuid.UUID
	Receiver      *ReceiverInput
	SaveReceiver  bool
	PaymentStatus enum.PaymentStatus
	Extras        billing.Extras
}

// GenerateInvoice freezes the user's bill into a persisted invoice.
// The bill is cleared only after the invoice is stored; any failure
// leaves it intact for correction or retry.
func (s *BillingService) GenerateInvoice(ctx context.Context, userID uuid.UUID, input *GenerateInvoiceInput) (*entity.Invoice, error) {
	receiver, err := s.resolveReceiver(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bill := s.billFor(userID)
	invoice, err := s.materializer.Materialize(ctx, bill.Lines(), receiver, input.Extras, input.PaymentStatus)
	if err != nil {
		return nil, mapBillError(err)
	}

	bill.Clear()
	return invoice, nil
}

func (s *BillingService) resolveReceiver(ctx context.Context, input *GenerateInvoiceInput) (*entity.Receiver, error) {
	if input.ReceiverID != nil {
		receiver, err := s.receiverRepo.GetByID(ctx, *input.ReceiverID)
		if err != nil {
			return nil, err
		}
		if receiver == nil {
			return nil, apperror.NewNotFoundError("Receiver")
		}
		return receiver, nil
	}

	if input.Receiver == nil || strings.TrimSpace(input.Receiver.DisplayName) == "" {
		return nil, mapBillError(billing.ErrMissingReceiver)
	}

	receiver := &entity.Receiver{}
	input.Receiver.apply(receiver)

	if input.SaveReceiver {
		if err := input.Receiver.validate(); err != nil {
			return nil, err
		}
		if err := s.receiverRepo.Create(ctx, receiver); err != nil {
			return nil, err
		}
	}
	return receiver, nil
}

// mapBillError translates billing-core sentinels into HTTP app errors
func mapBillError(err error) error {
	switch {
	case errors.Is(err, billing.ErrEmptyBill),
		errors.Is(err, billing.ErrMissingReceiver),
		errors.Is(err, billing.ErrInvalidQuantity),
		errors.Is(err, billing.ErrInvalidGSTRate):
		return apperror.NewUnprocessableError(err.Error())
	}

	var perr *billing.PersistenceError
	if errors.As(err, &perr) {
		return apperror.NewAppError(http.StatusInternalServerError, "Failed to save invoice, the bill was kept")
	}
	return err
}
