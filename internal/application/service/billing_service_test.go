package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/apperror"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error { return nil }
func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (r *fakeItemRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Item, int64, error) {
	return nil, 0, nil
}

type fakeReceiverRepo struct {
	receivers map[uuid.UUID]*entity.Receiver
	created   []*entity.Receiver
}

func newFakeReceiverRepo(receivers ...*entity.Receiver) *fakeReceiverRepo {
	r := &fakeReceiverRepo{receivers: make(map[uuid.UUID]*entity.Receiver)}
	for _, rec := range receivers {
		r.receivers[rec.ID] = rec
	}
	return r
}

func (r *fakeReceiverRepo) Create(ctx context.Context, receiver *entity.Receiver) error {
	if receiver.ID == uuid.Nil {
		receiver.ID = uuid.New()
	}
	r.receivers[receiver.ID] = receiver
	r.created = append(r.created, receiver)
	return nil
}

func (r *fakeReceiverRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receiver, error) {
	return r.receivers[id], nil
}

func (r *fakeReceiverRepo) GetByGSTIN(ctx context.Context, gstin string) (*entity.Receiver, error) {
	return nil, nil
}

func (r *fakeReceiverRepo) Update(ctx context.Context, receiver *entity.Receiver) error { return nil }
func (r *fakeReceiverRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

func (r *fakeReceiverRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Receiver, int64, error) {
	return nil, 0, nil
}

type fakeInvoiceRepo struct {
	created   []*entity.Invoice
	createErr error
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, invoice)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *pagination.PaginationParams, filter *repository.InvoiceFilter) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (r *fakeInvoiceRepo) TotalSales(ctx context.Context, filter *repository.InvoiceFilter) (float64, error) {
	return 0, nil
}

func (r *fakeInvoiceRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func catalogItem(name string, rate, gstRate float64) *entity.Item {
	return &entity.Item{ID: uuid.New(), Name: name, RateExclGST: rate, GSTRate: gstRate}
}

func newTestBillingService(item *entity.Item, receiver *entity.Receiver, invoiceRepo *fakeInvoiceRepo) (*BillingService, *fakeReceiverRepo) {
	itemRepo := newFakeItemRepo(item)
	receiverRepo := newFakeReceiverRepo()
	if receiver != nil {
		receiverRepo.receivers[receiver.ID] = receiver
	}
	return NewBillingService(itemRepo, receiverRepo, invoiceRepo, enum.PriceExclusive), receiverRepo
}

func TestAddItemUnknownItem(t *testing.T) {
	svc, _ := newTestBillingService(catalogItem("Honey", 250, 18), nil, &fakeInvoiceRepo{})

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.New(), 1)
	appErr := apperror.GetAppError(err)
	if appErr.Code != 404 {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}

func TestGenerateInvoiceClearsBillOnSuccess(t *testing.T) {
	item := catalogItem("Honey 500g", 250, 18)
	receiver := &entity.Receiver{ID: uuid.New(), DisplayName: "Ravi Stores"}
	invoiceRepo := &fakeInvoiceRepo{}
	svc, _ := newTestBillingService(item, receiver, invoiceRepo)
	userID := uuid.New()

	if _, err := svc.AddItem(context.Background(), userID, item.ID, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	inv, err := svc.GenerateInvoice(context.Background(), userID, &GenerateInvoiceInput{
		ReceiverID: &receiver.ID,
	})
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if len(invoiceRepo.created) != 1 {
		t.Fatalf("persisted %d invoices, want 1", len(invoiceRepo.created))
	}
	if inv.Receiver.DisplayName != "Ravi Stores" {
		t.Errorf("receiver snapshot = %q", inv.Receiver.DisplayName)
	}

	if view := svc.GetBill(userID); len(view.Lines) != 0 {
		t.Error("bill must be cleared after a successful invoice")
	}
}

func TestGenerateInvoiceKeepsBillOnFailure(t *testing.T) {
	item := catalogItem("Honey 500g", 250, 18)
	receiver := &entity.Receiver{ID: uuid.New(), DisplayName: "Ravi Stores"}
	invoiceRepo := &fakeInvoiceRepo{createErr: errors.New("connection refused")}
	svc, _ := newTestBillingService(item, receiver, invoiceRepo)
	userID := uuid.New()

	if _, err := svc.AddItem(context.Background(), userID, item.ID, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if _, err := svc.GenerateInvoice(context.Background(), userID, &GenerateInvoiceInput{
		ReceiverID: &receiver.ID,
	}); err == nil {
		t.Fatal("expected an error from the failing sink")
	}

	if view := svc.GetBill(userID); len(view.Lines) != 1 {
		t.Error("bill must be kept intact when persistence fails")
	}
}

func TestGenerateInvoiceEmptyBill(t *testing.T) {
	receiver := &entity.Receiver{ID: uuid.New(), DisplayName: "Ravi Stores"}
	svc, _ := newTestBillingService(catalogItem("Honey", 250, 18), receiver, &fakeInvoiceRepo{})

	_, err := svc.GenerateInvoice(context.Background(), uuid.New(), &GenerateInvoiceInput{
		ReceiverID: &receiver.ID,
	})
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
}

func TestGenerateInvoiceInlineReceiverSavedForFuture(t *testing.T) {
	item := catalogItem("Honey 500g", 250, 18)
	svc, receiverRepo := newTestBillingService(item, nil, &fakeInvoiceRepo{})
	userID := uuid.New()

	if _, err := svc.AddItem(context.Background(), userID, item.ID, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	inv, err := svc.GenerateInvoice(context.Background(), userID, &GenerateInvoiceInput{
		Receiver:     &ReceiverInput{DisplayName: "Walk-in Customer"},
		SaveReceiver: true,
	})
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}

	if len(receiverRepo.created) != 1 {
		t.Fatalf("saved %d receivers, want 1", len(receiverRepo.created))
	}
	if inv.Receiver.DisplayName != "Walk-in Customer" {
		t.Errorf("receiver snapshot = %q", inv.Receiver.DisplayName)
	}
}

func TestBillsAreIsolatedPerUser(t *testing.T) {
	item := catalogItem("Honey 500g", 250, 18)
	svc, _ := newTestBillingService(item, nil, &fakeInvoiceRepo{})
	alice, bob := uuid.New(), uuid.New()

	if _, err := svc.AddItem(context.Background(), alice, item.ID, 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if view := svc.GetBill(bob); len(view.Lines) != 0 {
		t.Error("one user's bill must not leak into another's")
	}
}
