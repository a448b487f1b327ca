package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/pkg/apperror"
	"github.com/naturenectar/billing-api/pkg/printer"
)

// ShopInfo is the seller identity printed on every invoice header
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
}

// PrinterService renders GST invoices as ESC/POS and drives the
// thermal printer.
type PrinterService struct {
	printer     printer.Printer
	invoiceRepo repository.InvoiceRepository
	shop        ShopInfo
	printerType string
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	invoiceRepo repository.InvoiceRepository,
	shop ShopInfo,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		invoiceRepo: invoiceRepo,
		shop:        shop,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(32)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Text(s.shop.Name).
		LineFeed()
	doc.SetAlign(printer.AlignLeft).
		KeyValue("Status:", "OK").
		FeedLines(3).
		PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// PrintInvoice fetches a persisted invoice and prints it. The stored
// amounts go on paper as-is.
func (s *PrinterService) PrintInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	data := s.FormatInvoice(invoice)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoice.InvoiceNumber, err)
		return invoice, fmt.Errorf("failed to print invoice: %w", err)
	}

	return invoice, nil
}

// FormatInvoice converts an invoice into ESC/POS bytes
func (s *PrinterService) FormatInvoice(inv *entity.Invoice) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.shop.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if s.shop.Address != "" {
		doc.Text(s.shop.Address)
	}
	if s.shop.Phone != "" {
		doc.Text(s.shop.Phone)
	}
	if s.shop.GSTIN != "" {
		doc.TextF("GSTIN: %s", s.shop.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", inv.InvoiceNumber).
		KeyValue("Date:", inv.CreatedAt.Format("02-01-2006 15:04"))

	doc.KeyValue("Bill To:", inv.Receiver.DisplayName)
	if inv.Receiver.GSTIN != nil && *inv.Receiver.GSTIN != "" {
		doc.KeyValue("GSTIN:", *inv.Receiver.GSTIN)
	}
	if inv.BuyersOrderNo != nil && *inv.BuyersOrderNo != "" {
		doc.KeyValue("Order No:", *inv.BuyersOrderNo)
	}
	if inv.DispatchedThrough != nil && *inv.DispatchedThrough != "" {
		doc.KeyValue("Dispatch:", *inv.DispatchedThrough)
	}
	if inv.Destination != nil && *inv.Destination != "" {
		doc.KeyValue("Destination:", *inv.Destination)
	}

	doc.Separator('-')

	// Line items with HSN and per-line tax split
	for _, item := range inv.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitRate)
		}
		if item.HSNCode != nil && *item.HSNCode != "" {
			doc.TextF("  HSN: %s", *item.HSNCode)
		}
		if item.GSTRate > 0 {
			doc.TaxLine("CGST", item.GSTRate/2, fmt.Sprintf("%.2f", item.CGST))
			doc.TaxLine("SGST", item.GSTRate/2, fmt.Sprintf("%.2f", item.SGST))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", inv.Subtotal)).
		KeyValue("CGST:", fmt.Sprintf("%.2f", inv.CGST)).
		KeyValue("SGST:", fmt.Sprintf("%.2f", inv.SGST))
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", inv.Total)).
		SetBold(false)

	if inv.PaymentStatus == enum.PaymentStatusPaid {
		doc.SetAlign(printer.AlignCenter).Text("** PAID **").SetAlign(printer.AlignLeft)
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
