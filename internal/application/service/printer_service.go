package service

import (
	"fmt"
	"time"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/pkg/printer"
)

// timeNow is swapped out in tests for deterministic receipt dates.
var timeNow = time.Now

// PrinterService drives the two thermal printers at the till: an ESC/POS
// receipt printer and a TSPL garment-tag printer.
type PrinterService struct {
	receipt      printer.Printer
	tags         printer.Printer
	receiptWidth int
	receiptType  string
	tagType      string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(receipt, tags printer.Printer, receiptWidth int, receiptType, tagType string) *PrinterService {
	if receiptWidth <= 0 {
		receiptWidth = printer.Width80mm
	}
	return &PrinterService{
		receipt:      receipt,
		tags:         tags,
		receiptWidth: receiptWidth,
		receiptType:  receiptType,
		tagType:      tagType,
	}
}

// PrinterStatus reports one printer's configuration and reachability.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status holds the status of both printers.
type Status struct {
	Receipt PrinterStatus `json:"receipt"`
	Tag     PrinterStatus `json:"tag"`
}

// GetStatus returns connection status for the receipt and tag printers.
func (s *PrinterService) GetStatus() *Status {
	return &Status{
		Receipt: PrinterStatus{
			Configured: s.receiptType != "none" && s.receiptType != "",
			Connected:  s.receipt.IsConnected(),
			Type:       s.receiptType,
		},
		Tag: PrinterStatus{
			Configured: s.tagType != "none" && s.tagType != "",
			Connected:  s.tags.IsConnected(),
			Type:       s.tagType,
		},
	}
}

// TestPrint sends a sample bill to the receipt printer.
// Returns the bill so the handler can return it as JSON when no printer is
// configured.
func (s *PrinterService) TestPrint() (*entity.Bill, error) {
	bill := &entity.Bill{
		BusinessName: "PRINTER TEST",
		Address:      "Test Address",
		Phone:        "+91 0000000000",
		BillNumber:   "TEST-001",
		CustomerName: "Test Customer",
		Items: []entity.BillItem{
			{Name: "Test Item 1", Quantity: 1, Rate: 10.00, Amount: 10.00},
			{Name: "Test Item 2", Quantity: 2, Rate: 5.00, Amount: 10.00},
		},
		Subtotal:        20.00,
		GrandTotal:      20.00,
		ThankYouMessage: "Test complete",
	}

	if err := s.PrintBill(bill); err != nil {
		return bill, fmt.Errorf("test print failed: %w", err)
	}
	return bill, nil
}

// PrintBill formats and sends a bill to the receipt printer.
func (s *PrinterService) PrintBill(bill *entity.Bill) error {
	return s.receipt.Print(FormatBill(bill, s.receiptWidth))
}

// PrintTags formats and sends one label per tag to the tag printer.
func (s *PrinterService) PrintTags(tags []entity.Tag) error {
	for i := range tags {
		if err := s.tags.Print(FormatTag(&tags[i])); err != nil {
			return fmt.Errorf("tag %d/%d: %w", tags[i].Index, tags[i].Total, err)
		}
	}
	return nil
}

// FormatBill converts a bill into ESC/POS bytes.
func FormatBill(b *entity.Bill, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(b.BusinessName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if b.Address != "" {
		doc.Text(b.Address)
	}
	if b.Phone != "" {
		doc.Text(b.Phone)
	}
	if b.GSTNumber != "" {
		doc.TextF("GSTIN: %s", b.GSTNumber)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('=')

	doc.KeyValue("Bill No:", b.BillNumber).
		KeyValue("Date:", nowStamp()).
		KeyValue("Customer:", b.CustomerName)

	doc.Separator('=')

	// Items
	for _, item := range b.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Amount))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.Rate)
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", b.Subtotal))
	if b.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", b.Discount))
	}
	if b.DeliveryCharge > 0 {
		doc.KeyValue("Delivery:", fmt.Sprintf("%.2f", b.DeliveryCharge))
	}
	doc.SetBold(true).
		SetFontSize(printer.FontTall).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", b.GrandTotal)).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	doc.Separator('=')

	// Footer
	doc.SetAlign(printer.AlignCenter)
	if b.ThankYouMessage != "" {
		doc.LineFeed().Text(b.ThankYouMessage)
	}
	doc.SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// Tag labels are 50x30 mm with a 2 mm gap, printed at 203 dpi (8 dots/mm).
const (
	tagWidthMM  = 50
	tagHeightMM = 30
	tagGapMM    = 2
)

// FormatTag converts one garment tag into TSPL bytes for a single label.
func FormatTag(t *entity.Tag) []byte {
	label := printer.NewLabel(tagWidthMM, tagHeightMM, tagGapMM)

	label.Text(16, 8, "1", 1, t.BusinessName)
	label.Text(16, 40, "2", 1, fmt.Sprintf("%s  %d/%d", t.BillNumber, t.Index, t.Total))
	label.Text(16, 76, "2", 1, t.ItemName)
	label.Text(16, 108, "1", 1, fmt.Sprintf("%s  %s", t.CustomerName, t.Date))

	// Boxed band marks the wash type for quick sorting at the rack.
	label.Box(16, 134, 384, 166, 2)
	label.Text(24, 140, "1", 1, t.WashType.String())

	label.Barcode(16, 172, 48, t.Barcode)

	return label.Print(1)
}

func nowStamp() string {
	return timeNow().Format("02 Jan 2006 15:04")
}
