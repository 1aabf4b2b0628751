package documents

import (
	"bytes"
	"fmt"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	issuerName    = "BT Business"
	issuerAddress = "1 Braham Street, London E1 8EE"
	qrSize        = 256
)

// InvoicePDFRenderer prints an invoice on a single A4 page with a QR code
// carrying the payment reference.
type InvoicePDFRenderer struct {
	issuer string
}

var _ interfaces.IInvoiceRenderer = (*InvoicePDFRenderer)(nil)

func NewInvoicePDFRenderer() *InvoicePDFRenderer {
	return &InvoicePDFRenderer{issuer: issuerName}
}

// PaymentReference is the payload encoded in the invoice QR code.
func PaymentReference(inv entities.Invoice) string {
	return fmt.Sprintf("%s|%s|GBP %.2f|due %s", inv.ID, inv.OrderID, inv.Total, inv.DueDate)
}

func (r *InvoicePDFRenderer) RenderInvoice(inv entities.Invoice) ([]byte, error) {
	qrPNG, err := qrcode.Encode(PaymentReference(inv), qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("invoice qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.ID, true)
	pdf.SetAuthor(r.issuer, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	gbp := func(v float64) string { return tr(fmt.Sprintf("£%.2f", v)) }

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 10, r.issuer)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, issuerAddress)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Invoice "+inv.ID)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	for _, row := range [][2]string{
		{"Order", inv.OrderID},
		{"Issued", inv.Date},
		{"Due", inv.DueDate},
		{"Status", string(inv.Status)},
	} {
		pdf.CellFormat(30, 7, row[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 236, 248)
	pdf.CellFormat(100, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Line total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, it := range inv.Items {
		pdf.CellFormat(100, 8, tr(it.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, gbp(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, gbp(it.UnitPrice*float64(it.Quantity)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	for _, row := range []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal", inv.Amount, false},
		{"VAT", inv.VAT, false},
		{"Total", inv.Total, true},
	} {
		style := ""
		if row.bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(155, 7, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, gbp(row.value), "", 1, "R", false, 0, "")
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("payment-qr", 150, 40, 40, 40, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
