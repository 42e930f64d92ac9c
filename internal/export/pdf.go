package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// newReportPDF starts a Letter portrait document with a centered title and an
// export timestamp line. Auto page break keeps long tables flowing onto new
// pages.
func newReportPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Exported: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	return pdf
}

func money(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}

// InventoryPDF renders the stock list as a three-column PDF report.
func InventoryPDF(w io.Writer, items []domain.Item, currency string) error {
	pdf := newReportPDF("Inventory Report")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 8, "Item Name", "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Quantity", "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, "Price", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i := range items {
		it := &items[i]
		pdf.CellFormat(90, 6, it.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, strconv.FormatInt(it.Quantity, 10), "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, money(currency, it.Price), "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

// InvoicePDF renders the invoice history as a PDF report, one line per
// invoice in the order given.
func InvoicePDF(w io.Writer, invoices []domain.Invoice, currency string) error {
	pdf := newReportPDF("Invoice Report")

	pdf.SetFont("Helvetica", "", 10)
	for i := range invoices {
		inv := &invoices[i]
		line := fmt.Sprintf("%s | Invoice: %d | Date: %s | Total: %s",
			inv.Supplier, inv.Number, inv.CreatedAt.Format(dateLayout), money(currency, inv.Total))
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

// ReportPDF renders the combined inventory and invoice report: a stock
// section followed by an invoice section.
func ReportPDF(w io.Writer, items []domain.Item, invoices []domain.Invoice, currency string) error {
	pdf := newReportPDF("Full Inventory and Invoice Report")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Inventory Items", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i := range items {
		it := &items[i]
		line := fmt.Sprintf("%s | Qty: %d | Price: %s", it.Name, it.Quantity, money(currency, it.Price))
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Invoices", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i := range invoices {
		inv := &invoices[i]
		line := fmt.Sprintf("%s | Invoice: %d | Date: %s",
			inv.Supplier, inv.Number, inv.CreatedAt.Format(dateLayout))
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
