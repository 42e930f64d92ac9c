// Package export flattens inventory and invoice collections into ordered
// tabular rows and renders them as CSV, XLSX, PDF, or plain text. Pure data
// shaping: domain values in, formatted output out. No store access.
package export

import (
	"strconv"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// dateLayout is the layout used for invoice dates in every export format.
const dateLayout = "2006-01-02"

// ItemRows flattens items into rows for tabular export. The first row is the
// header; prices are formatted with two decimals.
func ItemRows(items []domain.Item) [][]string {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, []string{"ID", "Item Name", "Quantity", "Price"})
	for i := range items {
		it := &items[i]
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			strconv.FormatInt(it.Quantity, 10),
			it.Price.StringFixed(2),
		})
	}
	return rows
}

// InvoiceRows flattens invoices into summary rows, one per invoice. The Items
// column counts units across all lines.
func InvoiceRows(invoices []domain.Invoice) [][]string {
	rows := make([][]string, 0, len(invoices)+1)
	rows = append(rows, []string{"Invoice No.", "Supplier", "Date", "Items", "Total"})
	for i := range invoices {
		inv := &invoices[i]
		rows = append(rows, []string{
			strconv.FormatInt(inv.Number, 10),
			inv.Supplier,
			inv.CreatedAt.Format(dateLayout),
			strconv.FormatInt(inv.Units(), 10),
			inv.Total.StringFixed(2),
		})
	}
	return rows
}

// InvoiceLineRows flattens the frozen line snapshots of a single invoice.
func InvoiceLineRows(inv domain.Invoice) [][]string {
	rows := make([][]string, 0, len(inv.Lines)+1)
	rows = append(rows, []string{"Item", "Quantity", "Unit Price", "Line Total"})
	for _, l := range inv.Lines {
		rows = append(rows, []string{
			l.Name,
			strconv.FormatInt(l.Quantity, 10),
			l.UnitPrice.StringFixed(2),
			l.LineTotal.StringFixed(2),
		})
	}
	return rows
}
