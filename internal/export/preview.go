package export

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// PrintPreview renders items as the fixed-width text table used for print
// preview: a title, a header row, a dashed separator, then one line per item
// with the name padded to 30 characters, the quantity to 15, and a
// two-decimal price.
func PrintPreview(items []domain.Item) string {
	var b strings.Builder
	b.WriteString("Inventory Report\n\n")
	fmt.Fprintf(&b, "%-30s%-15s%-10s\n", "Item Name", "Quantity", "Price")
	b.WriteString(strings.Repeat("-", 60))
	b.WriteByte('\n')
	for i := range items {
		it := &items[i]
		fmt.Fprintf(&b, "%-30s%-15d%-10s\n", it.Name, it.Quantity, it.Price.StringFixed(2))
	}
	return b.String()
}
