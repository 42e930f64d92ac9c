package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV renders rows as comma-delimited records with a trailing newline
// per record.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
