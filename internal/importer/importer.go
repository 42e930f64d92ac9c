// Package importer parses inventory CSV files into item records.
// Pure function: a reader in, records out. No store dependencies.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one inventory row parsed from a CSV file.
type Record struct {
	Name     string
	Quantity int64
	Price    decimal.Decimal
}

// columns holds the index of each required column within a row.
type columns struct {
	name     int
	quantity int
	price    int
}

// ParseItems reads inventory rows from r. The first row must be a header
// naming "Item Name", "Quantity", and "Price" columns (case-insensitive);
// extra columns, such as the ID column written by the CSV export, are
// ignored. Rows with a blank name are skipped.
func ParseItems(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		if len(record) == 0 {
			continue
		}

		name := strings.TrimSpace(field(record, cols.name))
		if name == "" {
			continue
		}

		rawQty := strings.TrimSpace(field(record, cols.quantity))
		qty, err := strconv.ParseInt(rawQty, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity %q: not a number", line, rawQty)
		}

		rawPrice := strings.TrimSpace(field(record, cols.price))
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("row %d: price %q: not a number", line, rawPrice)
		}

		records = append(records, Record{
			Name:     name,
			Quantity: qty,
			Price:    price,
		})
	}

	return records, nil
}

// mapColumns locates the required columns by header name.
func mapColumns(header []string) (columns, error) {
	cols := columns{name: -1, quantity: -1, price: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "item name", "name":
			cols.name = i
		case "quantity", "qty":
			cols.quantity = i
		case "price":
			cols.price = i
		}
	}
	switch {
	case cols.name < 0:
		return cols, errors.New(`header: missing "Item Name" column`)
	case cols.quantity < 0:
		return cols, errors.New(`header: missing "Quantity" column`)
	case cols.price < 0:
		return cols, errors.New(`header: missing "Price" column`)
	}
	return cols, nil
}

// field returns the column at index i, or "" when the row is shorter.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
