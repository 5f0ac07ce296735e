package importutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GustavoCaso/carlot/internal/storage"
)

const noColumn = -1

// FieldMapping defines which column holds each listing field. Optional
// fields use -1 when the file does not carry them.
type FieldMapping struct {
	MakeColumn  int
	ModelColumn int
	PriceColumn int
	TitleColumn int
}

// RowError is a row that could not be turned into a listing. Row is the
// zero based index of the data row.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row+1, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

type MappingResult struct {
	Listings []storage.Listing
	Errors   []RowError
}

// MappingFromHeaders locates the make, model, price and title columns by
// name, ignoring case and surrounding spaces.
func MappingFromHeaders(headers []string) *FieldMapping {
	mapping := &FieldMapping{
		MakeColumn:  noColumn,
		ModelColumn: noColumn,
		PriceColumn: noColumn,
		TitleColumn: noColumn,
	}

	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "make":
			mapping.MakeColumn = i
		case "model":
			mapping.ModelColumn = i
		case "price":
			mapping.PriceColumn = i
		case "title":
			mapping.TitleColumn = i
		}
	}

	return mapping
}

// Validate checks the mapping against the number of columns in the file.
func (m *FieldMapping) Validate(headerCount int) error {
	if m.MakeColumn == noColumn {
		return errors.New("make column is required")
	}

	columns := map[string]int{
		"make":  m.MakeColumn,
		"model": m.ModelColumn,
		"price": m.PriceColumn,
		"title": m.TitleColumn,
	}
	for name, column := range columns {
		if column < noColumn || column >= headerCount {
			return fmt.Errorf("invalid %s column index: %d", name, column)
		}
	}

	return nil
}

// ApplyMapping turns every row into a listing. Rows that fail are reported
// in the result and skipped.
func ApplyMapping(data *ParsedData, mapping *FieldMapping) (*MappingResult, error) {
	if err := mapping.Validate(len(data.Headers)); err != nil {
		return nil, fmt.Errorf("invalid mapping: %w", err)
	}

	result := &MappingResult{
		Listings: make([]storage.Listing, 0, len(data.Rows)),
	}

	for i, row := range data.Rows {
		listing, err := mapRow(row, mapping)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: i, Err: err})
			continue
		}
		result.Listings = append(result.Listings, listing)
	}

	return result, nil
}

func mapRow(row []string, mapping *FieldMapping) (storage.Listing, error) {
	carMake := column(row, mapping.MakeColumn)
	if carMake == "" {
		return nil, errors.New("make cannot be empty")
	}

	rawPrice := column(row, mapping.PriceColumn)
	price, err := parsePrice(rawPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", rawPrice, err)
	}

	return storage.NewListing(
		0,
		carMake,
		column(row, mapping.ModelColumn),
		column(row, mapping.TitleColumn),
		price,
	), nil
}

func column(row []string, index int) string {
	if index == noColumn || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parsePrice accepts plain or "$25,000.50" style amounts. An empty cell means
// the listing has no price.
func parsePrice(raw string) (*float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if cleaned == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price: %w", err)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, errors.New("price must be a finite number")
	}
	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	return &price, nil
}
