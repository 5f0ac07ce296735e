package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/GustavoCaso/carlot/internal/storage"
)

// Format is an export file format. Both are accepted back by the importer.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// FormatFromFilename picks the export format from the file extension.
func FormatFromFilename(filename string) (Format, error) {
	switch ext := strings.ToLower(path.Ext(filename)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", ext)
	}
}

// Write exports listings in the given format.
func Write(writer io.Writer, format Format, listings []storage.Listing) error {
	switch format {
	case FormatCSV:
		return CSV(writer, listings)
	case FormatJSON:
		return JSON(writer, listings)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// CSV exports listings to CSV format
// format: make,model,price,title
func CSV(writer io.Writer, listings []storage.Listing) error {
	w := csv.NewWriter(writer)

	records := make([][]string, 0, len(listings)+1)
	records = append(records, []string{"make", "model", "price", "title"})

	for _, listing := range listings {
		records = append(records, []string{
			listing.Make(),
			listing.Model(),
			formatPrice(listing.Price()),
			listing.Title(),
		})
	}

	// WriteAll flushes
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

type jsonListing struct {
	Make  string   `json:"make"`
	Model string   `json:"model,omitempty"`
	Price *float64 `json:"price,omitempty"`
	Title string   `json:"title,omitempty"`
}

// JSON exports listings as an array of objects.
func JSON(writer io.Writer, listings []storage.Listing) error {
	records := make([]jsonListing, 0, len(listings))
	for _, listing := range listings {
		records = append(records, jsonListing{
			Make:  listing.Make(),
			Model: listing.Model(),
			Price: listing.Price(),
			Title: listing.Title(),
		})
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to write JSON records: %w", err)
	}

	return nil
}

func formatPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}
