package importutil

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"path"
	"slices"
	"strconv"
	"strings"
)

// ParsedData is the raw table read from an import file.
type ParsedData struct {
	Headers []string
	Rows    [][]string
	Format  string
}

// ParseFile reads a CSV or JSON listings file. The format is picked from the
// file extension.
func ParseFile(filename string, reader io.Reader) (*ParsedData, error) {
	fileFormat := strings.ToLower(path.Ext(filename))

	switch fileFormat {
	case ".csv":
		return parseCSV(reader)
	case ".json":
		return parseJSON(reader)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", fileFormat)
	}
}

// parseCSV expects a header row followed by at least one listing.
func parseCSV(reader io.Reader) (*ParsedData, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("CSV file is empty")
	}

	if len(records) == 1 {
		return nil, errors.New("CSV file has no data rows")
	}

	return &ParsedData{
		Headers: records[0],
		Rows:    records[1:],
		Format:  "csv",
	}, nil
}

// parseJSON expects an array of objects. Headers are the sorted union of the
// keys of every object so that rows line up regardless of key order.
func parseJSON(reader io.Reader) (*ParsedData, error) {
	var data []map[string]any

	if err := json.NewDecoder(reader).Decode(&data); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	if len(data) == 0 {
		return nil, errors.New("JSON file contains no records")
	}

	keys := map[string]struct{}{}
	for _, record := range data {
		for key := range record {
			keys[key] = struct{}{}
		}
	}
	headers := slices.Sorted(maps.Keys(keys))

	rows := make([][]string, 0, len(data))
	for _, record := range data {
		row := make([]string, len(headers))
		for i, header := range headers {
			row[i] = jsonValue(record[header])
		}
		rows = append(rows, row)
	}

	return &ParsedData{
		Headers: headers,
		Rows:    rows,
		Format:  "json",
	}, nil
}

func jsonValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
