package importutil

import (
	"strings"
	"testing"

	"github.com/GustavoCaso/carlot/internal/testutil"
)

func TestImportCSV(t *testing.T) {
	logger := testutil.TestLogger(t)
	stor := testutil.SetupTestStorage(t, logger)

	csvData := `make,model,price,title
Toyota,Corolla,20000,
Honda,Civic,,Honda Civic Sport
,Clio,9000,`

	info := Import(t.Context(), "listings.csv", strings.NewReader(csvData), stor, logger)
	if info.Error != nil {
		t.Fatalf("Import failed: %v", info.Error)
	}

	if info.TotalImports != 2 {
		t.Errorf("TotalImports = %d, want 2", info.TotalImports)
	}
	if len(info.Skipped) != 1 {
		t.Errorf("Skipped = %d, want 1", len(info.Skipped))
	}

	listings, err := stor.GetListings(t.Context())
	if err != nil {
		t.Fatalf("Failed to get listings: %v", err)
	}

	if len(listings) != 2 {
		t.Fatalf("Expected 2 listings, got %d", len(listings))
	}
	if listings[0].Make() != "Toyota" || *listings[0].Price() != 20000 {
		t.Errorf("Listing[0] = %s %v, want Toyota 20000", listings[0].Make(), listings[0].Price())
	}
	if listings[1].Price() != nil {
		t.Errorf("Listing[1].Price = %v, want nil", *listings[1].Price())
	}
	if listings[1].Title() != "Honda Civic Sport" {
		t.Errorf("Listing[1].Title = %v, want Honda Civic Sport", listings[1].Title())
	}
}

func TestImportJSON(t *testing.T) {
	logger := testutil.TestLogger(t)
	stor := testutil.SetupTestStorage(t, logger)

	jsonData := `[{"make": "Toyota", "model": "Camry", "price": 30000}]`

	info := Import(t.Context(), "listings.json", strings.NewReader(jsonData), stor, logger)
	if info.Error != nil {
		t.Fatalf("Import failed: %v", info.Error)
	}
	if info.TotalImports != 1 {
		t.Errorf("TotalImports = %d, want 1", info.TotalImports)
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"unsupported format", "listings.txt", "make\nToyota"},
		{"no make column", "listings.csv", "model,price\nCorolla,1"},
		{"no valid rows", "listings.csv", "make,price\n,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := testutil.TestLogger(t)
			stor := testutil.SetupTestStorage(t, logger)

			info := Import(t.Context(), tt.filename, strings.NewReader(tt.content), stor, logger)
			if info.Error == nil {
				t.Fatal("Expected error, got nil")
			}
			if info.TotalImports != 0 {
				t.Errorf("TotalImports = %d, want 0", info.TotalImports)
			}
		})
	}
}

func TestImportReplace(t *testing.T) {
	logger := testutil.TestLogger(t)
	stor := testutil.SetupTestStorage(t, logger)
	testutil.SeedListings(t, stor)

	info := ImportReplace(t.Context(), "listings.csv", strings.NewReader("make,price\nFord,12000"), stor, logger)
	if info.Error != nil {
		t.Fatalf("ImportReplace failed: %v", info.Error)
	}

	listings, err := stor.GetListings(t.Context())
	if err != nil {
		t.Fatalf("Failed to get listings: %v", err)
	}
	if len(listings) != 1 || listings[0].Make() != "Ford" {
		t.Errorf("Expected only the Ford listing, got %d listings", len(listings))
	}
}

func TestImportReplaceInvalidFileKeepsListings(t *testing.T) {
	logger := testutil.TestLogger(t)
	stor := testutil.SetupTestStorage(t, logger)
	testutil.SeedListings(t, stor)

	info := ImportReplace(t.Context(), "listings.csv", strings.NewReader("make,price\n,abc"), stor, logger)
	if info.Error == nil {
		t.Fatal("Expected error, got nil")
	}

	listings, err := stor.GetListings(t.Context())
	if err != nil {
		t.Fatalf("Failed to get listings: %v", err)
	}
	if len(listings) != 3 {
		t.Errorf("Expected the 3 stored listings to survive, got %d", len(listings))
	}
}
