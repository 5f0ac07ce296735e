package testutil

import (
	"path/filepath"
	"testing"

	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
	"github.com/GustavoCaso/carlot/internal/storage/sqlite"
)

// SetupTestStorage returns a migrated sqlite store backed by a file in a
// per-test temporary directory.
func SetupTestStorage(t *testing.T, logger *logger.Logger) storage.Storage {
	t.Helper()

	stor, err := sqlite.New(config.DBConfig{Source: filepath.Join(t.TempDir(), "carlot.db")})
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}

	err = stor.ApplyMigrations(t.Context(), logger)
	if err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := stor.Close(); err != nil {
			t.Errorf("Failed to close test storage: %v", err)
		}
	})

	return stor
}

// SeedListings stores the listings that SampleDocument renders.
func SeedListings(t *testing.T, stor storage.Storage) []storage.Listing {
	t.Helper()

	listings := SampleListings()
	if _, err := stor.InsertListings(t.Context(), listings); err != nil {
		t.Fatalf("Failed to seed listings: %v", err)
	}

	return listings
}

// SampleListings mirrors the cards in SampleDocument.
func SampleListings() []storage.Listing {
	return []storage.Listing{
		storage.NewListing(0, "Toyota", "Corolla", "Toyota Corolla", price(20000)),
		storage.NewListing(0, "Honda", "Civic", "Honda Civic", price(15000)),
		storage.NewListing(0, "Toyota", "Camry", "Toyota Camry", price(30000)),
	}
}

func price(v float64) *float64 {
	return &v
}
