package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GustavoCaso/carlot/internal/storage"
)

// GetListings returns every listing in insertion order.
func (s *sqliteStorage) GetListings(ctx context.Context) ([]storage.Listing, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, make, model, title, price FROM listings ORDER BY id")
	if err != nil {
		return []storage.Listing{}, err
	}
	defer rows.Close()

	listings := []storage.Listing{}

	for rows.Next() {
		l, listingErr := listingFromRow(rows.Scan)
		if listingErr != nil {
			return []storage.Listing{}, listingErr
		}

		listings = append(listings, l)
	}

	if rows.Err() != nil {
		return []storage.Listing{}, rows.Err()
	}

	return listings, nil
}

func (s *sqliteStorage) InsertListings(ctx context.Context, listings []storage.Listing) (int64, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	return s.withTx(ctx, func(tx *sql.Tx) (int64, error) {
		return insertListings(ctx, tx, listings)
	})
}

func (s *sqliteStorage) ReplaceListings(ctx context.Context, listings []storage.Listing) (int64, error) {
	return s.withTx(ctx, func(tx *sql.Tx) (int64, error) {
		if _, err := tx.ExecContext(ctx, "DELETE FROM listings"); err != nil {
			return 0, fmt.Errorf("failed to delete listings: %w", err)
		}

		return insertListings(ctx, tx, listings)
	})
}

// withTx commits when fn succeeds and rolls back otherwise.
func (s *sqliteStorage) withTx(ctx context.Context, fn func(*sql.Tx) (int64, error)) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	total, err := fn(tx)
	if err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			return 0, rErr
		}
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit listings: %w", err)
	}

	return total, nil
}

func insertListings(ctx context.Context, tx *sql.Tx, listings []storage.Listing) (int64, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	statement, err := tx.PrepareContext(ctx,
		"INSERT INTO listings(make, model, title, price) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer statement.Close()

	var inserted int64
	for _, l := range listings {
		price := sql.NullFloat64{}
		if l.Price() != nil {
			price = sql.NullFloat64{Float64: *l.Price(), Valid: true}
		}

		result, execErr := statement.ExecContext(ctx, l.Make(), l.Model(), l.Title(), price)
		if execErr != nil {
			return 0, fmt.Errorf("failed to insert listing %q: %w", l.Title(), execErr)
		}

		affected, affectedErr := result.RowsAffected()
		if affectedErr != nil {
			return 0, affectedErr
		}
		inserted += affected
	}

	return inserted, nil
}

func (s *sqliteStorage) DeleteListings(ctx context.Context) (int64, error) {
	r, err := s.db.ExecContext(ctx, "DELETE FROM listings")
	if err != nil {
		return 0, err
	}
	return r.RowsAffected()
}

func listingFromRow(scan func(dest ...any) error) (storage.Listing, error) {
	var id int64
	var carMake, model, title string
	var price sql.NullFloat64

	if err := scan(&id, &carMake, &model, &title, &price); err != nil {
		return nil, err
	}

	var p *float64
	if price.Valid {
		p = &price.Float64
	}

	return storage.NewListing(id, carMake, model, title, p), nil
}
