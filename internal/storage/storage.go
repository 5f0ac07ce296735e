package storage

import (
	"context"

	"github.com/GustavoCaso/carlot/internal/logger"
)

type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "record not found"
}

// Listing is a vehicle listing as stored before it is rendered into a card.
// A nil price renders a card without a price attribute.
type Listing interface {
	ID() int64
	Make() string
	Model() string
	Title() string
	Price() *float64
}

type listing struct {
	id    int64
	make  string
	model string
	title string
	price *float64
}

func NewListing(id int64, carMake, model, title string, price *float64) Listing {
	return &listing{
		id:    id,
		make:  carMake,
		model: model,
		title: title,
		price: price,
	}
}

func (l *listing) ID() int64 {
	return l.id
}

func (l *listing) Make() string {
	return l.make
}

func (l *listing) Model() string {
	return l.model
}

func (l *listing) Title() string {
	return l.title
}

func (l *listing) Price() *float64 {
	return l.price
}

type Storage interface {
	// Migrations
	ApplyMigrations(ctx context.Context, logger *logger.Logger) error

	// Listings
	GetListings(ctx context.Context) ([]Listing, error)
	InsertListings(ctx context.Context, listings []Listing) (int64, error)
	// ReplaceListings deletes every stored listing and inserts the new ones in
	// a single transaction.
	ReplaceListings(ctx context.Context, listings []Listing) (int64, error)
	DeleteListings(ctx context.Context) (int64, error)

	// Resource managment
	Close() error
}
