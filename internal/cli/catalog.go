package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/render"
	"github.com/GustavoCaso/carlot/internal/storage"
)

// RenderOptions builds the renderer options from the catalog configuration.
func RenderOptions(conf *config.Config) render.Options {
	return render.Options{
		Currency:  conf.Catalog.Currency,
		Selectors: conf.Catalog.Selectors(),
	}
}

// RenderListings writes the catalog document for every stored listing.
func RenderListings(ctx context.Context, w io.Writer, stor storage.Storage, conf *config.Config) (int, error) {
	listings, err := stor.GetListings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get listings: %w", err)
	}

	if len(listings) == 0 {
		return 0, &storage.NotFoundError{}
	}

	if err = render.Document(w, listings, RenderOptions(conf)); err != nil {
		return 0, err
	}

	return len(listings), nil
}

// LoadDocument captures the catalog the list and browse commands work on.
// An explicit path wins over the configured document. Without either the
// stored listings are rendered in memory and captured from that rendering.
func LoadDocument(
	ctx context.Context,
	path string,
	stor storage.Storage,
	conf *config.Config,
	logger *logger.Logger,
) (*catalog.Document, error) {
	if path == "" {
		path = conf.Catalog.Document
	}

	var source io.Reader
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog document: %w", err)
		}
		defer file.Close()

		source = file
	} else {
		var buf bytes.Buffer
		if _, err := RenderListings(ctx, &buf, stor, conf); err != nil {
			return nil, fmt.Errorf("no catalog document given and unable to render stored listings: %w", err)
		}

		source = &buf
		path = conf.DB.Source
	}

	doc, err := catalog.ParseDocument(source, conf.Catalog.Selectors())
	if err != nil {
		return nil, err
	}

	logger.Info("catalog captured", "source", path, "cards", doc.Catalog.Len())

	return doc, nil
}
