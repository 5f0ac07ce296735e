package router

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/export"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/render"
	"github.com/GustavoCaso/carlot/internal/storage"
)

type router struct {
	storage storage.Storage
	options render.Options
	logger  *logger.Logger
}

// New serves the rendered catalog document and the stored listings in the
// import formats. Filtering stays with whoever loads the document.
func New(stor storage.Storage, conf *config.Config, logger *logger.Logger) http.Handler {
	r := &router{
		storage: stor,
		options: render.Options{
			Currency:  conf.Catalog.Currency,
			Selectors: conf.Catalog.Selectors(),
		},
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", r.catalogHandler)
	mux.HandleFunc("GET /listings.csv", func(w http.ResponseWriter, req *http.Request) {
		r.exportHandler(w, req, export.FormatCSV, "text/csv; charset=utf-8")
	})
	mux.HandleFunc("GET /listings.json", func(w http.ResponseWriter, req *http.Request) {
		r.exportHandler(w, req, export.FormatJSON, "application/json")
	})

	return loggingMiddleware(logger, xFrameDenyHeaderMiddleware(mux))
}

func (rt *router) catalogHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := rt.storage.GetListings(r.Context())
	if err != nil {
		rt.serverError(w, err)
		return
	}

	if len(listings) == 0 {
		http.Error(w, "No listings stored. Use the import command first.", http.StatusNotFound)
		return
	}

	// render into a buffer so a template error does not leave half a page
	var buf bytes.Buffer
	if err = render.Document(&buf, listings, rt.options); err != nil {
		rt.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (rt *router) exportHandler(w http.ResponseWriter, r *http.Request, format export.Format, contentType string) {
	listings, err := rt.storage.GetListings(r.Context())
	if err != nil {
		rt.serverError(w, err)
		return
	}

	var buf bytes.Buffer
	if err = export.Write(&buf, format, listings); err != nil {
		rt.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=listings.%s", format))
	_, _ = buf.WriteTo(w)
}

func (rt *router) serverError(w http.ResponseWriter, err error) {
	var notFound *storage.NotFoundError
	if errors.As(err, &notFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	rt.logger.Error("Request failed", "error", err.Error())
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
