package importutil

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
)

type ImportInfo struct {
	TotalImports int64
	Skipped      []RowError
	Error        error
}

// Import reads a listings file and stores every valid row. Rows that cannot
// be mapped are skipped and reported in ImportInfo.Skipped.
func Import(
	ctx context.Context,
	filename string,
	reader io.Reader,
	stor storage.Storage,
	logger *logger.Logger,
) ImportInfo {
	return importListings(ctx, filename, reader, logger, stor.InsertListings)
}

// ImportReplace is Import replacing the stored listings. The store is only
// touched once the file has produced at least one valid listing, and the
// delete and inserts commit together.
func ImportReplace(
	ctx context.Context,
	filename string,
	reader io.Reader,
	stor storage.Storage,
	logger *logger.Logger,
) ImportInfo {
	return importListings(ctx, filename, reader, logger, stor.ReplaceListings)
}

func importListings(
	ctx context.Context,
	filename string,
	reader io.Reader,
	logger *logger.Logger,
	store func(context.Context, []storage.Listing) (int64, error),
) ImportInfo {
	info := ImportInfo{}

	data, err := ParseFile(filename, reader)
	if err != nil {
		info.Error = err
		return info
	}

	result, err := ApplyMapping(data, MappingFromHeaders(data.Headers))
	if err != nil {
		info.Error = err
		return info
	}

	info.Skipped = result.Errors
	for _, rowErr := range result.Errors {
		logger.Warn("listing skipped", "file", filename, "row", rowErr.Row+1, "error", rowErr.Err.Error())
	}

	if len(result.Listings) == 0 {
		info.Error = errors.New("no valid listings found")
		return info
	}

	total, err := store(ctx, result.Listings)
	if err != nil {
		info.Error = fmt.Errorf("failed to store listings: %w", err)
		return info
	}

	info.TotalImports = total
	logger.Info("listings imported", "file", filename, "format", data.Format, "total", total, "skipped", len(result.Errors))

	return info
}
