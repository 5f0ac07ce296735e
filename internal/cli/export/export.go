package export

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/GustavoCaso/carlot/internal/cli"
	"github.com/GustavoCaso/carlot/internal/config"
	exportUtil "github.com/GustavoCaso/carlot/internal/export"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
)

type exportCommand struct {
	output string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports the stored listings to CSV or JSON"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.output, "o", "", "file to export to (.csv or .json)")
}

func (c *exportCommand) Run(stor storage.Storage, _ *config.Config, logger *logger.Logger) error {
	if c.output == "" {
		return errors.New("you must provide a file to export to")
	}

	format, err := exportUtil.FormatFromFilename(c.output)
	if err != nil {
		return err
	}

	listings, err := stor.GetListings(context.Background())
	if err != nil {
		return fmt.Errorf("unable to get listings: %w", err)
	}

	file, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("unable to create export file: %w", err)
	}
	defer file.Close()

	if err = exportUtil.Write(file, format, listings); err != nil {
		return err
	}

	logger.Info("listings exported", "file", c.output, "total", len(listings))

	return nil
}
