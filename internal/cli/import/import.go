package importcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GustavoCaso/carlot/internal/cli"
	"github.com/GustavoCaso/carlot/internal/config"
	importUtil "github.com/GustavoCaso/carlot/internal/import"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
)

type importCommand struct {
	file    string
	replace bool
	out     io.Writer
}

func NewCommand() cli.Command {
	return &importCommand{out: os.Stdout}
}

func (c *importCommand) Description() string {
	return "Imports vehicle listings (CSV or JSON) to the DB"
}

func (c *importCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "file to import")
	fs.BoolVar(&c.replace, "r", false, "replace the stored listings instead of appending")
}

func (c *importCommand) Run(stor storage.Storage, _ *config.Config, logger *logger.Logger) error {
	if c.file == "" {
		return errors.New("you must provide a file to import")
	}

	file, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer file.Close()

	ctx := context.Background()

	importFn := importUtil.Import
	if c.replace {
		importFn = importUtil.ImportReplace
	}

	info := importFn(ctx, c.file, file, stor, logger)
	if info.Error != nil && info.TotalImports == 0 {
		return fmt.Errorf("unable to import listings due to error: %w", info.Error)
	}

	fmt.Fprintf(c.out, "Total listings imported: %d\n", info.TotalImports)
	for _, skipped := range info.Skipped {
		fmt.Fprintf(c.out, "Skipped %s\n", skipped.Error())
	}

	return nil
}
