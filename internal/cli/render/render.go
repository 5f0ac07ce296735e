package render

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GustavoCaso/carlot/internal/cli"
	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
)

type renderCommand struct {
	output string
	out    io.Writer
}

func NewCommand() cli.Command {
	return &renderCommand{out: os.Stdout}
}

func (c *renderCommand) Description() string {
	return "Renders the stored listings as a catalog document"
}

func (c *renderCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.output, "o", "", "file to write the document to (default stdout)")
}

func (c *renderCommand) Run(stor storage.Storage, conf *config.Config, logger *logger.Logger) error {
	w := c.out
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer file.Close()

		w = file
	}

	total, err := cli.RenderListings(context.Background(), w, stor, conf)
	if err != nil {
		return fmt.Errorf("unable to render catalog: %w", err)
	}

	logger.Info("catalog rendered", "cards", total, "output", c.output)

	return nil
}
