package list

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/GustavoCaso/carlot/internal/board"
	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/cli"
	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
	"github.com/GustavoCaso/carlot/internal/util"
)

type listCommand struct {
	document string
	query    string
	minPrice string
	maxPrice string
	out      io.Writer
}

func NewCommand() cli.Command {
	return &listCommand{out: os.Stdout}
}

func (c *listCommand) Description() string {
	return "Filters the catalog once and prints the visible cards"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.document, "f", "", "catalog document to capture (default [catalog].document or stored listings)")
	fs.StringVar(&c.query, "q", "", "text matched against make and model")
	fs.StringVar(&c.minPrice, "min", "", "minimum price")
	fs.StringVar(&c.maxPrice, "max", "", "maximum price")
}

func (c *listCommand) Run(stor storage.Storage, conf *config.Config, logger *logger.Logger) error {
	doc, err := cli.LoadDocument(context.Background(), c.document, stor, conf, logger)
	if err != nil {
		return err
	}

	form := doc.Form
	if c.query != "" {
		form.Query = c.query
	}
	if c.minPrice != "" {
		form.MinPrice = c.minPrice
	}
	if c.maxPrice != "" {
		form.MaxPrice = c.maxPrice
	}

	b := board.New(doc.Catalog, logger)
	status := b.Apply(board.TriggerSearchButton, form)

	c.print(b, status, conf.Catalog.Currency)

	return nil
}

func (c *listCommand) print(b *board.Board, status board.Status, currency string) {
	for _, entry := range b.Visible() {
		fmt.Fprintln(c.out, cardLine(entry, currency))
	}

	if status.NoResults {
		fmt.Fprintln(c.out, util.ColorOutput("No results", "red", "bold"))
	}

	fmt.Fprintf(c.out, "Results: %s\n", util.ColorOutput(fmt.Sprintf("%d", status.Count), "bold"))
}

func cardLine(entry *catalog.Entry, currency string) string {
	label := strings.TrimSpace(entry.Make() + " " + entry.Model())

	price := util.ColorOutput("price on request", "faint")
	if !math.IsNaN(entry.Price()) {
		price = util.ColorOutput(currency+util.FormatPrice(entry.Price()), "green")
	}

	return fmt.Sprintf("%s %s %s", util.ColorOutput(entry.Title(), "bold"), util.ColorOutput("("+label+")", "faint"), price)
}
