package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/util"
)

const (
	minTableHeight = 3
	titleShare     = 2
	columnShares   = 5
)

type cardsTable struct {
	table    table.Model
	currency string
}

func newCardsTable(currency string, width, height int) cardsTable {
	t := table.New(
		table.WithColumns(createCardColumns(width)),
		table.WithFocused(true),
		table.WithHeight(max(height, minTableHeight)),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return cardsTable{
		table:    t,
		currency: currency,
	}
}

// SetEntries replaces the rows with the visible cards, in document order,
// and moves the cursor back to the first one.
func (c cardsTable) SetEntries(entries []*catalog.Entry) cardsTable {
	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, c.toRow(entry))
	}

	c.table.SetRows(rows)
	c.table.SetCursor(0)

	return c
}

func (c cardsTable) toRow(entry *catalog.Entry) table.Row {
	price := "on request"
	if !math.IsNaN(entry.Price()) {
		price = c.currency + util.FormatPrice(entry.Price())
	}

	return table.Row{entry.Title(), entry.Make(), entry.Model(), price}
}

func (c cardsTable) UpdateDimensions(width, height int) cardsTable {
	c.table.SetColumns(createCardColumns(width))
	c.table.SetWidth(width)
	c.table.SetHeight(max(height, minTableHeight))

	return c
}

func (c cardsTable) MoveUp() cardsTable {
	c.table.MoveUp(1)
	return c
}

func (c cardsTable) MoveDown() cardsTable {
	c.table.MoveDown(1)
	return c
}

func (c cardsTable) Cursor() int {
	return c.table.Cursor()
}

func (c cardsTable) Len() int {
	return len(c.table.Rows())
}

func (c cardsTable) View() string {
	return c.table.View()
}

func createCardColumns(width int) []table.Column {
	unit := max(width/columnShares, 1)

	return []table.Column{
		{Title: "Listing", Width: unit * titleShare},
		{Title: "Make", Width: unit},
		{Title: "Model", Width: unit},
		{Title: "Price", Width: unit},
	}
}
