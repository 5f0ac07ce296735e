package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GustavoCaso/carlot/internal/board"
	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/util"
)

// focusState is a stop in the form's focus ring. The order of the constants
// is the tab order.
type focusState int

const (
	focusedQuery focusState = iota
	focusedSearch
	focusedMin
	focusedMax
	focusedPrice

	numberOfStops
)

const inputWidth = 16

var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	focusedButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("69")).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	echoStyle = lipgloss.NewStyle().Faint(true)
)

type filterForm struct {
	query    textinput.Model
	minPrice textinput.Model
	maxPrice textinput.Model

	// echoes of the price fields with thousands separators
	minEcho string
	maxEcho string

	currency string
	focus    focusState
}

func newFilterForm(initial catalog.Form, currency string) filterForm {
	f := filterForm{
		query:    newInput("Search make or model", initial.Query),
		minPrice: newInput("Min price", initial.MinPrice),
		maxPrice: newInput("Max price", initial.MaxPrice),
		currency: currency,
	}
	f.query.Focus()
	f.refreshEcho()

	return f
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = inputWidth
	ti.SetValue(value)
	return ti
}

// Form returns the current text of the three fields.
func (f filterForm) Form() catalog.Form {
	return catalog.Form{
		Query:    f.query.Value(),
		MinPrice: f.minPrice.Value(),
		MaxPrice: f.maxPrice.Value(),
	}
}

// Trigger reports which filter pass enter starts on the focused stop.
func (f filterForm) Trigger() (board.Trigger, bool) {
	switch f.focus {
	case focusedQuery:
		return board.TriggerEnter, true
	case focusedSearch:
		return board.TriggerSearchButton, true
	case focusedPrice:
		return board.TriggerPriceButton, true
	default:
		return "", false
	}
}

func (f filterForm) Next() (filterForm, tea.Cmd) {
	return f.setFocus((f.focus + 1) % numberOfStops)
}

func (f filterForm) Prev() (filterForm, tea.Cmd) {
	return f.setFocus((f.focus + numberOfStops - 1) % numberOfStops)
}

func (f filterForm) setFocus(focus focusState) (filterForm, tea.Cmd) {
	f.focus = focus
	f.query.Blur()
	f.minPrice.Blur()
	f.maxPrice.Blur()

	var cmd tea.Cmd
	switch focus {
	case focusedQuery:
		cmd = f.query.Focus()
	case focusedMin:
		cmd = f.minPrice.Focus()
	case focusedMax:
		cmd = f.maxPrice.Focus()
	}

	return f, cmd
}

// Update forwards the message to the focused field. Buttons ignore it.
func (f filterForm) Update(msg tea.Msg) (filterForm, tea.Cmd) {
	var cmd tea.Cmd

	switch f.focus {
	case focusedQuery:
		f.query, cmd = f.query.Update(msg)
	case focusedMin:
		f.minPrice, cmd = f.minPrice.Update(msg)
		f.refreshEcho()
	case focusedMax:
		f.maxPrice, cmd = f.maxPrice.Update(msg)
		f.refreshEcho()
	}

	return f, cmd
}

func (f *filterForm) refreshEcho() {
	f.minEcho = util.GroupThousands(f.minPrice.Value())
	f.maxEcho = util.GroupThousands(f.maxPrice.Value())
}

func (f filterForm) View() string {
	search := lipgloss.JoinHorizontal(lipgloss.Center,
		field("Search", f.query),
		f.button("Search", focusedSearch),
	)

	price := lipgloss.JoinHorizontal(lipgloss.Center,
		field("Min", f.minPrice),
		field("Max", f.maxPrice),
		f.button("Filter price", focusedPrice),
	)

	echo := echoStyle.Render(fmt.Sprintf("Range: %s%s - %s%s", f.currency, f.minEcho, f.currency, f.maxEcho))

	return lipgloss.JoinVertical(lipgloss.Left, search, price, echo)
}

func (f filterForm) button(label string, stop focusState) string {
	if f.focus == stop {
		return focusedButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func field(label string, input textinput.Model) string {
	return fmt.Sprintf("%s: [%s] ", label, input.View())
}
