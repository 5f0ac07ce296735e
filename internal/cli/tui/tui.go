package tui

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/GustavoCaso/carlot/internal/board"
	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/cli"
	"github.com/GustavoCaso/carlot/internal/config"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/storage"
)

// rows taken by the form, the counter and the help line
const chromeHeight = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("69"))

	countStyle = lipgloss.NewStyle().Bold(true)

	noResultsStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196"))
)

type tuiCommand struct {
	document string
}

func NewCommand() cli.Command {
	return &tuiCommand{}
}

func (c *tuiCommand) Description() string {
	return "Interactive terminal catalog browser"
}

func (c *tuiCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.document, "f", "", "catalog document to capture (default [catalog].document or stored listings)")
}

type keymap struct {
	Next  key.Binding
	Prev  key.Binding
	Enter key.Binding
	Up    key.Binding
	Down  key.Binding
	Exit  key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Enter, k.Up, k.Down, k.Exit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Enter}, // first column
		{k.Up, k.Down, k.Exit},    // second column
	}
}

func defaultKeyMap() keymap {
	return keymap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "filter"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc/ctrl+c", "exit"),
		),
	}
}

type model struct {
	board  *board.Board
	status board.Status

	form  filterForm
	cards cardsTable
	help  help.Model

	keymap keymap

	width  int
	height int
}

// initialModel echoes the initial price fields and runs the load pass.
func initialModel(doc *catalog.Document, b *board.Board, currency string, width, height int) model {
	m := model{
		board:  b,
		form:   newFilterForm(doc.Form, currency),
		cards:  newCardsTable(currency, width, height-chromeHeight),
		help:   help.New(),
		keymap: defaultKeyMap(),
		width:  width,
		height: height,
	}

	m.apply(board.TriggerLoad)

	return m
}

func (m *model) apply(trigger board.Trigger) {
	m.status = m.board.Apply(trigger, m.form.Form())
	m.cards = m.cards.SetEntries(m.board.Visible())
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		m.SetHeight(msg.Height)
		m.cards = m.cards.UpdateDimensions(m.width, m.height-chromeHeight)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Next):
			m.form, cmd = m.form.Next()
		case key.Matches(msg, m.keymap.Prev):
			m.form, cmd = m.form.Prev()
		case key.Matches(msg, m.keymap.Enter):
			if trigger, ok := m.form.Trigger(); ok {
				m.apply(trigger)
			}
		case key.Matches(msg, m.keymap.Up):
			m.cards = m.cards.MoveUp()
		case key.Matches(msg, m.keymap.Down):
			m.cards = m.cards.MoveDown()
		default:
			m.form, cmd = m.form.Update(msg)
		}
	default:
		m.form, cmd = m.form.Update(msg)
	}

	return m, cmd
}

func (m model) View() string {
	sections := []string{
		titleStyle.Render("carlot"),
		m.form.View(),
		countStyle.Render(fmt.Sprintf("Results: %d", m.status.Count)),
	}

	if m.status.NoResults {
		sections = append(sections, noResultsStyle.Render("No cars match your search."))
	} else {
		sections = append(sections, m.cards.View())
	}

	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *model) SetHeight(height int) {
	m.height = height
}

func (m *model) SetWidth(width int) {
	m.width = width
}

func (c *tuiCommand) Run(stor storage.Storage, conf *config.Config, logger *logger.Logger) error {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}

	if len(os.Getenv("CARLOT_DEBUG")) > 0 {
		f, logErr := tea.LogToFile("debug.log", "debug")
		if logErr != nil {
			return fmt.Errorf("failed to log to file: %w", logErr)
		}
		defer f.Close()
	}

	doc, err := cli.LoadDocument(context.Background(), c.document, stor, conf, logger)
	if err != nil {
		return err
	}

	m := initialModel(doc, board.New(doc.Catalog, logger), conf.Catalog.Currency, w, h)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
