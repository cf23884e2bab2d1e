// Package tui is the interactive sentence calculator: search the penal
// code, pick crimes, adjust multipliers, toggle bail and reductions, and
// read the summary and citation line.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlostXD/police-lumos-rp/internal/calculator"
	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// Loader fetches the crime list shown in the chooser.
type Loader func(ctx context.Context) ([]models.Crime, error)

type focusArea int

const (
	focusSearch focusArea = iota
	focusSelected
	focusReductionMonths
	focusReductionFine
	focusCount
)

// maxVisibleResults caps the chooser height.
const maxVisibleResults = 8

type crimesLoadedMsg struct {
	crimes []models.Crime
	err    error
}

// Model is the Bubble Tea model of the calculator. All state lives here
// and dies with the program.
type Model struct {
	load Loader
	ctx  context.Context

	search textinput.Model
	months textinput.Model
	fine   textinput.Model

	chooser   *calculator.Chooser
	selection *calculator.Selection
	bailPaid  bool
	cursor    int
	focus     focusArea

	loading bool
	err     error
	styles  Styles
	width   int
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "│ "
	return ti
}

// New creates a calculator model that fetches crimes with load on Init.
func New(load Loader) Model {
	search := newInput("Type an article or title...", 120)
	search.Width = 48
	search.Focus()

	months := newInput("e.g. 30", 6)
	months.Width = 8
	fine := newInput("e.g. 30", 6)
	fine.Width = 8

	return Model{
		load:      load,
		ctx:       context.Background(),
		search:    search,
		months:    months,
		fine:      fine,
		chooser:   calculator.NewChooser(nil),
		selection: &calculator.Selection{},
		loading:   load != nil,
		styles:    DefaultStyles(),
	}
}

// NewWithCrimes creates a model over an already loaded list.
func NewWithCrimes(crimes []models.Crime) Model {
	m := New(nil)
	m.chooser.SetCrimes(crimes)
	return m
}

// WithContext returns a copy of m whose loader runs under ctx.
func (m Model) WithContext(ctx context.Context) Model {
	m.ctx = ctx
	return m
}

func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return textinput.Blink
	}
	load, ctx := m.load, m.ctx
	return tea.Batch(textinput.Blink, func() tea.Msg {
		crimes, err := load(ctx)
		return crimesLoadedMsg{crimes: crimes, err: err}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case crimesLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.chooser.SetCrimes(msg.crimes)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case "ctrl+b":
			m.bailPaid = !m.bailPaid
			return m, nil
		}

		switch m.focus {
		case focusSearch:
			return m.updateSearch(msg)
		case focusSelected:
			return m.updateSelected(msg), nil
		case focusReductionMonths:
			var cmd tea.Cmd
			m.months, cmd = m.months.Update(msg)
			return m, cmd
		case focusReductionFine:
			var cmd tea.Cmd
			m.fine, cmd = m.fine.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.search.Blur()
	m.months.Blur()
	m.fine.Blur()

	switch f {
	case focusSearch:
		m.search.Focus()
	case focusReductionMonths:
		m.months.Focus()
	case focusReductionFine:
		m.fine.Focus()
	default:
		m.chooser.Cancel()
	}
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyDown:
		if m.chooser.IsOpen() {
			m.chooser.Next()
		} else {
			m.chooser.Open()
		}
		return m, nil
	case tea.KeyUp:
		m.chooser.Prev()
		return m, nil
	case tea.KeyEnter:
		if crime, ok := m.chooser.Confirm(); ok {
			m.selection.Add(crime)
			m.search.SetValue("")
		}
		return m, nil
	case tea.KeyEsc:
		m.chooser.Cancel()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.chooser.SetQuery(after)
	}
	return m, cmd
}

func (m Model) updateSelected(msg tea.KeyMsg) Model {
	items := m.selection.Items()
	if len(items) == 0 {
		return m
	}
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	current := items[m.cursor]

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "+", "=", "right":
		m.selection.SetMultiplier(current.Crime, current.Multiplier+1)
	case "-", "left":
		m.selection.SetMultiplier(current.Crime, current.Multiplier-1)
	case "x", "delete", "backspace":
		m.selection.Remove(current.Crime)
		if m.cursor > 0 && m.cursor >= m.selection.Len() {
			m.cursor--
		}
	case " ":
		m.bailPaid = !m.bailPaid
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil {
			m.selection.SetMultiplier(current.Crime, n)
		}
	}
	return m
}

// Options returns the calculator options currently entered.
func (m Model) Options() calculator.Options {
	return calculator.Options{
		BailPaid:        m.bailPaid,
		ReductionMonths: calculator.ParseReduction(m.months.Value()),
		ReductionFine:   calculator.ParseReduction(m.fine.Value()),
	}
}

// Selection exposes the selected crimes in order.
func (m Model) Selection() []calculator.SelectedCrime { return m.selection.Items() }

// Summary recomputes the totals for the current state.
func (m Model) Summary() calculator.Summary { return m.selection.Compute(m.Options()) }

// Citation is the line pasted into the arrest report.
func (m Model) Citation() string { return m.selection.Citation() }

func (m Model) View() string {
	var sb strings.Builder
	s := m.styles

	sb.WriteString(s.Title.Render("Select Crimes"))
	sb.WriteString("\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(s.Muted.Render("  loading penal code..."))
		sb.WriteString("\n")
	case m.err != nil:
		sb.WriteString(s.Error.Render("  " + m.err.Error()))
		sb.WriteString("\n")
	case m.chooser.IsOpen():
		m.renderResults(&sb)
	}

	m.renderSelected(&sb)
	m.renderOptions(&sb)
	m.renderSummary(&sb)

	sb.WriteString(s.Help.Render("tab focus • ↑/↓ navigate • enter add • esc close • +/- multiplier • x remove • ctrl+b bail • ctrl+c quit"))
	return s.Container.Render(sb.String())
}

func (m Model) crimeLabel(c models.Crime) string {
	label := c.Article + " - " + c.Title
	if c.Financable {
		label += " " + m.styles.Bailable.Render("(bailable)")
	}
	return label
}

func (m Model) renderResults(sb *strings.Builder) {
	results := m.chooser.Results()
	active := m.chooser.Active()

	start := 0
	if active >= maxVisibleResults {
		start = active - maxVisibleResults + 1
	}
	end := min(start+maxVisibleResults, len(results))

	for i := start; i < end; i++ {
		line := m.crimeLabel(results[i])
		if i == active {
			sb.WriteString(m.styles.Active.Render(line))
		} else {
			sb.WriteString(m.styles.Row.Render(line))
		}
		sb.WriteString("\n")
	}
	if len(results) > end {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  … %d more", len(results)-end)))
		sb.WriteString("\n")
	}
}

func (m Model) sectionTitle(title string, f focusArea) string {
	if m.focus == f {
		return m.styles.Focused.MarginTop(1).Render("▸ " + title)
	}
	return m.styles.Section.Render(title)
}

func (m Model) renderSelected(sb *strings.Builder) {
	sb.WriteString(m.sectionTitle("Selected Crimes", focusSelected))
	sb.WriteString("\n")

	items := m.selection.Items()
	if len(items) == 0 {
		sb.WriteString(m.styles.Muted.Render("  none"))
		sb.WriteString("\n")
		return
	}
	for i, c := range items {
		line := fmt.Sprintf("%s  x%d", m.crimeLabel(c.Crime), c.Multiplier)
		if m.focus == focusSelected && i == m.cursor {
			sb.WriteString(m.styles.Active.Render(line))
		} else {
			sb.WriteString(m.styles.Row.Render(line))
		}
		sb.WriteString("\n")
	}
}

func (m Model) renderOptions(sb *strings.Builder) {
	box := "[ ]"
	if m.bailPaid {
		box = "[x]"
	}
	sb.WriteString(m.styles.Row.Render(box + " Bail paid (applies to bailable crimes only)"))
	sb.WriteString("\n")

	sb.WriteString(m.sectionTitle("Sentence reduction (%)", focusReductionMonths))
	sb.WriteString("\n")
	sb.WriteString(m.months.View())
	sb.WriteString("\n")
	sb.WriteString(m.sectionTitle("Fine reduction (%)", focusReductionFine))
	sb.WriteString("\n")
	sb.WriteString(m.fine.View())
	sb.WriteString("\n")
}

func (m Model) renderSummary(sb *strings.Builder) {
	sum := m.Summary()

	sb.WriteString(m.styles.Section.Render("Summary"))
	sb.WriteString("\n")

	timeLine := fmt.Sprintf("Total time: %s months", formatNumber(sum.FinalTime))
	if sum.ReductionMonths > 0 {
		timeLine += fmt.Sprintf(" (reduced %s%%)", formatNumber(sum.ReductionMonths))
	}
	sb.WriteString(m.styles.Row.Render(timeLine))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Row.Render("Fine: $ " + formatNumber(sum.FinalFine)))
	sb.WriteString("\n")
	if sum.BailPaid {
		sb.WriteString(m.styles.Row.Render("Bail: $ " + formatNumber(sum.TotalFiance)))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Section.Render("Message for the arrest report"))
	sb.WriteString("\n")
	if citation := m.Citation(); citation != "" {
		sb.WriteString(m.styles.Citation.Render(citation))
		sb.WriteString("\n")
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
