// Package tui renders the interactive budget dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spendwise/spendwise/internal/cli"
	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/service"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	selectorActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 2).
				Background(lipgloss.Color("#2D2D2D")).
				Foreground(lipgloss.Color("#FFFFFF"))

	selectorInactiveStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(cli.SubtleColor)

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333333")).
			Padding(0, 2).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	budget service.Budget
	keys   KeyMap
	help   help.Model
	width  int
}

// New creates the dashboard over the given budget state.
func New(budget service.Budget) Model {
	return Model{
		budget: budget,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Week):
			m.budget.SetTimePeriod(model.PeriodWeek)
		case key.Matches(msg, m.keys.Month):
			m.budget.SetTimePeriod(model.PeriodMonth)
		case key.Matches(msg, m.keys.Year):
			m.budget.SetTimePeriod(model.PeriodYear)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.budget.IsLoading() {
		return cli.SubtleStyle.Render("Loading…")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("spendwise"))
	b.WriteString("\n")
	b.WriteString(m.renderPeriodSelector())
	b.WriteString("\n\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(m.renderCategories())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderPeriodSelector() string {
	current := m.budget.TimePeriod()
	parts := make([]string, 0, 3)
	for _, p := range []model.TimePeriod{model.PeriodWeek, model.PeriodMonth, model.PeriodYear} {
		label := strings.ToUpper(string(p)[:1]) + string(p)[1:]
		if p == current {
			parts = append(parts, selectorActiveStyle.Render(label))
		} else {
			parts = append(parts, selectorInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderSummary() string {
	income := cli.IncomeStyle.Render(cli.FormatAmount(m.budget.TotalIncome()))
	expenses := cli.ExpenseStyle.Render(cli.FormatAmount(m.budget.TotalExpenses()))
	balance := cli.BoldStyle.Render(cli.FormatAmount(m.budget.Balance()))

	content := fmt.Sprintf("Income %s   Expenses %s   Balance %s", income, expenses, balance)
	return summaryBoxStyle.Render(content)
}

func (m Model) renderCategories() string {
	categories := m.budget.Categories()

	var b strings.Builder
	b.WriteString(m.renderSection("Expenses", categories, model.CategoryTypeExpense))
	b.WriteString("\n")
	b.WriteString(m.renderSection("Income", categories, model.CategoryTypeIncome))
	return b.String()
}

func (m Model) renderSection(title string, categories []model.Category, categoryType model.CategoryType) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	for _, c := range categories {
		if c.Type != categoryType {
			continue
		}
		total := m.budget.CategoryTotal(c.ID)
		b.WriteString(fmt.Sprintf("  %s %-14s %s\n",
			cli.Swatch(c.Color),
			c.Name,
			cli.FormatAmount(total)))
	}
	return b.String()
}
