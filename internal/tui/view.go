package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
)

func (m Model) View() string {
	sections := []string{
		titleStyle.Render("Chemical mass calculator"),
		m.viewInput(fieldQuery, "Substance"),
	}
	if m.searching {
		sections = append(sections, fmt.Sprintf("%s Searching...", m.spinner.View()))
	}
	if card := m.viewRecord(); card != "" {
		sections = append(sections, card)
	}
	sections = append(sections,
		m.viewInput(fieldMoles, "Moles (mol)"),
		m.viewInput(fieldPurity, "Purity (%)"),
		labelStyle.Render("Unit")+m.viewUnits(),
	)
	if m.result != nil {
		sections = append(sections, m.viewResult())
	}
	if m.notice != nil {
		style := errorStyle
		if m.notice.warning {
			style = warningStyle
		}
		sections = append(sections, style.Render(m.notice.text))
	}
	sections = append(sections, m.viewRecent(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) viewInput(f field, label string) string {
	cursor := "  "
	if m.focus == f {
		cursor = "> "
	}
	return cursor + labelStyle.Render(label) + m.inputs[f].View()
}

func (m Model) viewRecord() string {
	if m.record == nil {
		return ""
	}
	lines := []string{
		labelStyle.Render("Query") + m.record.QueryName,
	}
	if m.record.EnglishName != "" && m.record.EnglishName != m.record.QueryName {
		lines = append(lines, labelStyle.Render("English name")+m.record.EnglishName)
	}
	lines = append(lines,
		labelStyle.Render("Formula")+m.record.Formula,
		labelStyle.Render("Molecular weight")+strconv.FormatFloat(m.record.MolecularWeight, 'f', -1, 64)+" g/mol",
		labelStyle.Render("IUPAC name")+m.record.IUPACName,
	)
	return cardStyle().Render(strings.Join(lines, "\n"))
}

func (m Model) viewUnits() string {
	units := make([]string, 0, len(calculator.AllUnits))
	for _, unit := range calculator.AllUnits {
		if unit == m.unit {
			units = append(units, selectedUnitStyle.Render(unit.String()))
			continue
		}
		units = append(units, unitStyle.Render(unit.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, units...)
}

func (m Model) viewResult() string {
	return cardStyle().Render(
		"Required mass: " + massStyle.Render(m.result.String()) + "\n" +
			faintStyle.Render(m.result.Expression()),
	)
}

func (m Model) viewRecent() string {
	if len(m.recent) == 0 {
		return faintStyle.Render("No recent queries")
	}
	lines := []string{faintStyle.Render("Recent queries")}
	for _, entry := range m.recent {
		lines = append(lines, fmt.Sprintf("  %s %s", entry.QueryName, faintStyle.Render(entry.Formula)))
	}
	return strings.Join(lines, "\n")
}
