package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/output"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/tui/components"
)

// View renders the interface (required by tea.Model interface)
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Mortgage Overpayment Tracker"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("two-phase fixed then variable rate amortization"))
	b.WriteString("\n\n")

	left := m.renderForm()
	right := m.renderSummary()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(left),
		"  ",
		PanelStyle.Render(right)))
	b.WriteString("\n\n")

	if chart := m.renderChart(); chart != "" {
		b.WriteString(chart)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.computing {
		b.WriteString(SubtitleStyle.Render("calculating..."))
		b.WriteString("\n")
	} else if m.statusMsg != "" {
		b.WriteString(StatusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("tab/shift+tab: move  enter: recalculate  ctrl+s: save scenario  esc: quit"))

	return AppStyle.Render(b.String())
}

func (m Model) renderForm() string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := FormLabelStyle
		if i == m.focused {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		if i < fieldCount-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderSummary() string {
	if m.schedule == nil {
		return SubtitleStyle.Render("press enter to calculate")
	}

	summary := m.schedule.Summary
	var b strings.Builder

	writeMetric := func(label, value string, highlight bool) {
		b.WriteString(MetricLabelStyle.Render(label))
		if highlight {
			b.WriteString(MetricPositiveStyle.Render(value))
		} else {
			b.WriteString(MetricValueStyle.Render(value))
		}
		b.WriteString("\n")
	}

	writeMetric("Months To Clear", fmt.Sprintf("%d (%s)", summary.MonthsTaken, output.FormatMonths(summary.MonthsTaken)), false)
	writeMetric("Estimated Payoff", summary.PayoffDate.Format("Jan 2006"), false)
	writeMetric("Total Interest", output.FormatCurrency(summary.TotalInterest), false)
	writeMetric("Total Paid", output.FormatCurrency(summary.TotalPayment), false)

	if m.baseline != nil && summary.MonthsSaved > 0 {
		saved := m.baseline.Summary.TotalInterest.Sub(summary.TotalInterest)
		writeMetric("Term Reduced By", output.FormatMonths(summary.MonthsSaved), true)
		writeMetric("Interest Saved", output.FormatCurrency(saved), true)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderChart() string {
	if m.schedule == nil {
		return ""
	}

	width := m.width - 8
	if width > 100 {
		width = 100
	}
	if width < 40 {
		width = 40
	}

	chart := components.NewASCIIChart("Outstanding Balance").
		WithSize(width, 14).
		WithAxisLabel("months")

	if m.baseline != nil && m.baseline.Summary.MonthsTaken != m.schedule.Summary.MonthsTaken {
		chart.AddSeries("without overpayments", m.baseline.Balances(), ColorChartLine2)
	}
	chart.AddSeries("with overpayments", m.schedule.Balances(), ColorChartLine1)

	return chart.Render()
}
