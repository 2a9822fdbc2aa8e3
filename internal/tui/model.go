package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/calculation"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/config"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
)

// Form field indices
const (
	fieldHousePrice = iota
	fieldDeposit
	fieldTermYears
	fieldFixedRate
	fieldFixedTermYears
	fieldRemainingRate
	fieldOverpayment
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"House Price (£)",
	"Deposit (£)",
	"Term (years)",
	"Fixed Rate (%)",
	"Fixed Term (years)",
	"Remaining Rate (%)",
	"Monthly Overpayment (£)",
}

var fieldDefaults = [fieldCount]string{
	"300000", "60000", "30", "4.6", "3", "5.5", "200",
}

// Model represents the entire application state
type Model struct {
	// Form state
	inputs  [fieldCount]textinput.Model
	focused int

	// Terminal dimensions
	width  int
	height int

	// Scenario file handling
	scenarioPath string
	parser       *config.InputParser

	// Calculation engine and results
	calcEngine *calculation.Engine
	schedule   *domain.Schedule
	baseline   *domain.Schedule

	// Status
	err       error
	statusMsg string
	computing bool
}

// NewModel creates a new application model. scenarioPath may be empty, in
// which case the form starts with example figures.
func NewModel(scenarioPath string) Model {
	m := Model{
		scenarioPath: scenarioPath,
		parser:       config.NewInputParser(),
		calcEngine:   calculation.NewEngine(),
		width:        100,
		height:       40,
	}

	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = fieldDefaults[i]
		ti.SetValue(fieldDefaults[i])
		ti.CharLimit = 12
		ti.Width = 14
		ti.Prompt = "> "
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.scenarioPath != "" {
		return loadScenarioCmd(m.parser, m.scenarioPath)
	}
	input, err := m.parseForm()
	if err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	return calculateCmd(m.calcEngine, input)
}

// parseForm reads the current form values into a scenario, validating them
// the same way the file loader does.
func (m *Model) parseForm() (*config.MortgageInput, error) {
	housePrice, err := parseDecimalField(fieldHousePrice, m.inputs[fieldHousePrice].Value())
	if err != nil {
		return nil, err
	}
	deposit, err := parseDecimalField(fieldDeposit, m.inputs[fieldDeposit].Value())
	if err != nil {
		return nil, err
	}
	termYears, err := parseIntField(fieldTermYears, m.inputs[fieldTermYears].Value())
	if err != nil {
		return nil, err
	}
	fixedRate, err := parseDecimalField(fieldFixedRate, m.inputs[fieldFixedRate].Value())
	if err != nil {
		return nil, err
	}
	fixedTermYears, err := parseIntField(fieldFixedTermYears, m.inputs[fieldFixedTermYears].Value())
	if err != nil {
		return nil, err
	}
	remainingRate, err := parseDecimalField(fieldRemainingRate, m.inputs[fieldRemainingRate].Value())
	if err != nil {
		return nil, err
	}
	overpayment, err := parseDecimalField(fieldOverpayment, m.inputs[fieldOverpayment].Value())
	if err != nil {
		return nil, err
	}

	input := &config.MortgageInput{
		HousePrice:           housePrice,
		Deposit:              deposit,
		TermYears:            termYears,
		FixedRatePercent:     fixedRate,
		FixedTermYears:       fixedTermYears,
		RemainingRatePercent: remainingRate,
		MonthlyOverpayment:   overpayment,
	}
	if err := m.parser.ValidateInput(input); err != nil {
		return nil, err
	}
	return input, nil
}

// setForm fills the form from a loaded scenario.
func (m *Model) setForm(input *config.MortgageInput) {
	m.inputs[fieldHousePrice].SetValue(input.HousePrice.String())
	m.inputs[fieldDeposit].SetValue(input.Deposit.String())
	m.inputs[fieldTermYears].SetValue(strconv.Itoa(input.TermYears))
	m.inputs[fieldFixedRate].SetValue(input.FixedRatePercent.String())
	m.inputs[fieldFixedTermYears].SetValue(strconv.Itoa(input.FixedTermYears))
	m.inputs[fieldRemainingRate].SetValue(input.RemainingRatePercent.String())
	m.inputs[fieldOverpayment].SetValue(input.MonthlyOverpayment.String())
}

func parseDecimalField(field int, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: not a number: %q", fieldLabels[field], value)
	}
	return d, nil
}

func parseIntField(field int, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: not a whole number: %q", fieldLabels[field], value)
	}
	return n, nil
}

// loadScenarioCmd returns a command that loads a scenario file
func loadScenarioCmd(parser *config.InputParser, path string) tea.Cmd {
	return func() tea.Msg {
		input, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ScenarioLoadedMsg{Input: input}
	}
}

// saveScenarioCmd returns a command that writes the scenario file
func saveScenarioCmd(parser *config.InputParser, input *config.MortgageInput, path string) tea.Cmd {
	return func() tea.Msg {
		if err := parser.SaveToFile(input, path); err != nil {
			return ErrorMsg{Err: err}
		}
		return ScenarioSavedMsg{Path: path}
	}
}

// calculateCmd returns a command that computes the schedule and its baseline
func calculateCmd(engine *calculation.Engine, input *config.MortgageInput) tea.Cmd {
	return func() tea.Msg {
		terms := input.ToLoanTerms()

		sched, err := engine.Simulate(terms)
		if err != nil {
			return CalculationCompleteMsg{Err: err}
		}
		baseline, err := engine.Simulate(terms.WithoutOverpayment())
		if err != nil {
			return CalculationCompleteMsg{Err: err}
		}

		return CalculationCompleteMsg{Schedule: sched, Baseline: baseline}
	}
}
