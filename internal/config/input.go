package config

import (
	"fmt"
	"os"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MortgageInput is the on-disk form of a scenario: the purchase figures the
// borrower actually knows, before they are reduced to loan terms. Terms are
// given in years because that is how deals are quoted.
type MortgageInput struct {
	HousePrice           decimal.Decimal `yaml:"house_price" json:"house_price"`
	Deposit              decimal.Decimal `yaml:"deposit" json:"deposit"`
	TermYears            int             `yaml:"term_years" json:"term_years"`
	FixedRatePercent     decimal.Decimal `yaml:"fixed_rate_percent" json:"fixed_rate_percent"`
	FixedTermYears       int             `yaml:"fixed_term_years" json:"fixed_term_years"`
	RemainingRatePercent decimal.Decimal `yaml:"remaining_rate_percent" json:"remaining_rate_percent"`
	MonthlyOverpayment   decimal.Decimal `yaml:"monthly_overpayment" json:"monthly_overpayment"`
}

// LoanAmount is the principal actually borrowed.
func (mi *MortgageInput) LoanAmount() decimal.Decimal {
	return mi.HousePrice.Sub(mi.Deposit)
}

// ToLoanTerms reduces the purchase figures to the terms the calculation
// engine works in. Years become months; the deposit comes off the price.
func (mi *MortgageInput) ToLoanTerms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:            mi.LoanAmount(),
		TotalTermMonths:      mi.TermYears * 12,
		FixedRatePercent:     mi.FixedRatePercent,
		FixedPhaseMonths:     mi.FixedTermYears * 12,
		RemainingRatePercent: mi.RemainingRatePercent,
		MonthlyOverpayment:   mi.MonthlyOverpayment,
	}
}

// InputParser handles parsing of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML or JSON file. JSON works because
// it is a subset of YAML.
func (ip *InputParser) LoadFromFile(filename string) (*MortgageInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input MortgageInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &input, nil
}

// SaveToFile writes a scenario back out as YAML so it can be reloaded later.
func (ip *InputParser) SaveToFile(input *MortgageInput, filename string) error {
	if err := ip.ValidateInput(input); err != nil {
		return fmt.Errorf("scenario validation failed: %w", err)
	}

	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateInput validates a loaded scenario.
func (ip *InputParser) ValidateInput(input *MortgageInput) error {
	if input.HousePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("house price must be positive")
	}
	if input.Deposit.IsNegative() {
		return fmt.Errorf("deposit cannot be negative")
	}
	if input.Deposit.GreaterThanOrEqual(input.HousePrice) {
		return fmt.Errorf("deposit must be less than the house price")
	}
	if input.TermYears <= 0 {
		return fmt.Errorf("term must be at least 1 year")
	}
	if input.FixedTermYears < 0 {
		return fmt.Errorf("fixed term cannot be negative")
	}
	if input.FixedTermYears > input.TermYears {
		return fmt.Errorf("fixed term cannot exceed the total term")
	}
	if input.FixedRatePercent.IsNegative() {
		return fmt.Errorf("fixed rate cannot be negative")
	}
	if input.RemainingRatePercent.IsNegative() {
		return fmt.Errorf("remaining rate cannot be negative")
	}
	if input.MonthlyOverpayment.IsNegative() {
		return fmt.Errorf("monthly overpayment cannot be negative")
	}
	return nil
}
