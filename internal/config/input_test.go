package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *MortgageInput {
	return &MortgageInput{
		HousePrice:           decimal.NewFromInt(300000),
		Deposit:              decimal.NewFromInt(60000),
		TermYears:            30,
		FixedRatePercent:     decimal.NewFromFloat(4.6),
		FixedTermYears:       3,
		RemainingRatePercent: decimal.NewFromFloat(5.5),
		MonthlyOverpayment:   decimal.NewFromInt(200),
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	content := `
house_price: 300000
deposit: 60000
term_years: 30
fixed_rate_percent: 4.6
fixed_term_years: 3
remaining_rate_percent: 5.5
monthly_overpayment: 200
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	parser := NewInputParser()
	input, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, input.HousePrice.Equal(decimal.NewFromInt(300000)))
	assert.True(t, input.LoanAmount().Equal(decimal.NewFromInt(240000)), "loan amount is price minus deposit")
	assert.Equal(t, 30, input.TermYears)
	assert.True(t, input.MonthlyOverpayment.Equal(decimal.NewFromInt(200)))
}

func TestLoadFromFile_JSON(t *testing.T) {
	content := `{
  "house_price": 300000,
  "deposit": 60000,
  "term_years": 30,
  "fixed_rate_percent": 4.6,
  "fixed_term_years": 3,
  "remaining_rate_percent": 5.5,
  "monthly_overpayment": 0
}`
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	input, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, input.FixedTermYears)
	assert.True(t, input.MonthlyOverpayment.IsZero())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("house_price: [not a number"), 0o644))

	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "saved.yaml")

	original := validInput()
	require.NoError(t, parser.SaveToFile(original, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.HousePrice.Equal(original.HousePrice))
	assert.True(t, loaded.Deposit.Equal(original.Deposit))
	assert.Equal(t, original.TermYears, loaded.TermYears)
	assert.Equal(t, original.FixedTermYears, loaded.FixedTermYears)
	assert.True(t, loaded.FixedRatePercent.Equal(original.FixedRatePercent))
	assert.True(t, loaded.RemainingRatePercent.Equal(original.RemainingRatePercent))
	assert.True(t, loaded.MonthlyOverpayment.Equal(original.MonthlyOverpayment))
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MortgageInput)
		wantErr string
	}{
		{"valid", func(mi *MortgageInput) {}, ""},
		{"zero house price", func(mi *MortgageInput) { mi.HousePrice = decimal.Zero }, "house price"},
		{"negative deposit", func(mi *MortgageInput) { mi.Deposit = decimal.NewFromInt(-1) }, "deposit"},
		{"deposit covers price", func(mi *MortgageInput) { mi.Deposit = mi.HousePrice }, "deposit"},
		{"zero term", func(mi *MortgageInput) { mi.TermYears = 0 }, "term"},
		{"negative fixed term", func(mi *MortgageInput) { mi.FixedTermYears = -1 }, "fixed term"},
		{"fixed term too long", func(mi *MortgageInput) { mi.FixedTermYears = 31 }, "fixed term"},
		{"negative fixed rate", func(mi *MortgageInput) { mi.FixedRatePercent = decimal.NewFromInt(-1) }, "fixed rate"},
		{"negative remaining rate", func(mi *MortgageInput) { mi.RemainingRatePercent = decimal.NewFromInt(-1) }, "remaining rate"},
		{"negative overpayment", func(mi *MortgageInput) { mi.MonthlyOverpayment = decimal.NewFromInt(-1) }, "overpayment"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			err := parser.ValidateInput(input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestToLoanTerms(t *testing.T) {
	terms := validInput().ToLoanTerms()

	assert.True(t, terms.Principal.Equal(decimal.NewFromInt(240000)))
	assert.Equal(t, 360, terms.TotalTermMonths)
	assert.Equal(t, 36, terms.FixedPhaseMonths)
	assert.True(t, terms.FixedRatePercent.Equal(decimal.NewFromFloat(4.6)))
	assert.True(t, terms.RemainingRatePercent.Equal(decimal.NewFromFloat(5.5)))
	assert.True(t, terms.MonthlyOverpayment.Equal(decimal.NewFromInt(200)))
}
