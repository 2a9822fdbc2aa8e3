package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/calculation"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(t *testing.T) *Report {
	t.Helper()
	engine := &calculation.Engine{AsOf: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	terms := domain.LoanTerms{
		Principal:            decimal.NewFromInt(240000),
		TotalTermMonths:      360,
		FixedRatePercent:     decimal.NewFromFloat(4.6),
		FixedPhaseMonths:     36,
		RemainingRatePercent: decimal.NewFromFloat(5.5),
		MonthlyOverpayment:   decimal.NewFromInt(200),
	}

	sched, err := engine.Simulate(terms)
	require.NoError(t, err)
	baseline, err := engine.Simulate(terms.WithoutOverpayment())
	require.NoError(t, err)

	return &Report{
		Schedule:    sched,
		Baseline:    baseline,
		Breakdown:   calculation.Breakdown(sched.Records),
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.Zero, "£0.00"},
		{decimal.NewFromInt(5), "£5.00"},
		{decimal.NewFromFloat(999.99), "£999.99"},
		{decimal.NewFromInt(1000), "£1,000.00"},
		{decimal.NewFromFloat(240000.5), "£240,000.50"},
		{decimal.NewFromInt(1234567), "£1,234,567.00"},
		{decimal.NewFromInt(-1500), "-£1,500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount))
	}
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "30y 0m", FormatMonths(360))
	assert.Equal(t, "25y 11m", FormatMonths(311))
	assert.Equal(t, "0y 1m", FormatMonths(1))
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "CSV", ""} {
		f, err := GetFormatterByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := GetFormatterByName("xml")
	assert.Error(t, err)
}

func TestConsoleFormatter(t *testing.T) {
	report := testReport(t)

	out, err := (&ConsoleFormatter{MaxScheduleRows: 12}).Format(report)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "MORTGAGE OVERPAYMENT REPORT")
	assert.Contains(t, text, "Loan Amount:          £240,000.00")
	assert.Contains(t, text, "Interest Saved:")
	assert.Contains(t, text, "Term Reduced By:")
	assert.Contains(t, text, "...", "long schedules should be truncated")

	// The truncated table still ends with the closing month.
	last := report.Schedule.Records[len(report.Schedule.Records)-1]
	assert.Contains(t, text, last.Balance.StringFixed(2))
}

func TestCSVFormatter_Schedule(t *testing.T) {
	report := testReport(t)

	out, err := (&CSVFormatter{}).Format(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, len(report.Schedule.Records)+1, "header plus one row per month")
	assert.Equal(t, "Month,Payment,Interest,Principal,Overpayment,Balance", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], ",0.00"), "final balance column must be zero")
}

func TestJSONFormatter_Report(t *testing.T) {
	report := testReport(t)

	out, err := (&JSONFormatter{Pretty: true}).Format(report)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "schedule")
	assert.Contains(t, decoded, "breakdown")
}

func TestGeneratePDFReport(t *testing.T) {
	report := testReport(t)

	data, err := GeneratePDFReport(report)
	require.NoError(t, err)

	assert.True(t, len(data) > 1000, "PDF should have substance, got %d bytes", len(data))
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output should be a PDF document")
}

func TestPdfText(t *testing.T) {
	assert.Equal(t, "\xa31,000.00", pdfText("£1,000.00"))
	assert.Equal(t, "plain", pdfText("plain"))
}
