package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 20.0
	contentWidth = 180.0
)

// pdfText converts UTF-8 text to PDF-safe encoding.
// The £ sign in UTF-8 is 0xC2 0xA3, but PDF standard fonts expect Latin-1
// (just 0xA3).
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// PDFReport generates the printable mortgage report.
type PDFReport struct {
	pdf    *fpdf.Fpdf
	report *Report
}

// GeneratePDFReport renders the report as a PDF document.
func GeneratePDFReport(report *Report) ([]byte, error) {
	r := &PDFReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		report: report,
	}

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)

	r.addSummaryPage()
	r.addBalanceChart()
	r.addYearByYearTable()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFReport) addSummaryPage() {
	r.pdf.AddPage()
	terms := r.report.Schedule.Terms
	summary := r.report.Schedule.Summary

	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 14, "Mortgage Overpayment Report", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(80, 80, 80)
	generated := r.report.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	r.pdf.CellFormat(contentWidth, 7, fmt.Sprintf("Generated: %s", generated.Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.drawSectionHeader("Loan Terms")
	r.drawKeyValue("Loan Amount", FormatCurrency(terms.Principal))
	r.drawKeyValue("Term", FormatMonths(terms.TotalTermMonths))
	r.drawKeyValue("Fixed Rate", fmt.Sprintf("%s for %s",
		FormatPercentage(terms.FixedRatePercent), FormatMonths(terms.FixedPhaseMonths)))
	r.drawKeyValue("Remaining Rate", FormatPercentage(terms.RemainingRatePercent))
	r.drawKeyValue("Monthly Overpayment", FormatCurrency(terms.MonthlyOverpayment))
	r.pdf.Ln(5)

	r.drawSectionHeader("Summary")
	r.drawKeyValue("Months To Clear", fmt.Sprintf("%d (%s)", summary.MonthsTaken, FormatMonths(summary.MonthsTaken)))
	r.drawKeyValue("Estimated Payoff", summary.PayoffDate.Format("2 January 2006"))
	r.drawKeyValue("Total Interest", FormatCurrency(summary.TotalInterest))
	r.drawKeyValue("Total Paid", FormatCurrency(summary.TotalPayment))
	if summary.MonthsSaved > 0 {
		r.drawKeyValue("Term Reduced By", FormatMonths(summary.MonthsSaved))
	}
	if r.report.Baseline != nil && r.report.Baseline != r.report.Schedule {
		r.drawKeyValue("Interest Saved", FormatCurrency(r.report.InterestSaved()))
	}
	r.pdf.Ln(5)

	r.drawSectionHeader("Payment Breakdown")
	r.drawKeyValue("Principal Repaid", FormatCurrency(r.report.Breakdown.TotalPrincipal))
	r.drawKeyValue("Overpayments", FormatCurrency(r.report.Breakdown.TotalOverpayment))
	r.drawKeyValue("Interest Paid", FormatCurrency(r.report.Breakdown.TotalInterest))
	r.drawKeyValue("Total", FormatCurrency(r.report.Breakdown.TotalPayment))
}

// addBalanceChart draws the outstanding balance over time as a polyline,
// with the baseline schedule as a second series when it differs.
func (r *PDFReport) addBalanceChart() {
	r.pdf.AddPage()
	r.drawSectionHeader("Balance Over Time")

	balances := r.report.Schedule.Balances()
	if len(balances) == 0 {
		return
	}

	var baseline []float64
	if r.report.Baseline != nil && r.report.Baseline != r.report.Schedule {
		baseline = r.report.Baseline.Balances()
	}

	chartX := marginLeft + 12
	chartY := r.pdf.GetY() + 5
	chartW := contentWidth - 18
	chartH := 100.0

	maxBalance := r.report.Schedule.Terms.Principal.InexactFloat64()
	maxMonths := len(balances)
	if len(baseline) > maxMonths {
		maxMonths = len(baseline)
	}

	// Axes
	r.pdf.SetDrawColor(120, 120, 120)
	r.pdf.Line(chartX, chartY, chartX, chartY+chartH)
	r.pdf.Line(chartX, chartY+chartH, chartX+chartW, chartY+chartH)

	// Y axis labels at quarters
	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(80, 80, 80)
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		y := chartY + chartH - frac*chartH
		label := fmt.Sprintf("£%.0fk", maxBalance*frac/1000)
		r.pdf.Text(chartX-11, y+1, pdfText(label))
		r.pdf.SetDrawColor(220, 220, 220)
		if i > 0 {
			r.pdf.Line(chartX, y, chartX+chartW, y)
		}
	}

	// X axis labels every five years
	for m := 0; m <= maxMonths; m += 60 {
		x := chartX + float64(m)/float64(maxMonths)*chartW
		r.pdf.Text(x-2, chartY+chartH+4, fmt.Sprintf("%dy", m/12))
	}

	if baseline != nil {
		r.drawSeries(baseline, chartX, chartY, chartW, chartH, maxBalance, maxMonths, 160, 160, 160)
	}
	r.drawSeries(balances, chartX, chartY, chartW, chartH, maxBalance, maxMonths, 0, 51, 102)

	// Legend
	r.pdf.SetY(chartY + chartH + 8)
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 5, "Dark line: with overpayments", "", 1, "L", false, 0, "")
	if baseline != nil {
		r.pdf.SetTextColor(120, 120, 120)
		r.pdf.CellFormat(contentWidth, 5, "Grey line: without overpayments", "", 1, "L", false, 0, "")
	}
}

func (r *PDFReport) drawSeries(balances []float64, chartX, chartY, chartW, chartH, maxBalance float64, maxMonths int, red, green, blue int) {
	if maxBalance <= 0 || maxMonths == 0 {
		return
	}
	r.pdf.SetDrawColor(red, green, blue)
	r.pdf.SetLineWidth(0.4)

	prevX := chartX
	prevY := chartY
	for i, balance := range balances {
		x := chartX + float64(i+1)/float64(maxMonths)*chartW
		y := chartY + chartH - balance/maxBalance*chartH
		r.pdf.Line(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
	r.pdf.SetLineWidth(0.2)
}

// addYearByYearTable lists the position at each year end plus the final month.
func (r *PDFReport) addYearByYearTable() {
	r.pdf.AddPage()
	r.drawSectionHeader("Year By Year")

	headers := []string{"Year", "Payment", "Interest", "Principal", "Overpay", "Balance"}
	widths := []float64{20, 32, 32, 32, 32, 32}
	r.drawTableHeader(headers, widths)

	records := r.report.Schedule.Records
	fill := false
	for i, rec := range records {
		yearEnd := rec.Month%12 == 0
		final := i == len(records)-1
		if !yearEnd && !final {
			continue
		}

		row := []string{
			fmt.Sprintf("%d", (rec.Month+11)/12),
			FormatCurrency(rec.Payment),
			FormatCurrency(rec.Interest),
			FormatCurrency(rec.Principal),
			FormatCurrency(rec.Overpayment),
			FormatCurrency(rec.Balance),
		}
		r.drawTableRow(row, widths, fill)
		fill = !fill
	}
}

func (r *PDFReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *PDFReport) drawKeyValue(key, value string) {
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(55, 6, key+":", "", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.CellFormat(contentWidth-55, 6, pdfText(value), "", 1, "L", false, 0, "")
}

func (r *PDFReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *PDFReport) drawTableRow(cells []string, widths []float64, fill bool) {
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFillColor(245, 247, 250)

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, pdfText(cell), "1", 0, align, fill, 0, "")
	}
	r.pdf.Ln(-1)
}

// FormatCurrencyPDF formats money for PDF output (handles £ encoding).
func FormatCurrencyPDF(amount decimal.Decimal) string {
	return pdfText(FormatCurrency(amount))
}
