package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter emits the schedule, one row per month.
type CSVFormatter struct{}

func (c *CSVFormatter) Name() string { return "csv" }

func (c *CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Month", "Payment", "Interest", "Principal", "Overpayment", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range report.Schedule.Records {
		row := []string{
			strconv.Itoa(rec.Month),
			rec.Payment.StringFixed(2),
			rec.Interest.StringFixed(2),
			rec.Principal.StringFixed(2),
			rec.Overpayment.StringFixed(2),
			rec.Balance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
