package ledger

import (
	"encoding/csv"
	"io"
)

var exportHeader = []string{"Date", "Time", "Amount", "Purpose", "Daily Earnings", "Notes"}

// WriteCSV renders history rows as a CSV document: fixed column order, one
// row per payment in sequence order, RFC 4180 quoting for embedded commas
// and quotes. An empty input still produces the header line.
func WriteCSV(w io.Writer, rows []HistoryRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Payment.Date,
			row.Payment.Time,
			row.Payment.Amount.String(),
			row.Payment.Purpose,
			row.DailyEarnings.String(),
			row.Payment.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
