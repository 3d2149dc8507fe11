package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/dyaboykyl/investisizer-sub001/internal/calculation"
)

// CSVFormatter renders the combined series as CSV, one row per year.
type CSVFormatter struct{}

// Format writes a header row followed by the combined yearly rows.
func (f *CSVFormatter) Format(set *calculation.ProjectionSet) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"year", "calendar_year", "total_balance", "real_total_balance",
		"total_investment_balance", "total_property_value", "total_property_equity",
		"total_mortgage_balance", "total_annual_contribution",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range set.Combined {
		record := []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.CalendarYear),
			row.TotalBalance.StringFixed(2),
			row.RealTotalBalance.StringFixed(2),
			row.TotalInvestmentBalance.StringFixed(2),
			row.TotalPropertyValue.StringFixed(2),
			row.TotalPropertyEquity.StringFixed(2),
			row.TotalMortgageBalance.StringFixed(2),
			row.TotalAnnualContribution.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return b.String(), nil
}
