package output

import (
	"fmt"
	"strings"

	"github.com/dyaboykyl/investisizer-sub001/internal/calculation"
	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
	"github.com/dyaboykyl/investisizer-sub001/pkg/money"
)

// ConsoleFormatter renders a human-readable report.
type ConsoleFormatter struct{}

// Format renders the combined series and a per-asset summary.
func (f *ConsoleFormatter) Format(set *calculation.ProjectionSet) (string, error) {
	var b strings.Builder

	b.WriteString("PORTFOLIO PROJECTION\n")
	b.WriteString("====================\n\n")
	fmt.Fprintf(&b, "Projection: %d years starting %d, inflation %s%%\n\n",
		set.Settings.ProjectionYears, set.Settings.StartingYear, set.Settings.InflationRate.String())

	if len(set.Combined) == 0 {
		b.WriteString("No enabled assets.\n")
		return b.String(), nil
	}

	b.WriteString("COMBINED PORTFOLIO\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "%-6s %-6s %15s %15s %15s %15s %15s\n",
		"Year", "Cal", "Total", "Real Total", "Investments", "Prop. Equity", "Mortgage")
	for _, row := range set.Combined {
		fmt.Fprintf(&b, "%-6d %-6d %15s %15s %15s %15s %15s\n",
			row.Year, row.CalendarYear,
			money.Format(row.TotalBalance),
			money.Format(row.RealTotalBalance),
			money.Format(row.TotalInvestmentBalance),
			money.Format(row.TotalPropertyEquity),
			money.Format(row.TotalMortgageBalance))
	}

	final := set.Combined[len(set.Combined)-1]
	if len(final.AssetBreakdown) > 0 {
		b.WriteString("\nFINAL YEAR BREAKDOWN\n")
		b.WriteString("--------------------\n")
		for _, entry := range final.AssetBreakdown {
			switch entry.AssetType {
			case domain.AssetTypeInvestment:
				fmt.Fprintf(&b, "  %-30s investment  balance %s\n", entry.AssetName, money.Format(entry.Balance))
			case domain.AssetTypeProperty:
				fmt.Fprintf(&b, "  %-30s property    equity %s (value %s, mortgage %s)\n",
					entry.AssetName, money.Format(entry.Balance),
					money.Format(entry.PropertyValue), money.Format(entry.MortgageBalance))
			}
		}
	}

	for id, projection := range set.Properties {
		if projection.Sale == nil {
			continue
		}
		sale := projection.Sale
		name := assetName(set, id)
		fmt.Fprintf(&b, "\nSALE: %s (year %d, month %d)\n", name, sale.Year, sale.Month)
		fmt.Fprintf(&b, "  Sale price:        %s\n", money.Format(sale.SalePrice))
		fmt.Fprintf(&b, "  Selling costs:     %s\n", money.Format(sale.SellingCosts))
		fmt.Fprintf(&b, "  Mortgage payoff:   %s\n", money.Format(sale.MortgagePayoff))
		fmt.Fprintf(&b, "  Capital gain:      %s\n", money.Format(sale.CapitalGain))
		if sale.Tax.Section121Exclusion.GreaterThan(money.Zero) {
			fmt.Fprintf(&b, "  Sec. 121 excluded: %s\n", money.Format(sale.Tax.Section121Exclusion))
		}
		fmt.Fprintf(&b, "  Federal tax:       %s\n", money.Format(sale.Tax.FederalTax))
		fmt.Fprintf(&b, "  State tax:         %s\n", money.Format(sale.Tax.StateTax))
		fmt.Fprintf(&b, "  Net after tax:     %s\n", money.Format(sale.NetAfterTaxProceeds))
		if sale.Reinvested && sale.TargetInvestmentID != "" {
			fmt.Fprintf(&b, "  Reinvested into:   %s\n", assetName(set, sale.TargetInvestmentID))
		}
	}

	return b.String(), nil
}

// assetName resolves an asset id to its display name via the combined
// breakdown, falling back to the id itself.
func assetName(set *calculation.ProjectionSet, id string) string {
	for _, row := range set.Combined {
		for _, entry := range row.AssetBreakdown {
			if entry.AssetID == id {
				return entry.AssetName
			}
		}
	}
	return id
}
