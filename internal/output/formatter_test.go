package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyaboykyl/investisizer-sub001/internal/calculation"
	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
)

func testProjectionSet(t *testing.T) *calculation.ProjectionSet {
	t.Helper()
	settings := domain.PortfolioSettings{
		ProjectionYears: 3,
		InflationRate:   decimal.NewFromFloat(2.5),
		StartingYear:    2026,
	}
	assets := []domain.Asset{
		&domain.Investment{
			AssetID: "brokerage", DisplayName: "Brokerage", IsEnabled: true,
			Inputs: domain.InvestmentInputs{
				InitialAmount: domain.FlexFromInt(100000),
				RateOfReturn:  domain.FlexFromInt(7),
			},
		},
		&domain.Property{
			AssetID: "duplex", DisplayName: "Duplex", IsEnabled: true,
			Inputs: domain.PropertyInputs{
				PurchasePrice: domain.FlexFromInt(400000),
				InterestRate:  domain.FlexFromFloat(6.5),
				Sale: domain.SaleConfig{
					IsPlannedForSale: true,
					SaleYear:         2,
				},
			},
		},
	}
	return calculation.NewAggregator(settings, assets).Project()
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"console", "table", "", "csv", "json", "CSV", "Json"} {
		f, err := NewFormatter(format)
		require.NoError(t, err, format)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestConsoleFormatter(t *testing.T) {
	rendered, err := (&ConsoleFormatter{}).Format(testProjectionSet(t))
	require.NoError(t, err)

	assert.Contains(t, rendered, "PORTFOLIO PROJECTION")
	assert.Contains(t, rendered, "Brokerage")
	assert.Contains(t, rendered, "SALE: Duplex (year 2, month 6)")
	assert.Contains(t, rendered, "Net after tax")
}

func TestConsoleFormatterEmpty(t *testing.T) {
	set := calculation.NewAggregator(domain.DefaultSettings(), nil).Project()
	rendered, err := (&ConsoleFormatter{}).Format(set)
	require.NoError(t, err)
	assert.Contains(t, rendered, "No enabled assets")
}

func TestCSVFormatter(t *testing.T) {
	rendered, err := (&CSVFormatter{}).Format(testProjectionSet(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	require.Len(t, lines, 5) // header plus years 0..3
	assert.Equal(t,
		"year,calendar_year,total_balance,real_total_balance,total_investment_balance,total_property_value,total_property_equity,total_mortgage_balance,total_annual_contribution",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,2026,"))
	assert.True(t, strings.HasPrefix(lines[4], "3,2029,"))
}

func TestJSONFormatter(t *testing.T) {
	rendered, err := (&JSONFormatter{Indent: true}).Format(testProjectionSet(t))
	require.NoError(t, err)

	var decoded struct {
		Settings domain.PortfolioSettings `json:"settings"`
		Combined []domain.CombinedResult  `json:"combined"`
	}
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	assert.Equal(t, 3, decoded.Settings.ProjectionYears)
	assert.Len(t, decoded.Combined, 4)
}
