package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
	"github.com/dyaboykyl/investisizer-sub001/pkg/money"
)

// ProjectInvestment produces an investment's year-indexed result rows 0..N.
//
// propertyCashFlows is the aggregated linked-property series with one entry
// per projection year (index 0 = year 1); a nil or short series reads as
// zero. The cash flow is netted against the balance before growth is applied,
// so withdrawals reduce the growth base; the asset's own contribution is
// added after growth (it arrives at year end). TotalEarnings reports the
// growth-only delta so linked cash flows never distort the displayed
// investment performance.
func ProjectInvestment(inputs domain.InvestmentInputs, settings domain.PortfolioSettings, propertyCashFlows []decimal.Decimal) []domain.InvestmentResult {
	settings = settings.Normalized()
	years := settings.ProjectionYears

	initial := money.Round(inputs.InitialAmount.Decimal())
	baseContribution := inputs.AnnualContribution.Decimal()
	returnRate := money.Pct(inputs.RateOfReturn.Decimal())
	inflation := settings.InflationRate

	results := make([]domain.InvestmentResult, 0, years+1)
	results = append(results, domain.InvestmentResult{
		Year:        0,
		Balance:     initial,
		RealBalance: initial,
	})

	balance := initial
	for year := 1; year <= years; year++ {
		var cashFlow decimal.Decimal
		if year-1 < len(propertyCashFlows) {
			cashFlow = propertyCashFlows[year-1]
		}

		contribution := baseContribution
		if inputs.InflationAdjustedContributions {
			contribution = baseContribution.Mul(money.GrowthFactor(inflation, year))
		}

		growthBase := balance.Add(cashFlow)
		earnings := growthBase.Mul(returnRate)
		newBalance := money.Round(growthBase.Mul(money.One.Add(returnRate)).Add(contribution))

		results = append(results, domain.InvestmentResult{
			Year:               year,
			Balance:            newBalance,
			RealBalance:        money.Round(money.Deflate(newBalance, inflation, year)),
			AnnualContribution: money.Round(contribution),
			PropertyCashFlow:   money.Round(cashFlow),
			TotalEarnings:      money.Round(earnings),
			YearlyGain:         newBalance.Sub(balance),
		})
		balance = newBalance
	}
	return results
}

// FinalInvestmentResult returns the last row, or a zero row for an empty series.
func FinalInvestmentResult(results []domain.InvestmentResult) domain.InvestmentResult {
	if len(results) == 0 {
		return domain.InvestmentResult{}
	}
	return results[len(results)-1]
}
