package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
	"github.com/dyaboykyl/investisizer-sub001/pkg/money"
)

// ProjectionSet is the full portfolio projection: per-asset results plus the
// combined year-indexed series.
type ProjectionSet struct {
	Settings    domain.PortfolioSettings              `json:"settings"`
	Investments map[string][]domain.InvestmentResult  `json:"investments"`
	Properties  map[string]*PropertyProjection        `json:"properties"`
	Combined    []domain.CombinedResult               `json:"combined"`
}

// Aggregator resolves the property-to-investment link graph and merges every
// enabled asset's yearly results into a combined series. It holds no state
// between computations: the reverse index from investment id to contributing
// properties is rebuilt on every call, so removed assets cannot dangle.
type Aggregator struct {
	Settings domain.PortfolioSettings
	Assets   []domain.Asset
	Logger   Logger

	propertyProjector *PropertyProjector
}

// NewAggregator creates an aggregator over a snapshot of assets.
func NewAggregator(settings domain.PortfolioSettings, assets []domain.Asset) *Aggregator {
	return &Aggregator{
		Settings:          settings.Normalized(),
		Assets:            assets,
		Logger:            NopLogger{},
		propertyProjector: NewPropertyProjector(),
	}
}

// SetLogger sets the logger. A nil logger restores the no-op default.
func (a *Aggregator) SetLogger(l Logger) {
	if l == nil {
		a.Logger = NopLogger{}
		return
	}
	a.Logger = l
}

// enabledProperties returns the enabled properties with their projections.
// Disabled properties contribute nothing regardless of linkage.
func (a *Aggregator) enabledProperties() map[string]*PropertyProjection {
	projections := make(map[string]*PropertyProjection)
	for _, asset := range a.Assets {
		prop, ok := asset.(*domain.Property)
		if !ok || !prop.Enabled() {
			continue
		}
		projections[prop.ID()] = a.propertyProjector.Project(prop.Inputs, a.Settings)
	}
	return projections
}

// linkedCashFlows builds the per-year cash-flow series an investment absorbs
// from the given property projections: ongoing payment-linked flows while a
// property is unsold, plus one-time reinvested sale proceeds in the sale
// year. Multiple properties selling into the same investment in the same
// year sum together.
func (a *Aggregator) linkedCashFlows(investmentID string, properties map[string]*PropertyProjection) []decimal.Decimal {
	years := a.Settings.ProjectionYears
	flows := make([]decimal.Decimal, years)
	for i := range flows {
		flows[i] = money.Zero
	}
	for _, asset := range a.Assets {
		prop, ok := asset.(*domain.Property)
		if !ok || !prop.Enabled() {
			continue
		}
		projection := properties[prop.ID()]
		if projection == nil {
			continue
		}
		ongoing := prop.Inputs.LinkedInvestmentID == investmentID
		for year := 1; year <= years && year < len(projection.Rows); year++ {
			row := projection.Rows[year]
			if ongoing && !row.IsSaleYear && !row.PostSale {
				flows[year-1] = flows[year-1].Add(row.AnnualCashFlow)
			}
			if row.IsSaleYear && projection.Sale != nil &&
				projection.Sale.Reinvested && projection.Sale.TargetInvestmentID == investmentID {
				flows[year-1] = flows[year-1].Add(row.SaleProceeds)
			}
		}
	}
	return flows
}

// LinkedPropertyCashFlows returns the aggregated cash-flow series for an
// investment, one entry per projection year (index 0 = year 1). An unknown
// investment id yields an all-zero series rather than an error; stale UI
// state must not break the aggregator.
func (a *Aggregator) LinkedPropertyCashFlows(investmentID string) []decimal.Decimal {
	if a.findInvestment(investmentID) == nil {
		a.Logger.Warnf("linked cash flows requested for unknown investment %q", investmentID)
		return make([]decimal.Decimal, a.Settings.ProjectionYears)
	}
	return a.linkedCashFlows(investmentID, a.enabledProperties())
}

func (a *Aggregator) findInvestment(id string) *domain.Investment {
	for _, asset := range a.Assets {
		if inv, ok := asset.(*domain.Investment); ok && inv.ID() == id {
			return inv
		}
	}
	return nil
}

// Project computes every enabled asset's results and the combined series.
// The whole computation is a pure function of the asset snapshot and
// settings; calling it twice yields identical results.
func (a *Aggregator) Project() *ProjectionSet {
	set := &ProjectionSet{
		Settings:    a.Settings,
		Investments: make(map[string][]domain.InvestmentResult),
		Properties:  a.enabledProperties(),
	}

	anyEnabled := false
	for _, asset := range a.Assets {
		if !asset.Enabled() {
			continue
		}
		anyEnabled = true
		if inv, ok := asset.(*domain.Investment); ok {
			flows := a.linkedCashFlows(inv.ID(), set.Properties)
			set.Investments[inv.ID()] = ProjectInvestment(inv.Inputs, a.Settings, flows)
		}
	}

	// No enabled assets: the combined series is empty, not zero-filled.
	if !anyEnabled {
		set.Combined = []domain.CombinedResult{}
		return set
	}

	set.Combined = a.combine(set)
	return set
}

// combine merges per-asset rows into the portfolio series. Totals are summed
// from the already-rounded per-year figures. Property cash flows are not
// counted into TotalAnnualContribution: they already live inside the linked
// investments' balances.
func (a *Aggregator) combine(set *ProjectionSet) []domain.CombinedResult {
	years := a.Settings.ProjectionYears
	combined := make([]domain.CombinedResult, 0, years+1)

	for year := 0; year <= years; year++ {
		row := domain.CombinedResult{
			Year:         year,
			CalendarYear: a.Settings.CalendarYear(year),
		}

		for _, asset := range a.Assets {
			if !asset.Enabled() {
				continue
			}
			switch v := asset.(type) {
			case *domain.Investment:
				results := set.Investments[v.ID()]
				if year >= len(results) {
					continue
				}
				r := results[year]
				row.TotalInvestmentBalance = row.TotalInvestmentBalance.Add(r.Balance)
				row.TotalAnnualContribution = row.TotalAnnualContribution.Add(r.AnnualContribution)
				row.AssetBreakdown = append(row.AssetBreakdown, domain.AssetBreakdownEntry{
					AssetID:   v.ID(),
					AssetName: v.Name(),
					AssetType: domain.AssetTypeInvestment,
					Balance:   r.Balance,
				})
			case *domain.Property:
				projection := set.Properties[v.ID()]
				if projection == nil || year >= len(projection.Rows) {
					continue
				}
				r := projection.Rows[year]
				equity := r.Value.Sub(r.MortgageBalance)
				row.TotalPropertyValue = row.TotalPropertyValue.Add(r.Value)
				row.TotalPropertyEquity = row.TotalPropertyEquity.Add(equity)
				row.TotalMortgageBalance = row.TotalMortgageBalance.Add(r.MortgageBalance)
				row.AssetBreakdown = append(row.AssetBreakdown, domain.AssetBreakdownEntry{
					AssetID:         v.ID(),
					AssetName:       v.Name(),
					AssetType:       domain.AssetTypeProperty,
					Balance:         equity,
					PropertyValue:   r.Value,
					MortgageBalance: r.MortgageBalance,
					MonthlyPayment:  r.MonthlyPayment,
				})
			}
		}

		row.TotalBalance = row.TotalInvestmentBalance.Add(row.TotalPropertyValue)
		row.RealTotalBalance = money.Round(money.Deflate(row.TotalBalance, a.Settings.InflationRate, year))
		combined = append(combined, row)
	}

	return combined
}
