package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
	"github.com/dyaboykyl/investisizer-sub001/pkg/money"
)

// PropertyProjection is the full output for one property: the year-indexed
// rows plus the one-time sale outcome when a disposition occurred inside the
// projection window.
type PropertyProjection struct {
	Rows []domain.PropertyResult `json:"rows"`
	Sale *domain.SaleOutcome     `json:"sale,omitempty"`
}

// HasResults reports whether any rows were produced.
func (p *PropertyProjection) HasResults() bool {
	return p != nil && len(p.Rows) > 0
}

// FinalRow returns the last row, or a zero row for an empty projection.
func (p *PropertyProjection) FinalRow() domain.PropertyResult {
	if !p.HasResults() {
		return domain.PropertyResult{}
	}
	return p.Rows[len(p.Rows)-1]
}

// CapitalGain returns the disposition's capital gain, zero when no sale occurred.
func (p *PropertyProjection) CapitalGain() decimal.Decimal {
	if p == nil || p.Sale == nil {
		return money.Zero
	}
	return p.Sale.CapitalGain
}

// NetAfterTaxProceeds returns the sale's net after-tax proceeds, zero when no
// sale occurred.
func (p *PropertyProjection) NetAfterTaxProceeds() decimal.Decimal {
	if p == nil || p.Sale == nil {
		return money.Zero
	}
	return p.Sale.NetAfterTaxProceeds
}

// Section121Exclusion returns the applied exclusion, zero when no sale occurred.
func (p *PropertyProjection) Section121Exclusion() decimal.Decimal {
	if p == nil || p.Sale == nil {
		return money.Zero
	}
	return p.Sale.Tax.Section121Exclusion
}

// FederalTaxAmount returns the sale's federal tax, zero when no sale occurred.
func (p *PropertyProjection) FederalTaxAmount() decimal.Decimal {
	if p == nil || p.Sale == nil {
		return money.Zero
	}
	return p.Sale.Tax.FederalTax
}

// StateTaxAmount returns the sale's state tax, zero when no sale occurred.
func (p *PropertyProjection) StateTaxAmount() decimal.Decimal {
	if p == nil || p.Sale == nil {
		return money.Zero
	}
	return p.Sale.Tax.StateTax
}

// PropertyProjector produces year-indexed projections for properties.
type PropertyProjector struct {
	TaxCalc *CapitalGainsTaxCalculator
}

// NewPropertyProjector creates a projector with the default tax tables.
func NewPropertyProjector() *PropertyProjector {
	return &PropertyProjector{TaxCalc: NewCapitalGainsTaxCalculator()}
}

// Project produces a property's result rows 0..N. Year 0 is the current
// state with no cash flow. The projector reads the inputs as an immutable
// snapshot; calling it twice with unchanged inputs yields identical rows.
func (pp *PropertyProjector) Project(inputs domain.PropertyInputs, settings domain.PortfolioSettings) *PropertyProjection {
	settings = settings.Normalized()
	years := settings.ProjectionYears
	inflation := settings.InflationRate

	purchase := inputs.PurchasePrice.Decimal()
	downPct := inputs.DownPaymentPercentage.OrFloat(20)
	termYears := inputs.LoanTermYears.Int(30)
	interestRate := inputs.InterestRate.Decimal()
	growthRate := inputs.PropertyGrowthRate.Decimal()
	estimate := inputs.CurrentEstimatedValue.Or(purchase)

	growthModel := inputs.PropertyGrowthModel
	if growthModel == "" {
		growthModel = domain.GrowthFromPurchasePrice
	}
	yearsBought := inputs.YearsBought.Int(0)
	if yearsBought < 0 {
		yearsBought = 0
	}

	valueAt := func(year int) decimal.Decimal {
		if growthModel == domain.GrowthFromCurrentEstimate {
			return estimate.Mul(money.GrowthFactor(growthRate, year))
		}
		return purchase.Mul(money.GrowthFactor(growthRate, yearsBought+year))
	}

	loanAmount := money.Floor0(purchase.Mul(money.One.Sub(money.Pct(downPct))))
	basePayment := MonthlyPayment(loanAmount, interestRate, termYears)
	monthlyRate := MonthlyRate(interestRate)

	// Advance the amortization history for years already owned.
	balance := money.Round(AdvanceBalance(loanAmount, basePayment, interestRate, yearsBought))

	saleYear := 0
	if inputs.Sale.IsPlannedForSale && inputs.Sale.SaleYear >= 1 && inputs.Sale.SaleYear <= years {
		saleYear = inputs.Sale.SaleYear
	}

	hasOverride := inputs.MonthlyPayment.IsSet()
	override := inputs.MonthlyPayment.Decimal()

	projection := &PropertyProjection{Rows: make([]domain.PropertyResult, 0, years+1)}

	// Year 0: current state, no cash flow.
	year0PI := money.Zero
	if balance.GreaterThan(money.Zero) {
		year0PI = basePayment
	}
	year0Payment := year0PI
	if hasOverride {
		year0Payment = override
	}
	projection.Rows = append(projection.Rows, domain.PropertyResult{
		Year:                     0,
		Value:                    money.Round(valueAt(0)),
		RealValue:                money.Round(valueAt(0)),
		MortgageBalance:          balance,
		PrincipalInterestPayment: year0PI,
		MonthlyPayment:           year0Payment,
		OtherFeesPayment:         money.Round(year0Payment.Sub(year0PI)),
	})

	for year := 1; year <= years; year++ {
		if saleYear != 0 && year > saleYear {
			projection.Rows = append(projection.Rows, domain.PropertyResult{Year: year, PostSale: true})
			continue
		}

		startBalance := balance
		interestPaid, principalPaid, endBalance := AmortizeYear(startBalance, basePayment, monthlyRate)

		piMonthly := money.Zero
		if startBalance.GreaterThan(money.Zero) {
			piMonthly = basePayment
		}
		actualMonthly := piMonthly
		if hasOverride {
			actualMonthly = override
		}

		value := valueAt(year)

		var rentalIncome, rentalExpenses decimal.Decimal
		cashFlow := money.Annual(actualMonthly).Neg()
		if inputs.Rental.Enabled {
			grossRent := inputs.Rental.MonthlyRent.Decimal().Mul(money.GrowthFactor(inputs.Rental.RentGrowthRate.Decimal(), year))
			collectedRent := grossRent.Mul(money.One.Sub(money.Pct(inputs.Rental.VacancyRate.Decimal())))
			rentalIncome = money.Annual(collectedRent)

			rentalExpenses = inputs.Rental.AnnualExpenses.Decimal().
				Mul(money.GrowthFactor(inputs.Rental.ExpenseGrowthRate.Decimal(), year)).
				Add(value.Mul(money.Pct(inputs.Rental.MaintenanceRate.Decimal())))
			if m := inputs.Rental.Management; m != nil {
				rentalExpenses = rentalExpenses.
					Add(rentalIncome.Mul(money.Pct(m.MonthlyManagementFeeRate.Decimal()))).
					Add(grossRent.Mul(money.Pct(m.ListingFeeRate.Decimal())))
			}
			cashFlow = rentalIncome.Sub(rentalExpenses).Sub(money.Annual(actualMonthly))
		}

		if saleYear == year {
			sale := pp.disposition(inputs, valueAt, endBalance, year)
			projection.Sale = sale
			// The sale year's ending state reports zero to the portfolio;
			// the proceeds are routed by the aggregator, not added here.
			projection.Rows = append(projection.Rows, domain.PropertyResult{
				Year:          year,
				PrincipalPaid: money.Round(principalPaid),
				InterestPaid:  money.Round(interestPaid),
				IsSaleYear:    true,
				SaleProceeds:  sale.NetAfterTaxProceeds,
			})
			balance = money.Zero
			continue
		}

		balance = money.Round(endBalance)
		projection.Rows = append(projection.Rows, domain.PropertyResult{
			Year:                     year,
			Value:                    money.Round(value),
			RealValue:                money.Round(money.Deflate(value, inflation, year)),
			MortgageBalance:          balance,
			PrincipalPaid:            money.Round(principalPaid),
			InterestPaid:             money.Round(interestPaid),
			PrincipalInterestPayment: piMonthly,
			MonthlyPayment:           actualMonthly,
			OtherFeesPayment:         money.Round(actualMonthly.Sub(piMonthly)),
			RentalIncome:             money.Round(rentalIncome),
			RentalExpenses:           money.Round(rentalExpenses),
			AnnualCashFlow:           money.Round(cashFlow),
		})
	}

	return projection
}

// disposition performs the one-time sale computation at the sale year.
// The capital gain is basis-adjusted but not mortgage-adjusted: paying off
// the loan is a cash-flow matter, not a basis matter.
func (pp *PropertyProjector) disposition(inputs domain.PropertyInputs, valueAt func(int) decimal.Decimal, preSaleMortgage decimal.Decimal, year int) *domain.SaleOutcome {
	cfg := inputs.Sale

	salePrice := valueAt(year)
	if cfg.PriceMethod == domain.SalePriceCustom {
		salePrice = cfg.CustomSalePrice.Or(salePrice)
	}

	sellingCosts := salePrice.Mul(money.Pct(cfg.SellingCostsPercentage.OrFloat(7)))
	netProceeds := salePrice.Sub(sellingCosts).Sub(preSaleMortgage)

	adjustedBasis := inputs.PurchasePrice.Decimal().
		Add(cfg.CapitalImprovements.Decimal()).
		Add(cfg.OriginalBuyingCosts.Decimal())
	capitalGain := salePrice.Sub(sellingCosts).Sub(adjustedBasis)

	dep := cfg.Depreciation
	if dep.Enabled && !dep.TotalDepreciationTaken.IsSet() {
		// Straight-line estimate over the 27.5-year residential schedule on
		// the building share of the purchase price, for the years held.
		land := money.Pct(dep.LandValuePercentage.OrFloat(20))
		building := inputs.PurchasePrice.Decimal().Mul(money.One.Sub(land))
		annual := building.Div(decimal.NewFromFloat(27.5))
		held := decimal.NewFromInt(int64(inputs.YearsBought.Int(0) + year))
		dep.TotalDepreciationTaken = domain.Flex(money.Min(annual.Mul(held), building))
	}

	tax := pp.TaxCalc.CalculateSaleTax(capitalGain, cfg.Tax, cfg.Section121, dep)

	netAfterTax := netProceeds.Sub(tax.FederalTax).Sub(tax.StateTax)

	month := cfg.SaleMonth
	if month < 1 || month > 12 {
		month = 6
	}

	return &domain.SaleOutcome{
		Year:                year,
		Month:               month,
		SalePrice:           money.Round(salePrice),
		SellingCosts:        money.Round(sellingCosts),
		MortgagePayoff:      money.Round(preSaleMortgage),
		NetProceeds:         money.Round(netProceeds),
		AdjustedCostBasis:   money.Round(adjustedBasis),
		CapitalGain:         money.Round(capitalGain),
		Tax:                 tax,
		NetAfterTaxProceeds: money.Round(netAfterTax),
		Reinvested:          cfg.ReinvestProceeds,
		TargetInvestmentID:  cfg.TargetInvestmentID,
	}
}
