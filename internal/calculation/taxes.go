package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
	"github.com/dyaboykyl/investisizer-sub001/pkg/money"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal long-term capital-gains brackets use the 2024 thresholds for all
//    projection years (no inflation indexing). The band is selected by filing
//    status and total income (annual income plus the taxable base), and the
//    band's flat rate applies to the whole base.
//
// 2. Depreciation recapture is taxed at the flat 25% Section 1250 rate and is
//    carved out of the ordinary-rate base to avoid double taxation.
//
// 3. State capital-gains rates are flat approximations of each state's top
//    marginal rate; states without a capital-gains tax and unknown state
//    codes both yield zero tax, distinguished by the StateNote field.

// Section 1250 recapture rate.
var recaptureRate = decimal.NewFromFloat(0.25)

// Section 121 exclusion caps.
var (
	section121CapSingle = decimal.NewFromInt(250000)
	section121CapJoint  = decimal.NewFromInt(500000)
)

// Section 121 ineligibility reasons, reported as structured strings rather
// than errors.
const (
	Reason121Disabled     = "exclusion not enabled"
	Reason121NotPrimary   = "not a primary residence"
	Reason121OwnedTooFew  = "owned less than 2 years"
	Reason121LivedTooFew  = "lived in less than 2 years"
	Reason121RecentlyUsed = "exclusion used within the last two years"
)

// State tax notes.
const (
	StateNoteDisabled = "state tax disabled"
	StateNoteNoTax    = "no capital gains tax"
	StateNoteNotFound = "state not found"
)

// CapitalGainsBracket is one federal long-term capital-gains band.
type CapitalGainsBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// StateCapitalGains is one row of the per-state table: either a flat rate or
// an explicit no-tax marker.
type StateCapitalGains struct {
	Rate  decimal.Decimal
	NoTax bool
}

// CapitalGainsTaxCalculator computes the federal and state tax due on a
// property disposition. CalculateSaleTax is a pure function of its inputs;
// the constructor keeps the bracket tables parameterized instead of
// scattering rate constants through the projection code.
type CapitalGainsTaxCalculator struct {
	FederalBrackets map[domain.FilingStatus][]CapitalGainsBracket
	StateRates      map[string]StateCapitalGains
}

// NewCapitalGainsTaxCalculator creates a calculator with the 2024 federal
// long-term capital-gains thresholds and the built-in state table.
func NewCapitalGainsTaxCalculator() *CapitalGainsTaxCalculator {
	return &CapitalGainsTaxCalculator{
		FederalBrackets: federalCapitalGainsBrackets2024(),
		StateRates:      stateCapitalGainsRates(),
	}
}

func federalCapitalGainsBrackets2024() map[domain.FilingStatus][]CapitalGainsBracket {
	r15 := decimal.NewFromFloat(0.15)
	r20 := decimal.NewFromFloat(0.20)
	top := decimal.NewFromInt(999999999)
	build := func(t0, t15 int64) []CapitalGainsBracket {
		return []CapitalGainsBracket{
			{decimal.Zero, decimal.NewFromInt(t0), decimal.Zero},
			{decimal.NewFromInt(t0), decimal.NewFromInt(t15), r15},
			{decimal.NewFromInt(t15), top, r20},
		}
	}
	return map[domain.FilingStatus][]CapitalGainsBracket{
		domain.FilingSingle:          build(47025, 518900),
		domain.FilingMarriedJoint:    build(94050, 583750),
		domain.FilingMarriedSeparate: build(47025, 291850),
		domain.FilingHeadOfHousehold: build(63000, 551350),
	}
}

func stateCapitalGainsRates() map[string]StateCapitalGains {
	rate := func(pct float64) StateCapitalGains {
		return StateCapitalGains{Rate: decimal.NewFromFloat(pct / 100)}
	}
	noTax := StateCapitalGains{NoTax: true}
	return map[string]StateCapitalGains{
		"AL": rate(5.0), "AK": noTax, "AZ": rate(2.5), "AR": rate(4.4),
		"CA": rate(13.3), "CO": rate(4.4), "CT": rate(6.99), "DE": rate(6.6),
		"DC": rate(10.75), "FL": noTax, "GA": rate(5.49), "HI": rate(7.25),
		"ID": rate(5.8), "IL": rate(4.95), "IN": rate(3.05), "IA": rate(5.7),
		"KS": rate(5.7), "KY": rate(4.0), "LA": rate(4.25), "ME": rate(7.15),
		"MD": rate(5.75), "MA": rate(5.0), "MI": rate(4.25), "MN": rate(9.85),
		"MS": rate(4.7), "MO": rate(4.8), "MT": rate(5.9), "NE": rate(5.84),
		"NV": noTax, "NH": noTax, "NJ": rate(10.75), "NM": rate(5.9),
		"NY": rate(10.9), "NC": rate(4.5), "ND": rate(2.5), "OH": rate(3.5),
		"OK": rate(4.75), "OR": rate(9.9), "PA": rate(3.07), "RI": rate(5.99),
		"SC": rate(6.4), "SD": noTax, "TN": noTax, "TX": noTax,
		"UT": rate(4.65), "VT": rate(8.75), "VA": rate(5.75), "WA": rate(7.0),
		"WV": rate(5.12), "WI": rate(7.65), "WY": noTax,
	}
}

// Section121Exclusion evaluates the primary-residence exclusion for a gain.
// It returns the applied exclusion, eligibility, and the ineligibility reason.
func (c *CapitalGainsTaxCalculator) Section121Exclusion(capitalGain decimal.Decimal, cfg domain.Section121Config, status domain.FilingStatus) (decimal.Decimal, bool, string) {
	if !cfg.Enabled {
		return money.Zero, false, Reason121Disabled
	}
	two := decimal.NewFromInt(2)
	switch {
	case !cfg.IsPrimaryResidence:
		return money.Zero, false, Reason121NotPrimary
	case cfg.YearsOwned.Decimal().LessThan(two):
		return money.Zero, false, Reason121OwnedTooFew
	case cfg.YearsLived.Decimal().LessThan(two):
		return money.Zero, false, Reason121LivedTooFew
	case cfg.HasUsedExclusionInLastTwoYears:
		return money.Zero, false, Reason121RecentlyUsed
	}
	limit := section121CapSingle
	if status == domain.FilingMarriedJoint {
		limit = section121CapJoint
	}
	return money.Min(limit, money.Floor0(capitalGain)), true, ""
}

// federalRate selects the capital-gains band for a filing status and total
// income level. Unknown filing statuses fall back to single.
func (c *CapitalGainsTaxCalculator) federalRate(status domain.FilingStatus, incomeLevel decimal.Decimal) decimal.Decimal {
	brackets, ok := c.FederalBrackets[status]
	if !ok {
		brackets = c.FederalBrackets[domain.FilingSingle]
	}
	for _, b := range brackets {
		if incomeLevel.GreaterThanOrEqual(b.Min) && incomeLevel.LessThan(b.Max) {
			return b.Rate
		}
	}
	if len(brackets) == 0 {
		return money.Zero
	}
	return brackets[len(brackets)-1].Rate
}

// stateTax looks the combined taxable base up against the per-state table.
// A lookup miss is flagged, never raised.
func (c *CapitalGainsTaxCalculator) stateTax(taxableBase decimal.Decimal, profile domain.SaleTaxProfile) (decimal.Decimal, string) {
	if !profile.EnableStateTax {
		return money.Zero, StateNoteDisabled
	}
	entry, ok := c.StateRates[strings.ToUpper(strings.TrimSpace(profile.State))]
	if !ok {
		return money.Zero, StateNoteNotFound
	}
	if entry.NoTax {
		return money.Zero, StateNoteNoTax
	}
	return money.Round(taxableBase.Mul(entry.Rate)), ""
}

// CalculateSaleTax computes the full tax breakdown for a disposition:
// Section 121 exclusion, depreciation recapture at 25%, federal bracket tax
// on the remaining combined base, and the state lookup. A negative combined
// base yields zero tax; there is no refund modeling.
func (c *CapitalGainsTaxCalculator) CalculateSaleTax(capitalGain decimal.Decimal, profile domain.SaleTaxProfile, s121 domain.Section121Config, dep domain.DepreciationConfig) domain.SaleTaxResult {
	status := profile.FilingStatus
	if status == "" {
		status = domain.FilingSingle
	}

	exclusion, eligible, reason := c.Section121Exclusion(capitalGain, s121, status)
	remainingGain := capitalGain.Sub(exclusion)

	var recaptureAmount, recaptureTax decimal.Decimal
	if dep.Enabled {
		recaptureAmount = money.Min(money.Floor0(remainingGain), money.Floor0(dep.TotalDepreciationTaken.Decimal()))
		recaptureTax = money.Round(recaptureAmount.Mul(recaptureRate))
	}

	// Recapture is carved out of the ordinary-rate base.
	ordinaryBase := remainingGain.Sub(recaptureAmount)
	combinedBase := money.Floor0(ordinaryBase.
		Add(profile.OtherCapitalGains.Decimal()).
		Sub(profile.CarryoverLosses.Decimal()))

	fedRate := c.federalRate(status, profile.AnnualIncome.Decimal().Add(combinedBase))
	federalTax := money.Round(combinedBase.Mul(fedRate)).Add(recaptureTax)

	stateTax, stateNote := c.stateTax(combinedBase, profile)

	return domain.SaleTaxResult{
		FederalTax:          federalTax,
		StateTax:            stateTax,
		Section121Exclusion: exclusion,
		Section121Eligible:  eligible,
		Section121Reason:    reason,
		RecaptureAmount:     money.Round(recaptureAmount),
		RecaptureTax:        recaptureTax,
		TaxableGain:         money.Round(combinedBase),
		AppliedFederalRate:  fedRate,
		StateNote:           stateNote,
	}
}
