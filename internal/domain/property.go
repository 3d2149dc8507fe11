package domain

import (
	"github.com/shopspring/decimal"
)

// GrowthModel selects the base a property's value compounds from.
type GrowthModel string

const (
	// GrowthFromPurchasePrice grows purchasePrice by (yearsBought + year) years.
	GrowthFromPurchasePrice GrowthModel = "from_purchase_price"
	// GrowthFromCurrentEstimate grows the current estimated value by the
	// projection year only; the estimate is a time-zero observation.
	GrowthFromCurrentEstimate GrowthModel = "from_current_estimate"
)

// FilingStatus keys the federal capital-gains bracket tables.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// Property is a leveraged real-estate asset.
type Property struct {
	AssetID     string         `json:"id" yaml:"id"`
	DisplayName string         `json:"name" yaml:"name"`
	IsEnabled   bool           `json:"enabled" yaml:"enabled"`
	Inputs      PropertyInputs `json:"inputs" yaml:"inputs"`
}

// PropertyInputs are the user-supplied assumptions for one property. Missing
// numeric values substitute documented defaults (down payment 20%, loan term
// 30 years, growth model from_purchase_price, estimate = purchase price).
type PropertyInputs struct {
	PurchasePrice         FlexDecimal `json:"purchase_price" yaml:"purchase_price"`
	CurrentEstimatedValue FlexDecimal `json:"current_estimated_value" yaml:"current_estimated_value"`
	DownPaymentPercentage FlexDecimal `json:"down_payment_percentage" yaml:"down_payment_percentage"`
	InterestRate          FlexDecimal `json:"interest_rate" yaml:"interest_rate"`
	LoanTermYears         FlexDecimal `json:"loan_term_years" yaml:"loan_term_years"`
	PropertyGrowthRate    FlexDecimal `json:"property_growth_rate" yaml:"property_growth_rate"`
	PropertyGrowthModel   GrowthModel `json:"property_growth_model" yaml:"property_growth_model"`
	// YearsBought is how many whole years the property was already owned at
	// projection year 0; the amortization history is advanced by that much.
	YearsBought FlexDecimal `json:"years_bought" yaml:"years_bought"`
	// MonthlyPayment overrides the computed principal-and-interest payment.
	// An override keeps being paid after payoff (it covers taxes, insurance
	// and other fees, not just P+I).
	MonthlyPayment FlexDecimal `json:"monthly_payment" yaml:"monthly_payment"`
	// LinkedInvestmentID routes the property's ongoing yearly cash flow into
	// an investment's balance (negative = withdrawal, positive = deposit).
	LinkedInvestmentID string       `json:"linked_investment_id" yaml:"linked_investment_id"`
	Rental             RentalConfig `json:"rental" yaml:"rental"`
	Sale               SaleConfig   `json:"sale" yaml:"sale"`
}

// RentalConfig models the income side of a rental property.
type RentalConfig struct {
	Enabled        bool        `json:"enabled" yaml:"enabled"`
	MonthlyRent    FlexDecimal `json:"monthly_rent" yaml:"monthly_rent"`
	RentGrowthRate FlexDecimal `json:"rent_growth_rate" yaml:"rent_growth_rate"`
	// VacancyRate is the expected percentage of time the unit sits empty.
	VacancyRate FlexDecimal `json:"vacancy_rate" yaml:"vacancy_rate"`
	// AnnualExpenses are non-mortgage operating costs, grown by their own rate.
	AnnualExpenses     FlexDecimal `json:"annual_expenses" yaml:"annual_expenses"`
	ExpenseGrowthRate  FlexDecimal `json:"expense_growth_rate" yaml:"expense_growth_rate"`
	// MaintenanceRate is an annual percentage of property value.
	MaintenanceRate FlexDecimal       `json:"maintenance_rate" yaml:"maintenance_rate"`
	Management      *ManagementConfig `json:"management,omitempty" yaml:"management,omitempty"`
}

// ManagementConfig models professional property management costs.
type ManagementConfig struct {
	// ListingFeeRate is a percentage of one gross month of rent per year.
	ListingFeeRate FlexDecimal `json:"listing_fee_rate" yaml:"listing_fee_rate"`
	// MonthlyManagementFeeRate is a percentage of collected (vacancy-adjusted) rent.
	MonthlyManagementFeeRate FlexDecimal `json:"monthly_management_fee_rate" yaml:"monthly_management_fee_rate"`
}

// SalePriceMethod selects how the effective sale price is determined.
type SalePriceMethod string

const (
	SalePriceProjected SalePriceMethod = "projected"
	SalePriceCustom    SalePriceMethod = "custom"
)

// SaleConfig describes a planned one-time disposition.
type SaleConfig struct {
	IsPlannedForSale bool `json:"is_planned_for_sale" yaml:"is_planned_for_sale"`
	// SaleYear is a projection year in [1, projectionLength].
	SaleYear int `json:"sale_year" yaml:"sale_year"`
	// SaleMonth (1..12) is recorded for partial-year proration; defaults to 6.
	SaleMonth              int             `json:"sale_month" yaml:"sale_month"`
	PriceMethod            SalePriceMethod `json:"price_method" yaml:"price_method"`
	CustomSalePrice        FlexDecimal     `json:"custom_sale_price" yaml:"custom_sale_price"`
	SellingCostsPercentage FlexDecimal     `json:"selling_costs_percentage" yaml:"selling_costs_percentage"`
	// CapitalImprovements and OriginalBuyingCosts adjust the cost basis.
	CapitalImprovements FlexDecimal `json:"capital_improvements" yaml:"capital_improvements"`
	OriginalBuyingCosts FlexDecimal `json:"original_buying_costs" yaml:"original_buying_costs"`
	// ReinvestProceeds routes net after-tax proceeds into TargetInvestmentID
	// in the sale year; otherwise the amount leaves the system.
	ReinvestProceeds   bool               `json:"reinvest_proceeds" yaml:"reinvest_proceeds"`
	TargetInvestmentID string             `json:"target_investment_id" yaml:"target_investment_id"`
	Tax                SaleTaxProfile     `json:"tax" yaml:"tax"`
	Section121         Section121Config   `json:"section_121" yaml:"section_121"`
	Depreciation       DepreciationConfig `json:"depreciation" yaml:"depreciation"`
}

// SaleTaxProfile is the seller's tax situation, used only at sale time.
type SaleTaxProfile struct {
	FilingStatus      FilingStatus `json:"filing_status" yaml:"filing_status"`
	AnnualIncome      FlexDecimal  `json:"annual_income" yaml:"annual_income"`
	State             string       `json:"state" yaml:"state"`
	OtherCapitalGains FlexDecimal  `json:"other_capital_gains" yaml:"other_capital_gains"`
	CarryoverLosses   FlexDecimal  `json:"carryover_losses" yaml:"carryover_losses"`
	EnableStateTax    bool         `json:"enable_state_tax" yaml:"enable_state_tax"`
}

// Section121Config holds the primary-residence exclusion inputs.
type Section121Config struct {
	Enabled                        bool        `json:"enabled" yaml:"enabled"`
	IsPrimaryResidence             bool        `json:"is_primary_residence" yaml:"is_primary_residence"`
	YearsOwned                     FlexDecimal `json:"years_owned" yaml:"years_owned"`
	YearsLived                     FlexDecimal `json:"years_lived" yaml:"years_lived"`
	HasUsedExclusionInLastTwoYears bool        `json:"has_used_exclusion_in_last_two_years" yaml:"has_used_exclusion_in_last_two_years"`
}

// DepreciationConfig holds the Section 1250 recapture inputs.
type DepreciationConfig struct {
	Enabled                bool        `json:"enabled" yaml:"enabled"`
	TotalDepreciationTaken FlexDecimal `json:"total_depreciation_taken" yaml:"total_depreciation_taken"`
	// LandValuePercentage is the non-depreciable share of the purchase price.
	LandValuePercentage FlexDecimal `json:"land_value_percentage" yaml:"land_value_percentage"`
}

func (p *Property) ID() string      { return p.AssetID }
func (p *Property) Name() string    { return p.DisplayName }
func (p *Property) Type() AssetType { return AssetTypeProperty }
func (p *Property) Enabled() bool   { return p.IsEnabled }

// PropertyResult is one year's row of a property projection. From the sale
// year forward the row is zeroed: the asset stays in the breakdown but stops
// contributing value, mortgage balance and cash flow.
type PropertyResult struct {
	Year      int             `json:"year"`
	Value     decimal.Decimal `json:"value"`
	RealValue decimal.Decimal `json:"real_value"`

	MortgageBalance decimal.Decimal `json:"mortgage_balance"`
	PrincipalPaid   decimal.Decimal `json:"principal_paid"`
	InterestPaid    decimal.Decimal `json:"interest_paid"`

	// PrincipalInterestPayment is the monthly P+I in effect during the year;
	// zero once the mortgage was already paid off at the start of the year.
	PrincipalInterestPayment decimal.Decimal `json:"principal_interest_payment"`
	// MonthlyPayment is the actual amount paid each month: the user override
	// when supplied (it persists after payoff), otherwise the P+I payment.
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	// OtherFeesPayment is the part of MonthlyPayment not applied to P+I.
	OtherFeesPayment decimal.Decimal `json:"other_fees_payment"`

	RentalIncome   decimal.Decimal `json:"rental_income"`
	RentalExpenses decimal.Decimal `json:"rental_expenses"`
	// AnnualCashFlow is signed: negative = net withdrawal from the linked
	// investment, positive = net deposit.
	AnnualCashFlow decimal.Decimal `json:"annual_cash_flow"`

	IsSaleYear bool `json:"is_sale_year"`
	PostSale   bool `json:"post_sale"`
	// SaleProceeds is the one-time net after-tax amount, set only on the
	// sale-year row. It is routed by the aggregator, never added to the
	// property's own balance.
	SaleProceeds decimal.Decimal `json:"sale_proceeds"`
}

// SaleTaxResult is the tax breakdown of a disposition.
type SaleTaxResult struct {
	FederalTax decimal.Decimal `json:"federal_tax"`
	StateTax   decimal.Decimal `json:"state_tax"`

	Section121Exclusion decimal.Decimal `json:"section_121_exclusion"`
	Section121Eligible  bool            `json:"section_121_eligible"`
	// Section121Reason explains ineligibility; empty when eligible or disabled.
	Section121Reason string `json:"section_121_reason,omitempty"`

	RecaptureAmount decimal.Decimal `json:"recapture_amount"`
	RecaptureTax    decimal.Decimal `json:"recapture_tax"`

	// TaxableGain is the combined ordinary-rate base after the exclusion,
	// recapture carve-out, other gains and carryover losses, floored at zero.
	TaxableGain        decimal.Decimal `json:"taxable_gain"`
	AppliedFederalRate decimal.Decimal `json:"applied_federal_rate"`
	StateNote          string          `json:"state_note,omitempty"`
}

// TotalTax returns federal plus state tax.
func (r SaleTaxResult) TotalTax() decimal.Decimal {
	return r.FederalTax.Add(r.StateTax)
}

// SaleOutcome is the one-time disposition computation performed at the sale year.
type SaleOutcome struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	SalePrice         decimal.Decimal `json:"sale_price"`
	SellingCosts      decimal.Decimal `json:"selling_costs"`
	MortgagePayoff    decimal.Decimal `json:"mortgage_payoff"`
	NetProceeds       decimal.Decimal `json:"net_proceeds"`
	AdjustedCostBasis decimal.Decimal `json:"adjusted_cost_basis"`
	CapitalGain       decimal.Decimal `json:"capital_gain"`

	Tax SaleTaxResult `json:"tax"`

	NetAfterTaxProceeds decimal.Decimal `json:"net_after_tax_proceeds"`
	Reinvested          bool            `json:"reinvested"`
	TargetInvestmentID  string          `json:"target_investment_id,omitempty"`
}
