package domain

import (
	"github.com/shopspring/decimal"
)

// CombinedResult is one year's portfolio-level row, summed over enabled
// assets from their already-rounded per-year figures. Property cash flows are
// not added to TotalAnnualContribution: they already appear inside the linked
// investments' balances.
type CombinedResult struct {
	Year         int `json:"year"`
	CalendarYear int `json:"calendar_year"`

	TotalBalance            decimal.Decimal `json:"total_balance"`
	RealTotalBalance        decimal.Decimal `json:"real_total_balance"`
	TotalInvestmentBalance  decimal.Decimal `json:"total_investment_balance"`
	TotalPropertyValue      decimal.Decimal `json:"total_property_value"`
	TotalPropertyEquity     decimal.Decimal `json:"total_property_equity"`
	TotalMortgageBalance    decimal.Decimal `json:"total_mortgage_balance"`
	TotalAnnualContribution decimal.Decimal `json:"total_annual_contribution"`

	AssetBreakdown []AssetBreakdownEntry `json:"asset_breakdown"`
}

// AssetBreakdownEntry is one asset's slice of a combined row. Sold properties
// stay in the list with zeroed figures; they are never removed.
type AssetBreakdownEntry struct {
	AssetID   string    `json:"asset_id"`
	AssetName string    `json:"asset_name"`
	AssetType AssetType `json:"asset_type"`

	Balance decimal.Decimal `json:"balance"`

	// Property detail; zero for investments and for sold properties.
	PropertyValue   decimal.Decimal `json:"property_value,omitempty"`
	MortgageBalance decimal.Decimal `json:"mortgage_balance,omitempty"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment,omitempty"`
}
