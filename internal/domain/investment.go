package domain

import (
	"github.com/shopspring/decimal"
)

// Investment is a liquid, compounding asset.
type Investment struct {
	AssetID     string           `json:"id" yaml:"id"`
	DisplayName string           `json:"name" yaml:"name"`
	IsEnabled   bool             `json:"enabled" yaml:"enabled"`
	Inputs      InvestmentInputs `json:"inputs" yaml:"inputs"`
}

// InvestmentInputs are the user-supplied assumptions for one investment.
// Contributions may be negative (a standing withdrawal).
type InvestmentInputs struct {
	InitialAmount      FlexDecimal `json:"initial_amount" yaml:"initial_amount"`
	AnnualContribution FlexDecimal `json:"annual_contribution" yaml:"annual_contribution"`
	// RateOfReturn is a percentage (7 means 7%).
	RateOfReturn FlexDecimal `json:"rate_of_return" yaml:"rate_of_return"`
	// InflationAdjustedContributions grows each year's contribution by the
	// portfolio inflation rate before it is added.
	InflationAdjustedContributions bool `json:"inflation_adjusted_contributions" yaml:"inflation_adjusted_contributions"`
}

func (i *Investment) ID() string      { return i.AssetID }
func (i *Investment) Name() string    { return i.DisplayName }
func (i *Investment) Type() AssetType { return AssetTypeInvestment }
func (i *Investment) Enabled() bool   { return i.IsEnabled }

// InvestmentResult is one year's row of an investment projection.
// AnnualContribution and PropertyCashFlow are always reported separately;
// TotalEarnings is the growth-only gain, excluding any property cash flow.
type InvestmentResult struct {
	Year               int             `json:"year"`
	Balance            decimal.Decimal `json:"balance"`
	RealBalance        decimal.Decimal `json:"real_balance"`
	AnnualContribution decimal.Decimal `json:"annual_contribution"`
	PropertyCashFlow   decimal.Decimal `json:"property_cash_flow"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
	YearlyGain         decimal.Decimal `json:"yearly_gain"`
}
