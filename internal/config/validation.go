package config

import (
	"fmt"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
	"github.com/dyaboykyl/investisizer-sub001/pkg/money"
)

// Validate inspects a loaded portfolio and returns human-readable warnings.
// Warnings never block a projection run; the engine substitutes documented
// defaults or neutral values for everything flagged here.
func Validate(p *Portfolio) []string {
	var warnings []string
	settings := p.Settings.Normalized()

	investments := make(map[string]bool)
	for _, asset := range p.Assets {
		if inv, ok := asset.(*domain.Investment); ok {
			investments[inv.ID()] = true
		}
	}

	for _, asset := range p.Assets {
		prop, ok := asset.(*domain.Property)
		if !ok {
			continue
		}
		warnings = append(warnings, validateProperty(prop, settings, investments)...)
	}
	return warnings
}

func validateProperty(prop *domain.Property, settings domain.PortfolioSettings, investments map[string]bool) []string {
	var warnings []string
	in := prop.Inputs

	if !in.PurchasePrice.IsSet() || in.PurchasePrice.Decimal().IsZero() {
		warnings = append(warnings, fmt.Sprintf("property %q: purchase price is zero or missing, projection will be all zeros", prop.Name()))
	}
	if in.LinkedInvestmentID != "" && !investments[in.LinkedInvestmentID] {
		warnings = append(warnings, fmt.Sprintf("property %q: linked investment %q does not exist, cash flows will be dropped", prop.Name(), in.LinkedInvestmentID))
	}
	if in.YearsBought.Int(0) >= in.LoanTermYears.Int(30) && in.YearsBought.Int(0) > 0 {
		warnings = append(warnings, fmt.Sprintf("property %q: already owned %d years against a %d-year loan, mortgage starts paid off", prop.Name(), in.YearsBought.Int(0), in.LoanTermYears.Int(30)))
	}
	if in.Rental.Enabled {
		vacancy := in.Rental.VacancyRate.Decimal()
		if vacancy.LessThan(money.Zero) || vacancy.GreaterThan(money.Hundred) {
			warnings = append(warnings, fmt.Sprintf("property %q: vacancy rate %s%% is outside 0-100", prop.Name(), vacancy.String()))
		}
	}

	sale := in.Sale
	if sale.IsPlannedForSale {
		if sale.SaleYear < 1 || sale.SaleYear > settings.ProjectionYears {
			warnings = append(warnings, fmt.Sprintf("property %q: sale year %d is outside the projection (1-%d), the sale is ignored", prop.Name(), sale.SaleYear, settings.ProjectionYears))
		}
		if sale.SaleMonth != 0 && (sale.SaleMonth < 1 || sale.SaleMonth > 12) {
			warnings = append(warnings, fmt.Sprintf("property %q: sale month %d is invalid, using June", prop.Name(), sale.SaleMonth))
		}
		if sale.PriceMethod == domain.SalePriceCustom && !sale.CustomSalePrice.IsSet() {
			warnings = append(warnings, fmt.Sprintf("property %q: custom sale price method without a price, falling back to the projected value", prop.Name()))
		}
		if sale.ReinvestProceeds && sale.TargetInvestmentID == "" {
			warnings = append(warnings, fmt.Sprintf("property %q: reinvest proceeds is set without a target investment, proceeds leave the portfolio", prop.Name()))
		}
		if sale.ReinvestProceeds && sale.TargetInvestmentID != "" && !investments[sale.TargetInvestmentID] {
			warnings = append(warnings, fmt.Sprintf("property %q: reinvestment target %q does not exist, proceeds leave the portfolio", prop.Name(), sale.TargetInvestmentID))
		}
		if sale.Tax.EnableStateTax && sale.Tax.State == "" {
			warnings = append(warnings, fmt.Sprintf("property %q: state tax enabled without a state, state tax will be zero", prop.Name()))
		}
	}

	return warnings
}
