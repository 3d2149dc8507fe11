package config

import (
	"fmt"
	"os"
)

const exampleYAML = `# Example portfolio for investisizer.
# Amounts are dollars, rates are annual percentages.
settings:
  projection_years: 15
  inflation_rate: "2.5"
  starting_year: 2026

assets:
  - id: brokerage
    name: "Taxable Brokerage"
    type: investment
    inputs:
      initial_amount: "100000"
      annual_contribution: "12000"
      rate_of_return: "7"
      inflation_adjusted_contributions: true

  - id: rental-duplex
    name: "Duplex on 5th"
    type: property
    inputs:
      purchase_price: "400000"
      current_estimated_value: "450000"
      down_payment_percentage: "25"
      interest_rate: "6.5"
      loan_term_years: "30"
      property_growth_rate: "3.5"
      property_growth_model: from_purchase_price
      years_bought: "2"
      linked_investment_id: brokerage
      rental:
        enabled: true
        monthly_rent: "2800"
        rent_growth_rate: "3"
        vacancy_rate: "5"
        annual_expenses: "6000"
        expense_growth_rate: "3"
        maintenance_rate: "1"
        management:
          listing_fee_rate: "100"
          monthly_management_fee_rate: "8"
      sale:
        is_planned_for_sale: true
        sale_year: 10
        sale_month: 6
        price_method: projected
        selling_costs_percentage: "7"
        capital_improvements: "25000"
        original_buying_costs: "8000"
        reinvest_proceeds: true
        target_investment_id: brokerage
        tax:
          filing_status: married_joint
          annual_income: "150000"
          state: CA
          enable_state_tax: true
        depreciation:
          enabled: true
          total_depreciation_taken: "40000"
          land_value_percentage: "20"
`

// CreateExampleConfiguration writes a runnable example portfolio to filename.
func CreateExampleConfiguration(filename string) error {
	if err := os.WriteFile(filename, []byte(exampleYAML), 0644); err != nil {
		return fmt.Errorf("failed to write example configuration: %w", err)
	}
	return nil
}
