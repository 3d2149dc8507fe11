package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyaboykyl/investisizer-sub001/internal/domain"
)

func TestPropertyValueGrowthModels(t *testing.T) {
	projector := NewPropertyProjector()

	t.Run("from purchase price counts owned years", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(100000),
			DownPaymentPercentage: domain.FlexFromInt(100),
			PropertyGrowthRate:    domain.FlexFromInt(10),
			YearsBought:           domain.FlexFromInt(2),
		}
		projection := projector.Project(inputs, testSettings(2))

		require.Len(t, projection.Rows, 3)
		// Year 0 is already two years of appreciation in.
		assert.Equal(t, "121000.00", projection.Rows[0].Value.StringFixed(2))
		assert.Equal(t, "133100.00", projection.Rows[1].Value.StringFixed(2))
		assert.Equal(t, "146410.00", projection.Rows[2].Value.StringFixed(2))
	})

	t.Run("from current estimate ignores owned years", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(100000),
			CurrentEstimatedValue: domain.FlexFromInt(200000),
			DownPaymentPercentage: domain.FlexFromInt(100),
			PropertyGrowthRate:    domain.FlexFromInt(10),
			PropertyGrowthModel:   domain.GrowthFromCurrentEstimate,
			YearsBought:           domain.FlexFromInt(5),
		}
		projection := projector.Project(inputs, testSettings(1))

		require.Len(t, projection.Rows, 2)
		assert.Equal(t, "200000.00", projection.Rows[0].Value.StringFixed(2))
		assert.Equal(t, "220000.00", projection.Rows[1].Value.StringFixed(2))
	})

	t.Run("missing estimate falls back to purchase price", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(100000),
			DownPaymentPercentage: domain.FlexFromInt(100),
			PropertyGrowthRate:    domain.FlexFromInt(10),
			PropertyGrowthModel:   domain.GrowthFromCurrentEstimate,
		}
		projection := projector.Project(inputs, testSettings(1))
		assert.Equal(t, "110000.00", projection.Rows[1].Value.StringFixed(2))
	})
}

func TestPropertyMortgageAmortization(t *testing.T) {
	projector := NewPropertyProjector()

	t.Run("default down payment is twenty percent", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice: domain.FlexFromInt(100000),
			LoanTermYears: domain.FlexFromInt(10),
		}
		projection := projector.Project(inputs, testSettings(1))
		assert.Equal(t, "80000.00", projection.Rows[0].MortgageBalance.StringFixed(2))
	})

	t.Run("zero rate amortizes straight line", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(120000),
			DownPaymentPercentage: domain.FlexFromInt(0),
			LoanTermYears:         domain.FlexFromInt(10),
		}
		projection := projector.Project(inputs, testSettings(2))

		r1 := projection.Rows[1]
		assert.Equal(t, "1000.00", r1.MonthlyPayment.StringFixed(2))
		assert.Equal(t, "12000.00", r1.PrincipalPaid.StringFixed(2))
		assert.Equal(t, "0.00", r1.InterestPaid.StringFixed(2))
		assert.Equal(t, "108000.00", r1.MortgageBalance.StringFixed(2))
		assert.Equal(t, "96000.00", projection.Rows[2].MortgageBalance.StringFixed(2))
	})

	t.Run("payment override persists after payoff", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(12000),
			DownPaymentPercentage: domain.FlexFromInt(0),
			LoanTermYears:         domain.FlexFromInt(1),
			MonthlyPayment:        domain.FlexFromInt(1500),
		}
		projection := projector.Project(inputs, testSettings(2))

		// Year 1: loan still active, 1000 of the override is P+I.
		r1 := projection.Rows[1]
		assert.Equal(t, "1000.00", r1.PrincipalInterestPayment.StringFixed(2))
		assert.Equal(t, "1500.00", r1.MonthlyPayment.StringFixed(2))
		assert.Equal(t, "500.00", r1.OtherFeesPayment.StringFixed(2))
		assert.True(t, r1.MortgageBalance.IsZero())

		// Year 2: paid off, the override keeps being paid in full.
		r2 := projection.Rows[2]
		assert.True(t, r2.PrincipalInterestPayment.IsZero())
		assert.Equal(t, "1500.00", r2.MonthlyPayment.StringFixed(2))
		assert.Equal(t, "1500.00", r2.OtherFeesPayment.StringFixed(2))
		assert.Equal(t, "-18000.00", r2.AnnualCashFlow.StringFixed(2))
	})
}

func TestPropertyRentalCashFlow(t *testing.T) {
	projector := NewPropertyProjector()
	inputs := domain.PropertyInputs{
		DownPaymentPercentage: domain.FlexFromInt(100),
		Rental: domain.RentalConfig{
			Enabled:           true,
			MonthlyRent:       domain.FlexFromInt(1000),
			VacancyRate:       domain.FlexFromInt(10),
			AnnualExpenses:    domain.FlexFromInt(1200),
			ExpenseGrowthRate: domain.FlexFromInt(0),
			Management: &domain.ManagementConfig{
				ListingFeeRate:           domain.FlexFromInt(100),
				MonthlyManagementFeeRate: domain.FlexFromInt(10),
			},
		},
	}
	projection := projector.Project(inputs, testSettings(1))

	r1 := projection.Rows[1]
	// 1000 * 12 * 90% occupancy.
	assert.Equal(t, "10800.00", r1.RentalIncome.StringFixed(2))
	// 1200 base + 10% of collected rent + one gross month listing fee.
	assert.Equal(t, "3280.00", r1.RentalExpenses.StringFixed(2))
	assert.Equal(t, "7520.00", r1.AnnualCashFlow.StringFixed(2))
}

func TestPropertyRentGrowth(t *testing.T) {
	projector := NewPropertyProjector()
	inputs := domain.PropertyInputs{
		DownPaymentPercentage: domain.FlexFromInt(100),
		Rental: domain.RentalConfig{
			Enabled:        true,
			MonthlyRent:    domain.FlexFromInt(1000),
			RentGrowthRate: domain.FlexFromInt(10),
		},
	}
	projection := projector.Project(inputs, testSettings(2))

	assert.Equal(t, "13200.00", projection.Rows[1].RentalIncome.StringFixed(2)) // 1100 * 12
	assert.Equal(t, "14520.00", projection.Rows[2].RentalIncome.StringFixed(2)) // 1210 * 12
}

func TestPropertySaleZeroesLaterRows(t *testing.T) {
	projector := NewPropertyProjector()
	inputs := domain.PropertyInputs{
		PurchasePrice:         domain.FlexFromInt(100000),
		DownPaymentPercentage: domain.FlexFromInt(100),
		Sale: domain.SaleConfig{
			IsPlannedForSale: true,
			SaleYear:         3,
		},
	}
	projection := projector.Project(inputs, testSettings(5))

	require.Len(t, projection.Rows, 6)
	require.NotNil(t, projection.Sale)

	saleRow := projection.Rows[3]
	assert.True(t, saleRow.IsSaleYear)
	assert.True(t, saleRow.Value.IsZero())
	assert.True(t, saleRow.MortgageBalance.IsZero())
	assert.Equal(t, "93000.00", saleRow.SaleProceeds.StringFixed(2)) // 100000 less 7% costs

	for _, row := range projection.Rows[4:] {
		assert.True(t, row.PostSale)
		assert.True(t, row.Value.IsZero())
		assert.True(t, row.AnnualCashFlow.IsZero())
		assert.True(t, row.SaleProceeds.IsZero())
	}
}

func TestPropertyDisposition(t *testing.T) {
	projector := NewPropertyProjector()

	t.Run("custom price with basis adjustments", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(100000),
			DownPaymentPercentage: domain.FlexFromInt(100),
			Sale: domain.SaleConfig{
				IsPlannedForSale:       true,
				SaleYear:               1,
				PriceMethod:            domain.SalePriceCustom,
				CustomSalePrice:        domain.FlexFromInt(150000),
				SellingCostsPercentage: domain.FlexFromInt(0),
				CapitalImprovements:    domain.FlexFromInt(20000),
				OriginalBuyingCosts:    domain.FlexFromInt(5000),
			},
		}
		projection := projector.Project(inputs, testSettings(1))

		sale := projection.Sale
		require.NotNil(t, sale)
		assert.Equal(t, "150000.00", sale.SalePrice.StringFixed(2))
		assert.Equal(t, "125000.00", sale.AdjustedCostBasis.StringFixed(2))
		assert.Equal(t, "25000.00", sale.CapitalGain.StringFixed(2))
		// 25000 of gain on zero other income stays in the 0% band.
		assert.True(t, sale.Tax.FederalTax.IsZero())
		assert.Equal(t, "150000.00", sale.NetAfterTaxProceeds.StringFixed(2))
		assert.Equal(t, 6, sale.Month) // defaulted
	})

	t.Run("underwater sale yields negative proceeds", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(100000),
			DownPaymentPercentage: domain.FlexFromInt(0),
			LoanTermYears:         domain.FlexFromInt(30),
			Sale: domain.SaleConfig{
				IsPlannedForSale:       true,
				SaleYear:               1,
				PriceMethod:            domain.SalePriceCustom,
				CustomSalePrice:        domain.FlexFromInt(50000),
				SellingCostsPercentage: domain.FlexFromInt(0),
			},
		}
		projection := projector.Project(inputs, testSettings(1))

		sale := projection.Sale
		require.NotNil(t, sale)
		assert.True(t, sale.NetProceeds.IsNegative())
		assert.Equal(t, "-50000.00", sale.CapitalGain.StringFixed(2))
		assert.True(t, sale.Tax.TotalTax().IsZero())
		assert.True(t, sale.NetAfterTaxProceeds.IsNegative())
	})

	t.Run("depreciation estimated when not supplied", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(275000),
			DownPaymentPercentage: domain.FlexFromInt(100),
			Sale: domain.SaleConfig{
				IsPlannedForSale:       true,
				SaleYear:               2,
				PriceMethod:            domain.SalePriceCustom,
				CustomSalePrice:        domain.FlexFromInt(400000),
				SellingCostsPercentage: domain.FlexFromInt(0),
				Depreciation: domain.DepreciationConfig{
					Enabled:             true,
					LandValuePercentage: domain.FlexFromInt(0),
				},
			},
		}
		projection := projector.Project(inputs, testSettings(2))

		sale := projection.Sale
		require.NotNil(t, sale)
		// 275000 building over 27.5 years is 10000/year, held 2 years.
		assert.Equal(t, "20000.00", sale.Tax.RecaptureAmount.StringFixed(2))
		assert.Equal(t, "5000.00", sale.Tax.RecaptureTax.StringFixed(2))
	})

	t.Run("sale year outside the projection is ignored", func(t *testing.T) {
		inputs := domain.PropertyInputs{
			PurchasePrice:         domain.FlexFromInt(100000),
			DownPaymentPercentage: domain.FlexFromInt(100),
			Sale: domain.SaleConfig{
				IsPlannedForSale: true,
				SaleYear:         10,
			},
		}
		projection := projector.Project(inputs, testSettings(5))

		assert.Nil(t, projection.Sale)
		assert.False(t, projection.FinalRow().PostSale)
		assert.Equal(t, "100000.00", projection.FinalRow().Value.StringFixed(2))
	})
}

func TestPropertyProjectionIsDeterministic(t *testing.T) {
	projector := NewPropertyProjector()
	inputs := domain.PropertyInputs{
		PurchasePrice:      domain.FlexFromInt(400000),
		InterestRate:       domain.FlexFromFloat(6.5),
		PropertyGrowthRate: domain.FlexFromFloat(3.5),
		Rental: domain.RentalConfig{
			Enabled:     true,
			MonthlyRent: domain.FlexFromInt(2500),
		},
	}
	first := projector.Project(inputs, testSettings(10))
	second := projector.Project(inputs, testSettings(10))
	assert.Equal(t, first.Rows, second.Rows)
}
