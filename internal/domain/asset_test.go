package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRoundTrip(t *testing.T) {
	t.Run("investment", func(t *testing.T) {
		original := &Investment{
			AssetID:     "inv-1",
			DisplayName: "Brokerage",
			IsEnabled:   true,
			Inputs: InvestmentInputs{
				InitialAmount:                  FlexFromInt(100000),
				AnnualContribution:             FlexFromInt(12000),
				RateOfReturn:                   FlexFromFloat(7),
				InflationAdjustedContributions: true,
			},
		}
		data, err := MarshalAsset(original)
		require.NoError(t, err)

		restored, err := UnmarshalAsset(data)
		require.NoError(t, err)
		inv, ok := restored.(*Investment)
		require.True(t, ok)
		assert.Equal(t, original, inv)
	})

	t.Run("property", func(t *testing.T) {
		original := &Property{
			AssetID:     "prop-1",
			DisplayName: "Duplex",
			IsEnabled:   false,
			Inputs: PropertyInputs{
				PurchasePrice:      FlexFromInt(400000),
				InterestRate:       FlexFromFloat(6.5),
				LinkedInvestmentID: "inv-1",
				Rental: RentalConfig{
					Enabled:     true,
					MonthlyRent: FlexFromInt(2800),
					Management: &ManagementConfig{
						MonthlyManagementFeeRate: FlexFromInt(8),
					},
				},
				Sale: SaleConfig{
					IsPlannedForSale:   true,
					SaleYear:           10,
					ReinvestProceeds:   true,
					TargetInvestmentID: "inv-1",
					Tax: SaleTaxProfile{
						FilingStatus:   FilingMarriedJoint,
						State:          "CA",
						EnableStateTax: true,
					},
				},
			},
		}
		data, err := MarshalAsset(original)
		require.NoError(t, err)

		restored, err := UnmarshalAsset(data)
		require.NoError(t, err)
		prop, ok := restored.(*Property)
		require.True(t, ok)
		assert.Equal(t, original, prop)
	})
}

func TestUnmarshalAssetDefaults(t *testing.T) {
	t.Run("missing enabled flag loads as enabled", func(t *testing.T) {
		asset, err := UnmarshalAsset([]byte(`{"id":"a","name":"A","type":"investment"}`))
		require.NoError(t, err)
		assert.True(t, asset.Enabled())
	})

	t.Run("older record with missing fields loads unset", func(t *testing.T) {
		asset, err := UnmarshalAsset([]byte(
			`{"id":"p","name":"P","type":"property","inputs":{"purchase_price":"250000"}}`))
		require.NoError(t, err)
		prop, ok := asset.(*Property)
		require.True(t, ok)
		assert.Equal(t, "250000", prop.Inputs.PurchasePrice.Decimal().String())
		assert.False(t, prop.Inputs.DownPaymentPercentage.IsSet())
		assert.False(t, prop.Inputs.Sale.IsPlannedForSale)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := UnmarshalAsset([]byte(`{"id":"x","name":"X","type":"bond"}`))
		assert.Error(t, err)
	})
}
