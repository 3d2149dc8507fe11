package money

import (
	"github.com/shopspring/decimal"
)

// Shared decimal constants. The projection math reuses these instead of
// re-allocating them in every loop iteration.
var (
	Zero    = decimal.Zero
	One     = decimal.NewFromInt(1)
	Hundred = decimal.NewFromInt(100)
	Twelve  = decimal.NewFromInt(12)
)

// FromFloat creates a decimal amount from a float64.
func FromFloat(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

// FromInt creates a decimal amount from an int64.
func FromInt(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

// Round rounds a currency amount to cents. Every per-year figure stored in a
// result row passes through this at the point of emission.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Pct converts a user-facing percentage (7 means 7%) to a rate factor (0.07).
func Pct(percentage decimal.Decimal) decimal.Decimal {
	return percentage.Div(Hundred)
}

// GrowthFactor returns (1 + rate%)^years for compounding a value forward.
// Zero or negative year counts return 1.
func GrowthFactor(ratePct decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return One
	}
	return One.Add(Pct(ratePct)).Pow(decimal.NewFromInt(int64(years)))
}

// Deflate converts a nominal amount to real (constant purchasing power) terms
// by dividing out cumulative inflation over the given number of years.
func Deflate(nominal decimal.Decimal, inflationPct decimal.Decimal, years int) decimal.Decimal {
	factor := GrowthFactor(inflationPct, years)
	if factor.IsZero() {
		return nominal
	}
	return nominal.Div(factor)
}

// Annual converts a monthly amount to annual.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(Twelve)
}

// Monthly converts an annual amount to monthly.
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(Twelve)
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Floor0 clamps a negative amount to zero.
func Floor0(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(Zero) {
		return Zero
	}
	return d
}

// Format renders an amount as a dollar string with two decimal places.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
