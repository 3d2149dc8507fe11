package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, "1438.92", Round(decimal.NewFromFloat(1438.9215)).String())
	assert.Equal(t, "-0.5", Round(decimal.NewFromFloat(-0.499)).String())
}

func TestPct(t *testing.T) {
	assert.Equal(t, "0.07", Pct(decimal.NewFromInt(7)).String())
	assert.Equal(t, "0.005", Pct(decimal.NewFromFloat(0.5)).String())
}

func TestGrowthFactor(t *testing.T) {
	assert.Equal(t, "1.21", GrowthFactor(decimal.NewFromInt(10), 2).String())
	assert.Equal(t, "1", GrowthFactor(decimal.NewFromInt(10), 0).String())
	assert.Equal(t, "1", GrowthFactor(decimal.NewFromInt(10), -3).String())
}

func TestDeflate(t *testing.T) {
	real := Deflate(decimal.NewFromInt(121), decimal.NewFromInt(10), 2)
	assert.Equal(t, "100.00", real.StringFixed(2))
}

func TestAnnualMonthly(t *testing.T) {
	assert.Equal(t, "12000", Annual(decimal.NewFromInt(1000)).String())
	assert.Equal(t, "1000.00", Monthly(decimal.NewFromInt(12000)).StringFixed(2))
}

func TestMinMaxFloor(t *testing.T) {
	a, b := decimal.NewFromInt(3), decimal.NewFromInt(7)
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Floor0(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, Floor0(b).Equal(b))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", Format(decimal.NewFromFloat(1234.5)))
}
