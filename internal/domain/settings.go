package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSettings are the portfolio-wide assumptions shared by every asset.
// Mutating them invalidates all derived results; the projectors treat a
// settings value as a read-only snapshot for the duration of one computation.
type PortfolioSettings struct {
	// ProjectionYears is the projection length in whole years, clamped to >= 1.
	ProjectionYears int `json:"projection_years" yaml:"projection_years"`
	// InflationRate is a percentage (2.5 means 2.5%).
	InflationRate decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate"`
	// StartingYear is the calendar year of projection year 0.
	StartingYear int `json:"starting_year" yaml:"starting_year"`
}

// DefaultSettings returns settings with a 10-year horizon, 2.5% inflation and
// the current calendar year as the starting year.
func DefaultSettings() PortfolioSettings {
	return PortfolioSettings{
		ProjectionYears: 10,
		InflationRate:   decimal.NewFromFloat(2.5),
		StartingYear:    time.Now().Year(),
	}
}

// Normalized returns a copy with out-of-range values clamped to usable ones.
func (s PortfolioSettings) Normalized() PortfolioSettings {
	if s.ProjectionYears < 1 {
		s.ProjectionYears = 1
	}
	if s.StartingYear <= 0 {
		s.StartingYear = time.Now().Year()
	}
	return s
}

// CalendarYear maps a projection year index (0..N) to a calendar year.
func (s PortfolioSettings) CalendarYear(year int) int {
	return s.StartingYear + year
}
