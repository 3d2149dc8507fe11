package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/dyaboykyl/investisizer-sub001/pkg/money"
)

// MonthlyRate converts an annual percentage rate (6.5 means 6.5%) to a
// monthly rate factor.
func MonthlyRate(annualRatePct decimal.Decimal) decimal.Decimal {
	return money.Pct(annualRatePct).Div(money.Twelve)
}

// MonthlyPayment returns the standard fully-amortizing principal-and-interest
// payment: L*r*(1+r)^n / ((1+r)^n - 1). A non-positive loan amount or term
// yields zero rather than evaluating the formula; a zero rate degenerates to
// straight-line principal repayment.
func MonthlyPayment(loanAmount decimal.Decimal, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	if loanAmount.LessThanOrEqual(money.Zero) || termYears <= 0 {
		return money.Zero
	}
	numPayments := decimal.NewFromInt(int64(termYears) * 12)
	rate := MonthlyRate(annualRatePct)
	if rate.IsZero() {
		return money.Round(loanAmount.Div(numPayments))
	}
	factor := money.One.Add(rate).Pow(numPayments)
	payment := loanAmount.Mul(rate).Mul(factor).Div(factor.Sub(money.One))
	return money.Round(payment)
}

// AmortizeMonth applies one monthly payment against a balance and returns the
// interest portion, the principal reduction and the new balance. Principal
// reduction is min(payment - interest, balance); the balance is clamped at
// zero on payoff. A zero balance is a no-op.
func AmortizeMonth(balance, payment, monthlyRate decimal.Decimal) (interest, principal, newBalance decimal.Decimal) {
	if balance.LessThanOrEqual(money.Zero) {
		return money.Zero, money.Zero, money.Zero
	}
	interest = balance.Mul(monthlyRate)
	principal = money.Min(payment.Sub(interest), balance)
	newBalance = balance.Sub(principal)
	if newBalance.LessThan(money.Zero) {
		newBalance = money.Zero
	}
	return interest, principal, newBalance
}

// AmortizeYear runs twelve months of payments and returns the interest and
// principal paid over the year plus the ending balance.
func AmortizeYear(balance, payment, monthlyRate decimal.Decimal) (interestPaid, principalPaid, newBalance decimal.Decimal) {
	interestPaid = money.Zero
	principalPaid = money.Zero
	newBalance = balance
	for month := 0; month < 12; month++ {
		if newBalance.LessThanOrEqual(money.Zero) {
			break
		}
		var interest, principal decimal.Decimal
		interest, principal, newBalance = AmortizeMonth(newBalance, payment, monthlyRate)
		interestPaid = interestPaid.Add(interest)
		principalPaid = principalPaid.Add(principal)
	}
	return interestPaid, principalPaid, newBalance
}

// AdvanceBalance consumes the monthly amortization loop for whole years of
// history without emitting yearly rows. It models a loan originated years
// before the projection starts.
func AdvanceBalance(balance, payment, annualRatePct decimal.Decimal, years int) decimal.Decimal {
	rate := MonthlyRate(annualRatePct)
	for year := 0; year < years; year++ {
		if balance.LessThanOrEqual(money.Zero) {
			return money.Zero
		}
		_, _, balance = AmortizeYear(balance, payment, rate)
	}
	return balance
}
