package finance

import "math"

// Demo underwriting assumptions for estimating the payment on a
// requested amount when the application carries no rate or term.
const (
	DefaultAnnualRate = 0.075
	DefaultTermMonths = 60
)

// MonthlyPayment computes the fixed annuity payment for a principal at
// the given annual rate over termMonths. A zero rate degrades to
// straight-line repayment.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(termMonths)
	}

	r := annualRate / 12
	factor := math.Pow(1+r, float64(termMonths))
	return principal * r * factor / (factor - 1)
}

// DebtToIncome estimates the ratio of the monthly payment on
// requestedAmount (at the demo rate and term) to monthly income.
// Returns +Inf when there is a requested amount but no income.
func DebtToIncome(requestedAmount, annualIncome float64) float64 {
	if requestedAmount <= 0 {
		return 0
	}
	if annualIncome <= 0 {
		return math.Inf(1)
	}

	payment := MonthlyPayment(requestedAmount, DefaultAnnualRate, DefaultTermMonths)
	return payment / (annualIncome / 12)
}
