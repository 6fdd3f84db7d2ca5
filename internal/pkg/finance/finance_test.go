package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	// Standard annuity: 10k at 7.5% over 60 months
	payment := MonthlyPayment(10000, DefaultAnnualRate, DefaultTermMonths)
	assert.InDelta(t, 200.38, payment, 0.05)

	// Zero rate degrades to straight-line repayment
	assert.InDelta(t, 100.0, MonthlyPayment(1200, 0, 12), 1e-9)

	assert.Zero(t, MonthlyPayment(0, DefaultAnnualRate, DefaultTermMonths))
	assert.Zero(t, MonthlyPayment(-500, DefaultAnnualRate, DefaultTermMonths))
	assert.Zero(t, MonthlyPayment(10000, DefaultAnnualRate, 0))
}

func TestDebtToIncome(t *testing.T) {
	// 10k request against 60k income: roughly 200/mo over 5k/mo
	assert.InDelta(t, 0.040, DebtToIncome(10000, 60000), 0.002)

	assert.Zero(t, DebtToIncome(0, 60000))
	assert.Zero(t, DebtToIncome(-10, 60000))
	assert.True(t, math.IsInf(DebtToIncome(10000, 0), 1))
	assert.True(t, math.IsInf(DebtToIncome(10000, -5), 1))
}
