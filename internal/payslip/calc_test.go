package payslip_test

import (
	"testing"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsSumsAllComponents(t *testing.T) {
	totals := payslip.ComputeTotals(payslip.Amounts{
		Basic:                10000,
		HRA:                  2000,
		SpecialAllowance:     500,
		StatutoryBonus:       300,
		ArrearsAmount:        200,
		OTAmount:             150,
		ExtraHolidayPay:      100,
		AttendanceIncentive:  250,
		PerformanceIncentive: 400,
		SpecialIncentive:     100,

		ProfessionTax:   200,
		PFAmount:        1200,
		ESIC:            100,
		ArrearDeduction: 50,
		KarmaLife:       25,
	})

	assert.Equal(t, 14000.0, totals.GrossEarnings)
	assert.Equal(t, 1575.0, totals.GrossDeductions)
	assert.Equal(t, totals.GrossEarnings-totals.GrossDeductions, totals.NetPay)
}

func TestComputeTotalsZeroes(t *testing.T) {
	totals := payslip.ComputeTotals(payslip.Amounts{})
	assert.Equal(t, 0.0, totals.GrossEarnings)
	assert.Equal(t, 0.0, totals.GrossDeductions)
	assert.Equal(t, 0.0, totals.NetPay)
}

func TestComputeTotalsNegativeNetPay(t *testing.T) {
	totals := payslip.ComputeTotals(payslip.Amounts{
		Basic:    1000,
		PFAmount: 1800,
	})
	assert.Equal(t, -800.0, totals.NetPay)
}
