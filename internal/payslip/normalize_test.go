package payslip_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCoercesValues(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"plain number string", "1250", 1250},
		{"decimal string", "1250.75", 1250.75},
		{"padded string", "  980.5  ", 980.5},
		{"garbage string", "N/A", 0},
		{"float64", 12000.0, 12000},
		{"float32", float32(150.5), 150.5},
		{"int", 42, 42},
		{"int64", int64(99), 99},
		{"json number", json.Number("3500.25"), 3500.25},
		{"bad json number", json.Number("x"), 0},
		{"bool is ignored", true, 0},
		{"negative string", "-500", -500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, payslip.Normalize(tc.in))
		})
	}
}

func TestNormalizeNeverNonFinite(t *testing.T) {
	for _, in := range []any{math.NaN(), math.Inf(1), math.Inf(-1), "NaN", "Inf"} {
		got := payslip.Normalize(in)
		assert.False(t, math.IsNaN(got) || math.IsInf(got, 0), "input %v produced %v", in, got)
		assert.Equal(t, 0.0, got)
	}
}
