package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeSharpe(t *testing.T) {
	tests := []struct {
		name       string
		ret        float64
		volatility float64
		want       float64
	}{
		{name: "typical figures", ret: 10.5, volatility: 15.0, want: (10.5 - RiskFreeRatePercent) / 15.0},
		{name: "return below risk-free is negative", ret: 2.0, volatility: 5.0, want: (2.0 - RiskFreeRatePercent) / 5.0},
		{name: "zero volatility uses floor", ret: 6.5, volatility: 0, want: (6.5 - RiskFreeRatePercent) / MinVolatility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := InvestmentVehicle{AnnualizedReturn: tt.ret, Volatility: tt.volatility}
			v.RecomputeSharpe()
			assert.InDelta(t, tt.want, v.SharpeRatio, 1e-9)
		})
	}
}

func TestDefaultVehicles_SharpePopulated(t *testing.T) {
	for _, v := range DefaultVehicles() {
		assert.NotZero(t, v.SharpeRatio, "vehicle %s should have a computed Sharpe ratio", v.ID)
	}
}

func TestValidRiskTolerance(t *testing.T) {
	assert.True(t, ValidRiskTolerance(ToleranceConservative))
	assert.True(t, ValidRiskTolerance(ToleranceModerate))
	assert.True(t, ValidRiskTolerance(ToleranceAggressive))
	assert.False(t, ValidRiskTolerance(RiskTolerance("reckless")))
	assert.False(t, ValidRiskTolerance(RiskTolerance("")))
}
