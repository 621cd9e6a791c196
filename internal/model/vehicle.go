package model

import "time"

// VehicleType categorizes an investment vehicle.
type VehicleType string

// Supported vehicle types.
const (
	VehicleETF    VehicleType = "etf"
	VehicleStock  VehicleType = "stock"
	VehicleBond   VehicleType = "bond"
	VehicleIndex  VehicleType = "index"
	VehicleCrypto VehicleType = "crypto"
)

// RiskLevel describes a vehicle's volatility band.
type RiskLevel string

// Risk levels, lowest first.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskTolerance is the user's declared appetite for volatility.
type RiskTolerance string

// Risk tolerances.
const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceModerate     RiskTolerance = "moderate"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

// ValidRiskTolerance reports whether rt is a known tolerance.
func ValidRiskTolerance(rt RiskTolerance) bool {
	switch rt {
	case ToleranceConservative, ToleranceModerate, ToleranceAggressive:
		return true
	}
	return false
}

// Sharpe ratio parameters. The risk-free rate tracks short-term treasury
// yields; the volatility floor guards the division.
const (
	RiskFreeRatePercent = 4.5
	MinVolatility       = 0.01
)

// InvestmentVehicle is a candidate destination for redirected savings.
// AnnualizedReturn and Volatility are percentages refreshed by a market-data
// collaborator; SharpeRatio is derived and must be recomputed whenever
// either changes.
type InvestmentVehicle struct {
	UpdatedAt        time.Time
	ID               string
	Name             string
	Ticker           string
	Type             VehicleType
	RiskLevel        RiskLevel
	AnnualizedReturn float64
	Volatility       float64
	SharpeRatio      float64
}

// RecomputeSharpe refreshes the derived Sharpe ratio from the current
// return and volatility figures.
func (v *InvestmentVehicle) RecomputeSharpe() {
	vol := v.Volatility
	if vol < MinVolatility {
		vol = MinVolatility
	}
	v.SharpeRatio = (v.AnnualizedReturn - RiskFreeRatePercent) / vol
}

// DefaultVehicles returns the built-in vehicle catalog, used when the
// persistence collaborator has nothing to offer. Sharpe ratios are computed
// on the way out.
func DefaultVehicles() []InvestmentVehicle {
	vehicles := []InvestmentVehicle{
		{ID: "vti", Name: "Total Stock Market ETF", Ticker: "VTI", Type: VehicleETF, RiskLevel: RiskMedium, AnnualizedReturn: 10.2, Volatility: 15.3},
		{ID: "voo", Name: "S&P 500 Index Fund", Ticker: "VOO", Type: VehicleIndex, RiskLevel: RiskMedium, AnnualizedReturn: 10.5, Volatility: 14.8},
		{ID: "bnd", Name: "Total Bond Market ETF", Ticker: "BND", Type: VehicleBond, RiskLevel: RiskLow, AnnualizedReturn: 4.1, Volatility: 5.2},
		{ID: "vtip", Name: "Inflation-Protected Bond ETF", Ticker: "VTIP", Type: VehicleBond, RiskLevel: RiskLow, AnnualizedReturn: 3.6, Volatility: 3.1},
		{ID: "qqq", Name: "Nasdaq-100 ETF", Ticker: "QQQ", Type: VehicleETF, RiskLevel: RiskHigh, AnnualizedReturn: 13.4, Volatility: 21.7},
		{ID: "vxus", Name: "International Stock ETF", Ticker: "VXUS", Type: VehicleETF, RiskLevel: RiskMedium, AnnualizedReturn: 7.8, Volatility: 16.1},
		{ID: "btc", Name: "Bitcoin", Ticker: "BTC", Type: VehicleCrypto, RiskLevel: RiskHigh, AnnualizedReturn: 28.0, Volatility: 65.0},
		{ID: "schd", Name: "Dividend Equity ETF", Ticker: "SCHD", Type: VehicleETF, RiskLevel: RiskLow, AnnualizedReturn: 6.9, Volatility: 12.4},
	}
	for i := range vehicles {
		vehicles[i].RecomputeSharpe()
	}
	return vehicles
}
