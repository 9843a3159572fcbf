package payback

// Conversion factors used by every calculator. They are fixed and not exposed
// through configuration.
const (
	// EmissionFactorKgPerKWh is kg CO2 emitted per kWh of grid electricity.
	EmissionFactorKgPerKWh = 0.0385

	// KWhPerCubicMeterWater is the energy embedded in treating and pumping 1 m³ of water.
	KWhPerCubicMeterWater = 0.67

	// CO2PerTreePerYearKg is kg CO2 absorbed by one tree in a year.
	CO2PerTreePerYearKg = 15.6
)

// Unit conversion constants.
const (
	DaysPerYear         = 365
	LitersPerCubicMeter = 1000.0
	WattsPerKilowatt    = 1000.0
)

// Display precision of each metric, in decimal places.
const (
	PaybackDecimals = 1
	CO2Decimals     = 0
	SavingsDecimals = 2
	VolumeDecimals  = 2
)
