package domain

// baselineWristCelsius is the nominal skin temperature the delta is relative to.
const baselineWristCelsius = 36.5

// FahrenheitDelta converts a Celsius delta to a Fahrenheit delta.
func FahrenheitDelta(deltaC float64) float64 {
	return deltaC * 9 / 5
}

// AbsoluteFahrenheit converts a Celsius delta to an absolute Fahrenheit reading.
func AbsoluteFahrenheit(deltaC float64) float64 {
	return (baselineWristCelsius+deltaC)*9/5 + 32
}
