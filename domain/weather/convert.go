package weather

// Convert maps a Celsius value to the requested display unit. Pure and
// total; Celsius is the identity.
func Convert(celsius float64, unit Unit) float64 {
	if unit == UnitFahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// ToCelsius inverts Convert for a value expressed in the given unit.
func ToCelsius(value float64, unit Unit) float64 {
	if unit == UnitFahrenheit {
		return (value - 32) * 5 / 9
	}
	return value
}
