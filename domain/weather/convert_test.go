package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertCelsiusIsIdentity(t *testing.T) {
	for _, v := range []float64{-40, 0, 17.5, 100} {
		assert.Equal(t, v, Convert(v, UnitCelsius))
	}
}

func TestConvertKnownFahrenheitValues(t *testing.T) {
	assert.InDelta(t, 32.0, Convert(0, UnitFahrenheit), 1e-9)
	assert.InDelta(t, 212.0, Convert(100, UnitFahrenheit), 1e-9)
	assert.InDelta(t, -40.0, Convert(-40, UnitFahrenheit), 1e-9)
}

func TestConvertRoundTrip(t *testing.T) {
	for _, v := range []float64{-273.15, -17.77, 0, 36.6, 55.3} {
		f := Convert(v, UnitFahrenheit)
		assert.InDelta(t, v, ToCelsius(f, UnitFahrenheit), 1e-9)
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"celsius", UnitCelsius, false},
		{"Fahrenheit", UnitFahrenheit, false},
		{"F", UnitFahrenheit, false},
		{"", UnitCelsius, false},
		{"kelvin", "", true},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}
