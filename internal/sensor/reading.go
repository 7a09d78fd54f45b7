package sensor

import (
	"math"

	"periph.io/x/conn/v3/physic"
)

// Reading is one converted sample. Valid is false when no device is selected
// or the sample carried no temperature; both values are then meaningless.
type Reading struct {
	Celsius    float64
	Fahrenheit float64
	Valid      bool
}

// FromMilliCelsius converts a raw w1-therm value.
func FromMilliCelsius(milli float64) Reading {
	c := milli / 1000
	return Reading{
		Celsius:    c,
		Fahrenheit: c*9/5 + 32,
		Valid:      true,
	}
}

// Temperature returns the reading as an absolute temperature. An invalid
// reading returns zero.
func (r Reading) Temperature() physic.Temperature {
	if !r.Valid {
		return 0
	}
	return physic.ZeroCelsius + physic.Temperature(math.Round(r.Celsius*1e9))*physic.NanoKelvin
}
