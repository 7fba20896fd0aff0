// Package tempconv converts temperatures between Celsius, Fahrenheit and Kelvin.
//
// All conversions round to two decimals. Fahrenheit↔Kelvin goes through
// Celsius and rounds at each step, so results match the two-step formulas.
package tempconv

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownUnit is returned for any unit code outside C, F, K.
var ErrUnknownUnit = errors.New("invalid temperature unit, use C, F, or K")

// Unit is a temperature scale code.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"
)

// ParseUnit accepts c/f/k in any case, with an optional degree sign.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("°", "", "º", "").Replace(s)
	switch u := Unit(s); u {
	case Celsius, Fahrenheit, Kelvin:
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func CelsiusToFahrenheit(c float64) float64 { return round2(c*9/5 + 32) }
func FahrenheitToCelsius(f float64) float64 { return round2((f - 32) * 5 / 9) }
func CelsiusToKelvin(c float64) float64     { return round2(c + 273.15) }
func KelvinToCelsius(k float64) float64     { return round2(k - 273.15) }

func FahrenheitToKelvin(f float64) float64 {
	return round2(CelsiusToKelvin(FahrenheitToCelsius(f)))
}

func KelvinToFahrenheit(k float64) float64 {
	return round2(CelsiusToFahrenheit(KelvinToCelsius(k)))
}

// Convert converts value between units. Same-unit conversions return value unchanged.
func Convert(value float64, from, to Unit) (float64, error) {
	if _, err := ParseUnit(string(from)); err != nil {
		return 0, err
	}
	if _, err := ParseUnit(string(to)); err != nil {
		return 0, err
	}
	switch {
	case from == to:
		return value, nil
	case from == Celsius && to == Fahrenheit:
		return CelsiusToFahrenheit(value), nil
	case from == Celsius && to == Kelvin:
		return CelsiusToKelvin(value), nil
	case from == Fahrenheit && to == Celsius:
		return FahrenheitToCelsius(value), nil
	case from == Fahrenheit && to == Kelvin:
		return FahrenheitToKelvin(value), nil
	case from == Kelvin && to == Celsius:
		return KelvinToCelsius(value), nil
	default: // Kelvin → Fahrenheit
		return KelvinToFahrenheit(value), nil
	}
}

// Reference is a well-known temperature expressed in all three units.
type Reference struct {
	Name       string
	Celsius    float64
	Fahrenheit float64
	Kelvin     float64
}

var references = []Reference{
	{"Absolute Zero", -273.15, -459.67, 0},
	{"Freezing Point of Water", 0, 32, 273.15},
	{"Room Temperature", 20, 68, 293.15},
	{"Human Body Temperature", 37, 98.6, 310.15},
	{"Boiling Point of Water", 100, 212, 373.15},
}

// References returns the common temperature table, coldest first.
func References() []Reference {
	out := make([]Reference, len(references))
	copy(out, references)
	return out
}
