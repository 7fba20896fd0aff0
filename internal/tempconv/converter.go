package tempconv

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// HistoryLimit is how many entries History returns.
const HistoryLimit = 10

// Entry is one logged conversion.
type Entry struct {
	Time   time.Time
	Value  float64
	From   Unit
	To     Unit
	Result float64
}

// Converter wraps Convert with an in-memory conversion history.
type Converter struct {
	history []Entry
	now     func() time.Time
}

// NewConverter returns a Converter with an empty history.
func NewConverter() *Converter {
	return &Converter{now: time.Now}
}

// Convert parses the unit codes, converts, and logs cross-unit conversions.
func (c *Converter) Convert(value float64, from, to string) (float64, Unit, Unit, error) {
	fu, err := ParseUnit(from)
	if err != nil {
		return 0, "", "", err
	}
	tu, err := ParseUnit(to)
	if err != nil {
		return 0, "", "", err
	}
	res, err := Convert(value, fu, tu)
	if err != nil {
		return 0, "", "", err
	}
	if fu != tu {
		c.history = append(c.history, Entry{Time: c.now(), Value: value, From: fu, To: tu, Result: res})
	}
	return res, fu, tu, nil
}

// History returns up to the last HistoryLimit conversions, oldest first.
func (c *Converter) History() []Entry {
	start := 0
	if len(c.history) > HistoryLimit {
		start = len(c.history) - HistoryLimit
	}
	out := make([]Entry, len(c.history)-start)
	copy(out, c.history[start:])
	return out
}

// ClearHistory drops all logged conversions.
func (c *Converter) ClearHistory() { c.history = c.history[:0] }

// Analysis is a temperature in every unit plus a descriptive context.
type Analysis struct {
	Value      float64
	Unit       Unit
	Celsius    float64
	Fahrenheit float64
	Kelvin     float64
	Context    string
}

// Analyze expresses value in all units and classifies it by its Celsius value.
func Analyze(value float64, unit string) (Analysis, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Analysis{}, err
	}
	a := Analysis{Value: value, Unit: u}
	switch u {
	case Celsius:
		a.Celsius, a.Fahrenheit, a.Kelvin = value, CelsiusToFahrenheit(value), CelsiusToKelvin(value)
	case Fahrenheit:
		a.Celsius, a.Fahrenheit, a.Kelvin = FahrenheitToCelsius(value), value, FahrenheitToKelvin(value)
	case Kelvin:
		a.Celsius, a.Fahrenheit, a.Kelvin = KelvinToCelsius(value), KelvinToFahrenheit(value), value
	}
	a.Context = describe(a.Celsius)
	return a, nil
}

// describe keeps the legacy branch order: 25 < c < 37 falls through to "very hot".
func describe(c float64) string {
	switch {
	case c < -273.15:
		return "Below absolute zero (theoretically impossible)"
	case c == -273.15:
		return "Absolute zero - coldest possible temperature"
	case c < 0:
		return "Below freezing point of water"
	case c == 0:
		return "Freezing point of water"
	case c < 20:
		return "Cold weather"
	case c <= 25:
		return "Comfortable room temperature"
	case c == 37:
		return "Normal human body temperature"
	case c > 37 && c < 100:
		return "Hot"
	case c == 100:
		return "Boiling point of water"
	default:
		return "Very hot!"
	}
}

// Query is a parsed quick conversion request.
type Query struct {
	Value float64
	From  string
	To    string
}

// ParseQuery understands "25 C to F", "25 C F", "100c f" and "-40°F C".
// ok is false when the input does not have that shape; a bad number is
// reported through err.
func ParseQuery(input string) (q Query, ok bool, err error) {
	parts := strings.Fields(input)
	if len(parts) < 2 {
		return Query{}, false, nil
	}

	num, suffix := splitNumber(parts[0])
	from := suffix
	if from == "" {
		if len(parts) < 3 {
			return Query{}, false, nil
		}
		from = parts[1]
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Query{}, true, err
	}
	return Query{Value: v, From: unitLetter(from), To: unitLetter(parts[len(parts)-1])}, true, nil
}

// splitNumber separates a leading number from trailing unit letters ("100c").
// A token that already parses as a float ("1e3", "-40") is never split.
func splitNumber(tok string) (num, suffix string) {
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return tok, ""
	}
	for i, r := range tok {
		if unicode.IsLetter(r) || r == '°' || r == 'º' {
			if i == 0 {
				return tok, ""
			}
			return tok[:i], tok[i:]
		}
	}
	return tok, ""
}

// unitLetter strips degree signs and, for mixed tokens, keeps the first letter.
func unitLetter(tok string) string {
	tok = strings.ToUpper(strings.NewReplacer("°", "", "º", "").Replace(tok))
	if strings.IndexFunc(tok, func(r rune) bool { return !unicode.IsLetter(r) }) < 0 {
		return tok
	}
	if i := strings.IndexFunc(tok, unicode.IsLetter); i >= 0 {
		_, size := utf8.DecodeRuneInString(tok[i:])
		return tok[i : i+size]
	}
	return tok
}
