package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/numguess/internal/tempconv"
)

const temperatureHelp = `TEMPERATURE CONVERTER HELP
-----------------------------

CONVERSION FORMULAS:
- Celsius to Fahrenheit: (°C × 9/5) + 32
- Fahrenheit to Celsius: (°F - 32) × 5/9
- Celsius to Kelvin: °C + 273.15
- Kelvin to Celsius: K - 273.15

ABSOLUTE ZERO:
- Celsius: -273.15°C
- Fahrenheit: -459.67°F
- Kelvin: 0K

COMMON TEMPERATURES:
- Water freezes: 0°C, 32°F, 273.15K
- Human body: 37°C, 98.6°F, 310.15K
- Water boils: 100°C, 212°F, 373.15K

USAGE:
Interactive Mode: numguess temp
Command Line: numguess temp <value> <from> <to>
Example: numguess temp 25 C F`

// temperature mode choices.
const (
	tempModeInteractive = "1"
	tempModeQuick       = "2"
	tempModeHelp        = "3"
)

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// RunTemperature prompts for a converter mode and runs it.
func (c *Console) RunTemperature(conv *tempconv.Converter) error {
	c.println("Temperature Converter")
	c.println(rule("=", 30))
	c.println("Choose mode:")
	c.println("1. Interactive Menu Mode")
	c.println("2. Quick Conversion Tool")
	c.println("3. Command Line Help")

	choice, err := c.readLine("Enter choice (1-3): ")
	if err != nil && !isEOF(err) {
		return err
	}
	switch strings.TrimSpace(choice) {
	case tempModeInteractive:
		return c.TemperatureMenu(conv)
	case tempModeQuick:
		return c.QuickConvert(conv)
	case tempModeHelp:
		c.println(temperatureHelp)
		return nil
	default:
		c.println("Starting Interactive Mode...")
		return c.TemperatureMenu(conv)
	}
}

// ConvertOnce performs a single argument-mode conversion.
func (c *Console) ConvertOnce(conv *tempconv.Converter, args []string) error {
	if len(args) < 3 {
		c.println("Usage: numguess temp <value> <from_unit> <to_unit>")
		c.println("Example: numguess temp 100 C F")
		c.println("Units: C (Celsius), F (Fahrenheit), K (Kelvin)")
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		c.printf("Error: could not convert string to float: %q\n", args[0])
		return nil
	}
	res, from, to, err := conv.Convert(v, args[1], args[2])
	if err != nil {
		c.printf("Error: %v\n", err)
		return nil
	}
	c.printf("%s°%s = %s°%s\n", num(v), from, num(res), to)
	return nil
}

// ConversionExamples prints a fixed set of reference conversions.
func (c *Console) ConversionExamples(conv *tempconv.Converter) {
	examples := []struct {
		value    float64
		from, to string
	}{
		{0, "C", "F"},
		{100, "C", "F"},
		{32, "F", "C"},
		{212, "F", "C"},
		{0, "C", "K"},
		{-273.15, "C", "K"},
	}
	c.println("\nConversion Examples:")
	c.println(rule("-", 40))
	for _, e := range examples {
		res, from, to, err := conv.Convert(e.value, e.from, e.to)
		if err != nil {
			continue
		}
		c.printf("%s°%s = %s°%s\n", num(e.value), from, num(res), to)
	}
}

// TemperatureMenu runs the numbered converter menu until 0 or end of input.
func (c *Console) TemperatureMenu(conv *tempconv.Converter) error {
	for {
		c.println("\n" + rule("=", 50))
		c.println("        TEMPERATURE CONVERTER")
		c.println(rule("=", 50))
		c.println("1. Convert Temperature")
		c.println("2. Common Temperature References")
		c.println("3. Temperature Analysis")
		c.println("4. Conversion History")
		c.println("5. Clear History")
		c.println("6. Help")
		c.println("0. Exit")
		c.println(rule("-", 50))

		choice, err := c.readLine("Enter your choice (0-6): ")
		if err != nil {
			return c.goodbyeOn(err)
		}
		switch strings.TrimSpace(choice) {
		case "0":
			c.println("Goodbye!")
			return nil
		case "1":
			err = c.convertPrompt(conv)
		case "2":
			c.showReferences()
		case "3":
			err = c.analysisPrompt()
		case "4":
			c.showHistory(conv)
		case "5":
			conv.ClearHistory()
			c.println("Conversion history cleared!")
		case "6":
			c.println(temperatureHelp)
		default:
			c.println("Invalid choice! Please try again.")
		}
		if err != nil {
			if isEOF(err) {
				return c.goodbyeOn(err)
			}
			c.printf("Input error: %v\n", err)
		}
	}
}

func (c *Console) goodbyeOn(err error) error {
	if isEOF(err) {
		c.println("\nGoodbye!")
		return nil
	}
	return err
}

func (c *Console) readFloat(prompt string) (float64, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("could not convert string to float: %q", strings.TrimSpace(line))
	}
	return v, nil
}

func (c *Console) convertPrompt(conv *tempconv.Converter) error {
	c.println("\nConvert Temperature")
	c.println("Available units: C (Celsius), F (Fahrenheit), K (Kelvin)")
	v, err := c.readFloat("Enter temperature value: ")
	if err != nil {
		return err
	}
	from, err := c.readLine("Enter from unit (C/F/K): ")
	if err != nil {
		return err
	}
	to, err := c.readLine("Enter to unit (C/F/K): ")
	if err != nil {
		return err
	}
	res, fu, tu, err := conv.Convert(v, from, to)
	if err != nil {
		return err
	}
	c.printf("\n%s°%s = %s°%s\n", num(v), fu, num(res), tu)
	return nil
}

func (c *Console) analysisPrompt() error {
	c.println("\nTemperature Analysis")
	v, err := c.readFloat("Enter temperature value: ")
	if err != nil {
		return err
	}
	unit, err := c.readLine("Enter unit (C/F/K): ")
	if err != nil {
		return err
	}
	a, err := tempconv.Analyze(v, unit)
	if err != nil {
		return err
	}
	c.printf("\nTemperature Analysis for %s°%s:\n", num(a.Value), a.Unit)
	c.printf("   Celsius: %s°C\n", num(a.Celsius))
	c.printf("   Fahrenheit: %s°F\n", num(a.Fahrenheit))
	c.printf("   Kelvin: %sK\n", num(a.Kelvin))
	c.println("\nContext:")
	c.printf("   %s\n", a.Context)
	return nil
}

func (c *Console) showReferences() {
	c.println("\n" + rule("=", 70))
	c.println("COMMON TEMPERATURE REFERENCES")
	c.println(rule("=", 70))
	c.printf("%-25s %-10s %-12s %-10s\n", "Description", "Celsius", "Fahrenheit", "Kelvin")
	c.println(rule("-", 70))
	for _, r := range tempconv.References() {
		c.printf("%-25s %-10s %-12s %-10s\n", r.Name, num(r.Celsius), num(r.Fahrenheit), num(r.Kelvin))
	}
}

func (c *Console) showHistory(conv *tempconv.Converter) {
	h := conv.History()
	if len(h) == 0 {
		c.println("\nNo conversions recorded yet.")
		return
	}
	c.println("\n" + rule("=", 60))
	c.println("CONVERSION HISTORY")
	c.println(rule("=", 60))
	for i, e := range h {
		c.printf("%d. %s\n", i+1, e.Time.Format("2006-01-02 15:04:05"))
		c.printf("   %s°%s -> %s°%s (%s -> %s)\n\n", num(e.Value), e.From, num(e.Result), e.To, e.From, e.To)
	}
}

// QuickConvert reads free-text conversions such as "25 C to F" until quit.
func (c *Console) QuickConvert(conv *tempconv.Converter) error {
	c.println("Quick Temperature Converter")
	c.println("Enter temperatures like: '25 C to F' or '100c f'")
	c.println("Type 'quit' to exit, 'help' for help")

	for {
		line, err := c.readLine("\n> Enter conversion: ")
		if err != nil {
			if isEOF(err) {
				c.println()
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			return nil
		case "help", "h":
			c.println(temperatureHelp)
			continue
		case "common", "references":
			c.showReferences()
			continue
		}

		q, ok, err := tempconv.ParseQuery(line)
		switch {
		case !ok:
			c.println("Invalid format. Use: '25 C to F' or '100c f'")
			continue
		case err != nil:
			c.println("Please enter a valid number")
			continue
		}
		res, from, to, err := conv.Convert(q.Value, q.From, q.To)
		if err != nil {
			if errors.Is(err, tempconv.ErrUnknownUnit) {
				c.printf("Error: %v\n", err)
				continue
			}
			return err
		}
		c.printf("%s°%s = %s°%s\n", num(q.Value), from, num(res), to)
		if from == tempconv.Celsius && isLandmark(q.Value) {
			c.println("Interesting fact above!")
		}
	}
}

func isLandmark(c float64) bool {
	return c == 0 || c == 100 || c == 37 || c == -273.15
}
