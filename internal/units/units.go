// Package units converts recipe quantities between imperial and metric
// measures for display.
package units

import (
	"fmt"
	"math"
	"strings"
)

// System identifies the measurement system a quantity should be shown in.
type System string

const (
	Imperial System = "imperial"
	Metric   System = "metric"
)

// ParseSystem resolves a user-supplied system name.
func ParseSystem(value string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "imperial", "us":
		return Imperial, nil
	case "metric", "si":
		return Metric, nil
	default:
		return "", fmt.Errorf("unknown unit system %q", value)
	}
}

func (s System) String() string { return string(s) }

// nativeUnits lists, per system, the units that already belong to it.
var nativeUnits = map[System][]string{
	Imperial: {"tsp", "tbsp", "cup", "cups", "fl oz", "oz", "lb", "lbs"},
	Metric:   {"g", "kg", "ml", "l"},
}

// Includes reports whether unit (any case) is already a unit of s.
func (s System) Includes(unit string) bool {
	unit = strings.ToLower(strings.TrimSpace(unit))
	for _, u := range nativeUnits[s] {
		if u == unit {
			return true
		}
	}
	return false
}

// Result is the outcome of a conversion. Value is nil when the input had no
// quantity.
type Result struct {
	Value *float64
	Unit  string
}

type conversion struct {
	factor float64
	label  string
}

// conversions maps a target system to the source units it converts, keyed by
// lowercase unit. The spoon pairs (tsp to ml for metric, tbsp to tsp and tsp
// to tbsp for imperial) live in the same tables; none of their keys collide
// with a mass or volume key for the same target.
var conversions = map[System]map[string]conversion{
	Metric: {
		"oz":    {28.3495, "g"},
		"lb":    {453.592, "g"},
		"lbs":   {453.592, "g"},
		"fl oz": {29.5735, "ml"},
		"cup":   {236.588, "ml"},
		"cups":  {236.588, "ml"},
		"tbsp":  {14.7868, "ml"},
		"tsp":   {4.92892, "ml"},
	},
	Imperial: {
		"g":    {0.035274, "oz"},
		"kg":   {35.274, "oz"},
		"ml":   {0.033814, "fl oz"},
		"l":    {33.814, "fl oz"},
		"tsp":  {1.0 / 3, "tbsp"},
		"tbsp": {3, "tsp"},
	},
}

// Convert scales quantity from unit into target. Absent quantities or units,
// and units without a table entry, pass through unchanged. Converted values
// are rounded to two decimals.
func Convert(quantity *float64, unit string, target System) Result {
	unchanged := Result{Value: quantity, Unit: unit}
	if quantity == nil || strings.TrimSpace(unit) == "" {
		return unchanged
	}
	table, ok := conversions[target]
	if !ok {
		return unchanged
	}
	conv, ok := table[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return unchanged
	}
	value := round2(*quantity * conv.factor)
	return Result{Value: &value, Unit: conv.label}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
