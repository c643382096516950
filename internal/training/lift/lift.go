// Package lift holds the per-set metrics: estimated one rep max (Epley) and volume.
// Every input goes through a lenient numeric coercion; garbage reads as zero.
package lift

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EstimatedOneRepMax uses the Epley formula. For a single rep (or less)
// the estimate is the weight itself.
func EstimatedOneRepMax(reps, weight float64) float64 {
	reps = finiteOrZero(reps)
	weight = finiteOrZero(weight)
	if reps <= 1 {
		return weight
	}
	return weight * (1 + reps/30.0)
}

func Volume(reps, weight float64) float64 {
	return finiteOrZero(reps) * finiteOrZero(weight)
}

// Round2 rounds to two decimals, the precision est-1RM is stored with.
func Round2(x float64) float64 {
	x = finiteOrZero(x)
	return math.Round(x*100) / 100
}

// Coerce converts v to a float64. Unsupported types, unparsable strings,
// NaN and Inf all become 0.
func Coerce(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		return ParseNumber(n.String())
	case string:
		return ParseNumber(n)
	case fmt.Stringer:
		return ParseNumber(n.String())
	default:
		return 0
	}
}

// ParseNumber parses s leniently; surrounding spaces are ignored and
// anything that is not a finite number yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Number is a JSON value which accepts a number, a numeric string or null.
// Anything else decodes to 0 instead of failing the whole payload.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var raw any
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		*n = 0
		return nil
	}
	*n = Number(Coerce(raw))
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// Int rounds to the nearest int, saturating at the int32 range.
func (n Number) Int() int {
	f := math.Round(float64(n))
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
