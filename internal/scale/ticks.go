// ticks.go

package scale

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns round tick values covering [start, stop]. Steps are 1, 2 or 5
// times a power of ten, chosen so about count ticks fit.
func Ticks(start, stop float64, count int) []float64 {
	if start == stop && count > 0 {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	step := tickIncrement(start, stop, count)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}

	var ticks []float64
	if step > 0 {
		r0 := math.Ceil(start / step)
		r1 := math.Floor(stop / step)
		for i := 0.0; r0+i <= r1; i++ {
			ticks = append(ticks, (r0+i)*step)
		}
	} else {
		step = -step
		r0 := math.Ceil(start * step)
		r1 := math.Floor(stop * step)
		for i := 0.0; r0+i <= r1; i++ {
			ticks = append(ticks, (r0+i)/step)
		}
	}
	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// tickIncrement returns the step for ticks; a negative result -n means a step of 1/n.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	power := floorLog10(step)
	e := step / math.Pow(10, power)
	factor := niceFactor(e)
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// TickStep returns the signed distance between adjacent ticks.
func TickStep(start, stop float64, count int) float64 {
	step0 := math.Abs(stop-start) / math.Max(0, float64(count))
	step1 := math.Pow(10, floorLog10(step0))
	step1 *= niceFactor(step0 / step1)
	if stop < start {
		return -step1
	}
	return step1
}

func niceFactor(e float64) float64 {
	switch {
	case e >= e10:
		return 10
	case e >= e5:
		return 5
	case e >= e2:
		return 2
	default:
		return 1
	}
}

var numberPrinter = message.NewPrinter(language.English)

// TickFormat returns a formatter with just enough decimals to tell ticks of
// the given density apart. Thousands are grouped with commas and negative
// numbers use a proper minus sign.
func TickFormat(start, stop float64, count int) func(float64) string {
	step := TickStep(start, stop, count)
	precision := 0
	if step != 0 && !math.IsNaN(step) && !math.IsInf(step, 0) {
		precision = int(math.Max(0, -exponent(math.Abs(step))))
	}
	layout := fmt.Sprintf("%%.%df", precision)
	return func(v float64) string {
		s := numberPrinter.Sprintf(layout, v)
		if strings.HasPrefix(s, "-") {
			if strings.Trim(s[1:], "0.,") == "" {
				return s[1:]
			}
			return "−" + s[1:]
		}
		return s
	}
}

// exponent is the power of ten of the leading digit of v.
func exponent(v float64) float64 {
	if v == 0 {
		return 0
	}
	return floorLog10(v)
}

// floorLog10 is floor(log10(v)) without the off-by-one that math.Log10
// rounding gives for exact powers of ten.
func floorLog10(v float64) float64 {
	p := math.Floor(math.Log10(v))
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return p
	}
	if math.Pow(10, p+1) <= v {
		p++
	} else if math.Pow(10, p) > v {
		p--
	}
	return p
}
