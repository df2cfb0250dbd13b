package operations

import "math"

const fixedScale = 10000

// fixed is a four-decimal fixed-point number that takes part through its
// operator methods only.
type fixed struct{ raw int64 }

func fx(f float64) fixed { return fixed{raw: int64(math.Round(f * fixedScale))} }

func (a fixed) Add(b fixed) fixed { return fixed{a.raw + b.raw} }
func (a fixed) Sub(b fixed) fixed { return fixed{a.raw - b.raw} }
func (a fixed) Mul(b fixed) fixed { return fixed{a.raw * b.raw / fixedScale} }
func (a fixed) Div(b fixed) fixed { return fixed{a.raw * fixedScale / b.raw} }
func (a fixed) Mod(b fixed) fixed { return fixed{a.raw % b.raw} }
func (a fixed) Cmp(b fixed) int   { return cmpInt(a.raw, b.raw) }
func (a fixed) Float64() float64  { return float64(a.raw) / fixedScale }
func (fixed) FromInt64(n int64) fixed {
	return fixed{n * fixedScale}
}
func (fixed) FromFloat64(f float64) fixed { return fx(f) }

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// counter can only be added.
type counter struct{ n int }

func (a counter) Add(b counter) counter { return counter{a.n + b.n} }

// ticks is a named integer type.
type ticks int32

// exact is an integer type with no float64 route, so power falls back to
// repeated multiplication.
type exact struct{ v int64 }

func (a exact) Add(b exact) exact     { return exact{a.v + b.v} }
func (a exact) Sub(b exact) exact     { return exact{a.v - b.v} }
func (a exact) Mul(b exact) exact     { return exact{a.v * b.v} }
func (a exact) Div(b exact) exact     { return exact{a.v / b.v} }
func (a exact) Mod(b exact) exact     { return exact{a.v % b.v} }
func (a exact) Cmp(b exact) int       { return cmpInt(a.v, b.v) }
func (exact) FromInt64(n int64) exact { return exact{n} }
