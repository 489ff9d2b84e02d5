package decimal64

import (
	"math"
	"math/big"
)

// Policy selects how a Decimal rounds when an operation cannot be
// represented exactly. It is a small closed set of variants dispatched by
// a switch, not an open interface — rounding policies are pure, stateless
// strategies (spec's "Policy dispatch" design note).
type Policy uint8

const (
	// PolicyDown truncates toward zero. It is the fastest policy.
	PolicyDown Policy = iota
	// PolicyDefault adds half-magnitude then truncates. It is fast and
	// rounds to nearest, but on 0.5 it rounds away from zero, and it may
	// mis-round reals extremely close to a tie (e.g. 0.49999999999999994),
	// a documented, intentional speed/accuracy trade-off.
	PolicyDefault
	// PolicyHalfDown rounds to the nearest value; on an exact tie, rounds
	// toward zero.
	PolicyHalfDown
	// PolicyHalfUp rounds to the nearest value; on an exact tie, rounds
	// away from zero.
	PolicyHalfUp
	// PolicyHalfEven rounds to the nearest value; on an exact tie, rounds
	// toward the neighbor with an even last digit (banker's rounding).
	PolicyHalfEven
	// PolicyCeiling rounds toward positive infinity.
	PolicyCeiling
	// PolicyFloor rounds toward negative infinity.
	PolicyFloor
	// PolicyUp rounds away from zero.
	PolicyUp
)

func (p Policy) String() string {
	switch p {
	case PolicyDown:
		return "Down"
	case PolicyDefault:
		return "Default"
	case PolicyHalfDown:
		return "HalfDown"
	case PolicyHalfUp:
		return "HalfUp"
	case PolicyHalfEven:
		return "HalfEven"
	case PolicyCeiling:
		return "Ceiling"
	case PolicyFloor:
		return "Floor"
	case PolicyUp:
		return "Up"
	default:
		return "Policy(invalid)"
	}
}

// round64 rounds value to the nearest int64 under p. It is used by
// FromFloatInexact (always with PolicyDefault, regardless of the target's
// own policy); the multDiv real-valued fallback uses roundBig instead.
func (p Policy) round64(value float64) int64 {
	switch p {
	case PolicyDown:
		return int64(value)
	case PolicyDefault:
		if value < 0 {
			return int64(value - 0.5)
		}
		return int64(value + 0.5)
	case PolicyHalfDown:
		if value >= 0 {
			f := floorReal(value)
			if value-float64(f) > 0.5 {
				return ceilReal(value)
			}
			return f
		}
		c := ceilReal(value)
		if float64(c)-value < 0.5 {
			return c
		}
		return floorReal(value)
	case PolicyHalfUp:
		if value >= 0 {
			f := floorReal(value)
			if value-float64(f) >= 0.5 {
				return ceilReal(value)
			}
			return f
		}
		c := ceilReal(value)
		if float64(c)-value <= 0.5 {
			return c
		}
		return floorReal(value)
	case PolicyHalfEven:
		if value >= 0 {
			f := floorReal(value)
			dec := value - float64(f)
			switch {
			case dec > 0.5:
				return ceilReal(value)
			case dec < 0.5:
				return f
			case f%2 == 0:
				return f
			default:
				return ceilReal(value)
			}
		}
		c := ceilReal(value)
		dec := float64(c) - value
		switch {
		case dec > 0.5:
			return floorReal(value)
		case dec < 0.5:
			return c
		case c%2 == 0:
			return c
		default:
			return floorReal(value)
		}
	case PolicyCeiling:
		return ceilReal(value)
	case PolicyFloor:
		return floorReal(value)
	case PolicyUp:
		if value >= 0 {
			return ceilReal(value)
		}
		return floorReal(value)
	default:
		panic("decimal64: invalid Policy")
	}
}

// divRounded computes a/b rounded per p, reporting ok=false when the
// correction needed to round (e.g. adding half the divisor) would overflow
// int64. On !ok, multDiv falls back to its gcd-reduced and real-valued
// paths; the other callers report ErrOverflow.
func (p Policy) divRounded(a, b int64) (q int64, ok bool) {
	switch p {
	case PolicyDown:
		return a / b, true

	case PolicyDefault:
		corr := absInt64(b / 2)
		if a >= 0 {
			if math.MaxInt64-a >= corr {
				return (a + corr) / b, true
			}
			return 0, false
		}
		if -(math.MinInt64 - a) >= corr {
			return (a - corr) / b, true
		}
		return 0, false

	case PolicyHalfDown:
		corr := absInt64(b) / 2
		rem := absInt64(a) % absInt64(b)
		if a >= 0 {
			if math.MaxInt64-a < corr {
				return 0, false
			}
			if rem > corr {
				return (a + corr) / b, true
			}
			return a / b, true
		}
		if -(math.MinInt64 - a) < corr {
			return 0, false
		}
		if rem > corr {
			return (a - corr) / b, true
		}
		return a / b, true

	case PolicyHalfUp:
		corr := absInt64(b) / 2
		rem := absInt64(a) % absInt64(b)
		if a >= 0 {
			if math.MaxInt64-a < corr {
				return 0, false
			}
			if rem >= corr {
				return (a + corr) / b, true
			}
			return a / b, true
		}
		if -(math.MinInt64 - a) < corr {
			return 0, false
		}
		return (a - corr) / b, true

	case PolicyHalfEven:
		half := absInt64(b) / 2
		rem := absInt64(a) % absInt64(b)
		if rem == 0 {
			return a / b, true
		}
		if a >= 0 {
			switch {
			case rem > half:
				return (a - rem + absInt64(b)) / b, true
			case rem < half, rem == half && absInt64(b)%2 != 0:
				return (a - rem) / b, true
			case absInt64(a/b)%2 == 0:
				return a / b, true
			default:
				return (a - rem + absInt64(b)) / b, true
			}
		}
		switch {
		case rem > half:
			return (a + rem - absInt64(b)) / b, true
		case rem < half, rem == half && absInt64(b)%2 != 0:
			return (a + rem) / b, true
		case absInt64(a/b)%2 == 0:
			return a / b, true
		default:
			return (a + rem - absInt64(b)) / b, true
		}

	case PolicyCeiling:
		q := a / b
		if a%b != 0 && (a < 0) == (b < 0) {
			return q + 1, true
		}
		return q, true

	case PolicyFloor:
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			return q - 1, true
		}
		return q, true

	case PolicyUp:
		q := a / b
		if a%b == 0 {
			return q, true
		}
		if (a < 0) == (b < 0) {
			return q + 1, true
		}
		return q - 1, true

	default:
		panic("decimal64: invalid Policy")
	}
}

// bigFloatPrec is the working precision used whenever multDiv must fall
// back to real-valued rounding. The original C++ uses `long double`
// (~64 bits of mantissa on most platforms, nominally 80-bit extended);
// Go has no such type, so big.Float at this precision is used instead,
// comfortably exceeding the spec's "at least 80 bits" floor.
const bigFloatPrec = 192

// roundBig is the big.Float-valued counterpart of round64, used by
// multDiv's last-resort fallback so that values which would lose
// precision as a float64 are still rounded correctly.
func (p Policy) roundBig(v *big.Float) int64 {
	switch p {
	case PolicyDown:
		i, _ := v.Int64()
		return i
	case PolicyDefault:
		half := big.NewFloat(0.5)
		if v.Sign() < 0 {
			half = big.NewFloat(-0.5)
		}
		sum := new(big.Float).SetPrec(bigFloatPrec).Add(v, half)
		i, _ := sum.Int64()
		return i
	case PolicyHalfDown:
		if v.Sign() >= 0 {
			f := floorBig(v)
			dec := fracAbove(v, f)
			if dec.Cmp(half64) > 0 {
				return f + 1
			}
			return f
		}
		c := ceilBig(v)
		dec := fracBelow(v, c)
		if dec.Cmp(half64) < 0 {
			return c
		}
		return floorBig(v)
	case PolicyHalfUp:
		if v.Sign() >= 0 {
			f := floorBig(v)
			dec := fracAbove(v, f)
			if dec.Cmp(half64) >= 0 {
				return f + 1
			}
			return f
		}
		c := ceilBig(v)
		dec := fracBelow(v, c)
		if dec.Cmp(half64) <= 0 {
			return c
		}
		return floorBig(v)
	case PolicyHalfEven:
		if v.Sign() >= 0 {
			f := floorBig(v)
			dec := fracAbove(v, f)
			switch dec.Cmp(half64) {
			case 1:
				return f + 1
			case -1:
				return f
			default:
				if f%2 == 0 {
					return f
				}
				return f + 1
			}
		}
		c := ceilBig(v)
		dec := fracBelow(v, c)
		switch dec.Cmp(half64) {
		case 1:
			return c - 1
		case -1:
			return c
		default:
			if c%2 == 0 {
				return c
			}
			return c - 1
		}
	case PolicyCeiling:
		return ceilBig(v)
	case PolicyFloor:
		return floorBig(v)
	case PolicyUp:
		if v.Sign() >= 0 {
			return ceilBig(v)
		}
		return floorBig(v)
	default:
		panic("decimal64: invalid Policy")
	}
}

var half64 = big.NewFloat(0.5)

// floorBig returns the largest int64 not greater than v.
func floorBig(v *big.Float) int64 {
	i, _ := v.Int64()
	iv := new(big.Float).SetPrec(bigFloatPrec).SetInt64(i)
	if iv.Cmp(v) <= 0 {
		return i
	}
	return i - 1
}

// ceilBig returns the smallest int64 not less than v.
func ceilBig(v *big.Float) int64 {
	i, _ := v.Int64()
	iv := new(big.Float).SetPrec(bigFloatPrec).SetInt64(i)
	if iv.Cmp(v) >= 0 {
		return i
	}
	return i + 1
}

// fracAbove returns v - floor, for v >= 0.
func fracAbove(v *big.Float, floor int64) *big.Float {
	return new(big.Float).SetPrec(bigFloatPrec).Sub(v, new(big.Float).SetPrec(bigFloatPrec).SetInt64(floor))
}

// fracBelow returns ceil - v, for v < 0.
func fracBelow(v *big.Float, ceil int64) *big.Float {
	return new(big.Float).SetPrec(bigFloatPrec).Sub(new(big.Float).SetPrec(bigFloatPrec).SetInt64(ceil), v)
}
