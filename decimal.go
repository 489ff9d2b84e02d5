// Package decimal64 implements a fixed-point, base-10 decimal number backed
// by a signed 64-bit mantissa, a fractional precision between 0 and 18
// digits, and a pluggable rounding policy.
//
// A Decimal's value is mant / 10^prec. Go has no compile-time (non-type)
// generic parameters, so unlike the C++ library this package is ported
// from, precision and rounding policy are not part of the type — they are
// runtime fields carried on every Decimal value, the same way this
// package's teacher represents its own decimal scale as a runtime int8
// rather than a type parameter. Binary operations between two Decimals
// that disagree on policy return ErrPolicyMismatch; their Must* variants
// panic instead.
package decimal64

import "math"

// Decimal is an immutable fixed-point decimal value. The zero Decimal is
// valid: it represents 0 at precision 0 under PolicyDown.
type Decimal struct {
	mant   int64
	prec   uint8
	policy Policy
}

// New returns the Decimal mant/10^prec carrying policy; mant is stored
// as-is, with no rounding. It returns ErrPrecisionRange if prec is outside
// [0, MaxPrec].
func New(mant int64, prec int, policy Policy) (Decimal, error) {
	if prec < 0 || prec > MaxPrec {
		return Decimal{}, ErrPrecisionRange
	}
	return Decimal{mant: mant, prec: uint8(prec), policy: policy}, nil
}

// MustNew is like New but panics on error.
func MustNew(mant int64, prec int, policy Policy) Decimal {
	d, err := New(mant, prec, policy)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns 0 at the given precision and policy.
func Zero(prec int, policy Policy) Decimal {
	return MustNew(0, prec, policy)
}

// AsUnbiased returns the raw mantissa, i.e. the value multiplied by
// 10^Precision(). This is the original's AsUnbiased accessor.
func (d Decimal) AsUnbiased() int64 { return d.mant }

// Precision returns the number of fractional digits d carries.
func (d Decimal) Precision() int { return int(d.prec) }

// PolicyOf returns the rounding policy d carries.
func (d Decimal) PolicyOf() Policy { return d.policy }

// Sign returns -1, 0, or 1 according to the sign of d's mantissa.
func (d Decimal) Sign() int {
	switch {
	case d.mant < 0:
		return -1
	case d.mant > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether d is exactly 0.
func (d Decimal) IsZero() bool { return d.mant == 0 }

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{mant: -d.mant, prec: d.prec, policy: d.policy}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.mant < 0 {
		return d.Neg()
	}
	return d
}

// Equal reports whether d and e represent the same mantissa at the same
// precision. Policy does not participate in equality, matching the
// original's treatment of RoundPolicy as a behavior, not a value.
func (d Decimal) Equal(e Decimal) bool {
	return d.mant == e.mant && d.prec == e.prec
}

// Cmp compares d and e numerically, rescaling the lower-precision operand
// first. It returns ErrPolicyMismatch if d and e carry different policies,
// and ErrOverflow if rescaling would overflow int64.
func (d Decimal) Cmp(e Decimal) (int, error) {
	if d.policy != e.policy {
		return 0, ErrPolicyMismatch
	}
	a, b, err := alignPrec(d, e)
	if err != nil {
		return 0, err
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// MustCmp is like Cmp but panics on error.
func (d Decimal) MustCmp(e Decimal) int {
	c, err := d.Cmp(e)
	if err != nil {
		panic(err)
	}
	return c
}

// CmpTotal imposes a total order across Decimals of differing precision
// and policy, useful for sorting and map keys where Cmp's error return is
// inconvenient: it first compares numeric value (treating a policy
// mismatch or rescale overflow as "incomparable, so order by precision
// instead"), then precision, then policy. It never errors. Grounded on the
// teacher's own CmpTotal/Min/Max helpers, which this port generalizes from
// a fixed-scale family to this package's runtime-precision family.
func (d Decimal) CmpTotal(e Decimal) int {
	if c, err := d.Cmp(e); err == nil {
		if c != 0 {
			return c
		}
	}
	if d.prec != e.prec {
		if d.prec < e.prec {
			return -1
		}
		return 1
	}
	if d.policy != e.policy {
		if d.policy < e.policy {
			return -1
		}
		return 1
	}
	if d.mant < e.mant {
		return -1
	}
	if d.mant > e.mant {
		return 1
	}
	return 0
}

// Max returns whichever of d, e orders greater under CmpTotal.
func Max(d, e Decimal) Decimal {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Min returns whichever of d, e orders smaller under CmpTotal.
func Min(d, e Decimal) Decimal {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}

// alignPrec rescales the lower-precision of d, e up to the higher
// precision so their mantissas become directly comparable.
func alignPrec(d, e Decimal) (int64, int64, error) {
	switch {
	case d.prec == e.prec:
		return d.mant, e.mant, nil
	case d.prec < e.prec:
		scaled, err := rescaleUp(d.mant, int(e.prec-d.prec))
		return scaled, e.mant, err
	default:
		scaled, err := rescaleUp(e.mant, int(d.prec-e.prec))
		return d.mant, scaled, err
	}
}

func rescaleUp(mant int64, digits int) (int64, error) {
	factor := Pow10(digits)
	if isMultOverflow(mant, factor) {
		return 0, ErrOverflow
	}
	return mant * factor, nil
}

// Add returns d+e. It returns ErrPolicyMismatch if the policies differ,
// and ErrOverflow if the aligned mantissas' sum does not fit in int64.
// Like the original, this is direct mantissa addition: it is never
// rounded, only range-checked.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	if d.policy != e.policy {
		return Decimal{}, ErrPolicyMismatch
	}
	prec := d.prec
	a, b := d.mant, e.mant
	var err error
	switch {
	case d.prec < e.prec:
		a, err = rescaleUp(d.mant, int(e.prec-d.prec))
		prec = e.prec
	case d.prec > e.prec:
		b, err = rescaleUp(e.mant, int(d.prec-e.prec))
	}
	if err != nil {
		return Decimal{}, err
	}
	sum := a + b
	if overflowsAdd(a, b, sum) {
		return Decimal{}, ErrOverflow
	}
	return Decimal{mant: sum, prec: prec, policy: d.policy}, nil
}

// MustAdd is like Add but panics on error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	r, err := d.Add(e)
	if err != nil {
		panic(err)
	}
	return r
}

// Sub returns d-e. See Add for its error and overflow semantics.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	return d.Add(e.Neg())
}

// MustSub is like Sub but panics on error.
func (d Decimal) MustSub(e Decimal) Decimal {
	r, err := d.Sub(e)
	if err != nil {
		panic(err)
	}
	return r
}

func overflowsAdd(a, b, sum int64) bool {
	return (b > 0 && sum < a) || (b < 0 && sum > a)
}

// MulInt64 returns d*n at d's precision, unrounded. Overflow is
// intentionally undefined here (spec's "Overflow discipline"): this is a
// direct 64-bit multiply with no widening, matching the original's
// int-multiply operator*.
func (d Decimal) MulInt64(n int64) Decimal {
	return Decimal{mant: d.mant * n, prec: d.prec, policy: d.policy}
}

// Mul returns d*e, rescaled back to d's precision and rounded under d's
// policy. It returns ErrPolicyMismatch if the policies differ.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	if d.policy != e.policy {
		return Decimal{}, ErrPolicyMismatch
	}
	divisor := Pow10(int(e.prec))
	result, ok := multDiv(d.policy, d.mant, e.mant, divisor)
	if !ok {
		return Decimal{}, ErrOverflow
	}
	return Decimal{mant: result, prec: d.prec, policy: d.policy}, nil
}

// MustMul is like Mul but panics on error.
func (d Decimal) MustMul(e Decimal) Decimal {
	r, err := d.Mul(e)
	if err != nil {
		panic(err)
	}
	return r
}

// QuoInt64 returns d/n at d's precision, rounded under d's policy. It
// returns ErrDivisionByZero if n is 0.
func (d Decimal) QuoInt64(n int64) (Decimal, error) {
	if n == 0 {
		return Decimal{}, ErrDivisionByZero
	}
	q, ok := d.policy.divRounded(d.mant, n)
	if !ok {
		return Decimal{}, ErrOverflow
	}
	return Decimal{mant: q, prec: d.prec, policy: d.policy}, nil
}

// Quo returns d/e, scaled so the result is expressed at d's precision and
// rounded under d's policy. It returns ErrPolicyMismatch if the policies
// differ and ErrDivisionByZero if e is zero.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if d.policy != e.policy {
		return Decimal{}, ErrPolicyMismatch
	}
	if e.mant == 0 {
		return Decimal{}, ErrDivisionByZero
	}
	multiplier := Pow10(int(e.prec))
	result, ok := multDiv(d.policy, d.mant, multiplier, e.mant)
	if !ok {
		return Decimal{}, ErrOverflow
	}
	return Decimal{mant: result, prec: d.prec, policy: d.policy}, nil
}

// MustQuo is like Quo but panics on error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	r, err := d.Quo(e)
	if err != nil {
		panic(err)
	}
	return r
}

// QuoRem returns the quotient q (d/e truncated toward zero to an integer,
// expressed at d's precision) and remainder r such that d == q*e + r, the
// combined operation the
// original's money-handling callers build from FromBiased and the plain
// division operator. It returns ErrPolicyMismatch if the policies differ
// and ErrDivisionByZero if e is zero.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	if d.policy != e.policy {
		return Decimal{}, Decimal{}, ErrPolicyMismatch
	}
	if e.mant == 0 {
		return Decimal{}, Decimal{}, ErrDivisionByZero
	}
	multiplier := Pow10(int(e.prec))
	quot, ok := multDiv(PolicyDown, d.mant, multiplier, e.mant)
	if !ok {
		return Decimal{}, Decimal{}, ErrOverflow
	}
	quot -= quot % Pow10(int(d.prec))
	q = Decimal{mant: quot, prec: d.prec, policy: d.policy}
	prod, err2 := q.Mul(e)
	if err2 != nil {
		return Decimal{}, Decimal{}, err2
	}
	r, err2 = d.Sub(prod)
	if err2 != nil {
		return Decimal{}, Decimal{}, err2
	}
	return q, r, nil
}

// ToInteger returns d rounded to an integer under d's policy via
// DivRounded rather than simple truncation — matching the original's
// ToInteger, which asks the policy (not necessarily truncation) how to
// dispose of the fraction.
func (d Decimal) ToInteger() (int64, error) {
	if d.prec == 0 {
		return d.mant, nil
	}
	q, ok := d.policy.divRounded(d.mant, Pow10(int(d.prec)))
	if !ok {
		return 0, ErrOverflow
	}
	return q, nil
}

// ToDoubleInexact converts d to a float64. As the name promises, this can
// lose precision for mantissas beyond float64's 53-bit significand.
func (d Decimal) ToDoubleInexact() float64 {
	return float64(d.mant) / float64(Pow10(int(d.prec)))
}

// FromUnbiased returns a Decimal whose raw mantissa is exactly value, at
// the given precision and policy, with no scaling.
func FromUnbiased(value int64, prec int, policy Policy) (Decimal, error) {
	return New(value, prec, policy)
}

// FromFloatInexact converts value to a Decimal at the given precision and
// policy. Per the original, this always rounds using PolicyDefault's
// Round, regardless of the requested policy — only the resulting
// Decimal carries policy for its later operations. The conversion is
// inexact for any value that is not itself exactly representable in
// binary floating point.
func FromFloatInexact(value float64, prec int, policy Policy) (Decimal, error) {
	if prec < 0 || prec > MaxPrec {
		return Decimal{}, ErrPrecisionRange
	}
	scaled := value * float64(Pow10(prec))
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return Decimal{}, ErrOverflow
	}
	mant := PolicyDefault.round64(scaled)
	return Decimal{mant: mant, prec: uint8(prec), policy: policy}, nil
}

// FromBiased reconstructs a Decimal from a mantissa that was computed at
// originalPrec fractional digits, rescaling it to prec. Widening
// (prec >= originalPrec) multiplies exactly; narrowing rounds under
// policy. This is the original's FromBiased, the building block behind
// decimal_cast.
func FromBiased(originalUnbiased int64, originalPrec int, prec int, policy Policy) (Decimal, error) {
	if prec < 0 || prec > MaxPrec || originalPrec < 0 || originalPrec > MaxPrec {
		return Decimal{}, ErrPrecisionRange
	}
	if prec >= originalPrec {
		mant, err := rescaleUp(originalUnbiased, prec-originalPrec)
		if err != nil {
			return Decimal{}, err
		}
		return Decimal{mant: mant, prec: uint8(prec), policy: policy}, nil
	}
	q, ok := policy.divRounded(originalUnbiased, Pow10(originalPrec-prec))
	if !ok {
		return Decimal{}, ErrOverflow
	}
	return Decimal{mant: q, prec: uint8(prec), policy: policy}, nil
}

// Cast reconstructs d at a new precision and policy, widening exactly or
// narrowing with rounding exactly like FromBiased. This generalizes the
// original's decimal_cast to also allow switching policy in the same
// call.
func Cast(d Decimal, prec int, policy Policy) (Decimal, error) {
	return FromBiased(d.mant, int(d.prec), prec, policy)
}

// MustCast is like Cast but panics on error.
func MustCast(d Decimal, prec int, policy Policy) Decimal {
	r, err := Cast(d, prec, policy)
	if err != nil {
		panic(err)
	}
	return r
}
