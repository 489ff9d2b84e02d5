package decimal64

import "testing"

func TestNewAndAccessors(t *testing.T) {
	d := MustNew(12345, 2, PolicyHalfEven)
	if d.AsUnbiased() != 12345 {
		t.Errorf("AsUnbiased() = %d, want 12345", d.AsUnbiased())
	}
	if d.Precision() != 2 {
		t.Errorf("Precision() = %d, want 2", d.Precision())
	}
	if d.PolicyOf() != PolicyHalfEven {
		t.Errorf("PolicyOf() = %v, want HalfEven", d.PolicyOf())
	}
	if d.Sign() != 1 {
		t.Errorf("Sign() = %d, want 1", d.Sign())
	}
}

func TestNewPrecisionRange(t *testing.T) {
	if _, err := New(1, -1, PolicyDown); err != ErrPrecisionRange {
		t.Errorf("New with prec -1: err = %v, want ErrPrecisionRange", err)
	}
	if _, err := New(1, 19, PolicyDown); err != ErrPrecisionRange {
		t.Errorf("New with prec 19: err = %v, want ErrPrecisionRange", err)
	}
}

func TestNegAbs(t *testing.T) {
	d := MustNew(500, 2, PolicyDown)
	if got := d.Neg().AsUnbiased(); got != -500 {
		t.Errorf("Neg() = %d, want -500", got)
	}
	if got := d.Neg().Abs().AsUnbiased(); got != 500 {
		t.Errorf("Neg().Abs() = %d, want 500", got)
	}
}

func TestEqual(t *testing.T) {
	a := MustNew(100, 2, PolicyDown)
	b := MustNew(100, 2, PolicyHalfUp)
	c := MustNew(1000, 3, PolicyDown)
	if !a.Equal(b) {
		t.Error("Equal should ignore policy")
	}
	if a.Equal(c) {
		t.Error("Equal should require matching precision")
	}
}

func TestAddSameAndCrossPrecision(t *testing.T) {
	a := MustNew(100, 2, PolicyDown) // 1.00
	b := MustNew(50, 2, PolicyDown)  // 0.50
	sum := a.MustAdd(b)
	if sum.AsUnbiased() != 150 {
		t.Errorf("1.00+0.50 mantissa = %d, want 150", sum.AsUnbiased())
	}

	c := MustNew(5, 1, PolicyDown) // 0.5, precision 1
	sum2 := a.MustAdd(c)           // 1.00 + 0.5 = 1.50, at a's precision (2)
	if sum2.Precision() != 2 || sum2.AsUnbiased() != 150 {
		t.Errorf("1.00+0.5 = prec %d mant %d, want prec 2 mant 150", sum2.Precision(), sum2.AsUnbiased())
	}
}

func TestAddPolicyMismatch(t *testing.T) {
	a := MustNew(1, 0, PolicyDown)
	b := MustNew(1, 0, PolicyUp)
	if _, err := a.Add(b); err != ErrPolicyMismatch {
		t.Errorf("Add with mismatched policies: err = %v, want ErrPolicyMismatch", err)
	}
}

func TestSub(t *testing.T) {
	a := MustNew(300, 2, PolicyDown)
	b := MustNew(125, 2, PolicyDown)
	diff := a.MustSub(b)
	if diff.AsUnbiased() != 175 {
		t.Errorf("3.00-1.25 = %d, want 175", diff.AsUnbiased())
	}
}

func TestMul(t *testing.T) {
	a := MustNew(200, 2, PolicyDown) // 2.00
	b := MustNew(150, 2, PolicyDown) // 1.50
	prod := a.MustMul(b)
	if prod.AsUnbiased() != 300 || prod.Precision() != 2 {
		t.Errorf("2.00*1.50 = mant %d prec %d, want 300 prec 2", prod.AsUnbiased(), prod.Precision())
	}
}

func TestQuo(t *testing.T) {
	a := MustNew(100, 2, PolicyHalfUp) // 1.00
	b := MustNew(300, 2, PolicyHalfUp) // 3.00
	q := a.MustQuo(b)                  // 1/3 = 0.333... -> 0.33 (nearest at prec 2)
	if q.AsUnbiased() != 33 {
		t.Errorf("1.00/3.00 = %d, want 33", q.AsUnbiased())
	}
}

func TestQuoDivisionByZero(t *testing.T) {
	a := MustNew(100, 2, PolicyDown)
	z := MustNew(0, 2, PolicyDown)
	if _, err := a.Quo(z); err != ErrDivisionByZero {
		t.Errorf("Quo by zero: err = %v, want ErrDivisionByZero", err)
	}
	if _, err := a.QuoInt64(0); err != ErrDivisionByZero {
		t.Errorf("QuoInt64 by zero: err = %v, want ErrDivisionByZero", err)
	}
}

func TestQuoRem(t *testing.T) {
	a := MustNew(700, 2, PolicyDown) // 7.00
	b := MustNew(300, 2, PolicyDown) // 3.00
	q, r, err := a.QuoRem(b)
	if err != nil {
		t.Fatalf("QuoRem error: %v", err)
	}
	if q.AsUnbiased() != 200 {
		t.Errorf("7.00/3.00 quotient = %d, want 200 (2.00)", q.AsUnbiased())
	}
	recombined := q.MustMul(b).MustAdd(r)
	if !recombined.Equal(a) {
		t.Errorf("q*e+r = %v, want %v", recombined, a)
	}
}

func TestToInteger(t *testing.T) {
	d := MustNew(350, 2, PolicyHalfUp) // 3.50
	i, err := d.ToInteger()
	if err != nil {
		t.Fatalf("ToInteger error: %v", err)
	}
	if i != 4 {
		t.Errorf("ToInteger() = %d, want 4", i)
	}
}

func TestToDoubleInexact(t *testing.T) {
	d := MustNew(250, 2, PolicyDown) // 2.50
	if got := d.ToDoubleInexact(); got != 2.5 {
		t.Errorf("ToDoubleInexact() = %v, want 2.5", got)
	}
}

func TestFromFloatInexact(t *testing.T) {
	d, err := FromFloatInexact(3.14, 2, PolicyDown)
	if err != nil {
		t.Fatalf("FromFloatInexact error: %v", err)
	}
	if d.AsUnbiased() != 314 {
		t.Errorf("FromFloatInexact(3.14, 2) = %d, want 314", d.AsUnbiased())
	}
}

func TestFromBiasedWideningAndNarrowing(t *testing.T) {
	d, err := FromBiased(123, 2, 4, PolicyDown) // 1.23 -> 1.2300
	if err != nil {
		t.Fatalf("FromBiased widen error: %v", err)
	}
	if d.AsUnbiased() != 12300 {
		t.Errorf("FromBiased widen = %d, want 12300", d.AsUnbiased())
	}

	n, err := FromBiased(12350, 4, 2, PolicyHalfUp) // 1.2350 -> 1.24 (HalfUp at tie)
	if err != nil {
		t.Fatalf("FromBiased narrow error: %v", err)
	}
	if n.AsUnbiased() != 124 {
		t.Errorf("FromBiased narrow = %d, want 124", n.AsUnbiased())
	}
}

func TestCast(t *testing.T) {
	d := MustNew(1500, 3, PolicyDown) // 1.500
	c := MustCast(d, 2, PolicyHalfUp) // 1.50
	if c.AsUnbiased() != 150 || c.Precision() != 2 {
		t.Errorf("Cast = mant %d prec %d, want 150 prec 2", c.AsUnbiased(), c.Precision())
	}
}

func TestCmpAndEquality(t *testing.T) {
	a := MustNew(150, 2, PolicyDown) // 1.50
	b := MustNew(15, 1, PolicyDown)  // 1.5
	c, err := a.Cmp(b)
	if err != nil {
		t.Fatalf("Cmp error: %v", err)
	}
	if c != 0 {
		t.Errorf("Cmp(1.50, 1.5) = %d, want 0", c)
	}
}

func TestCmpPolicyMismatch(t *testing.T) {
	a := MustNew(1, 0, PolicyDown)
	b := MustNew(1, 0, PolicyUp)
	if _, err := a.Cmp(b); err != ErrPolicyMismatch {
		t.Errorf("Cmp with mismatched policies: err = %v, want ErrPolicyMismatch", err)
	}
}

func TestCmpTotalAndMinMax(t *testing.T) {
	a := MustNew(100, 2, PolicyDown)
	b := MustNew(200, 2, PolicyDown)
	if Max(a, b) != b {
		t.Error("Max(1.00, 2.00) should be 2.00")
	}
	if Min(a, b) != a {
		t.Error("Min(1.00, 2.00) should be 1.00")
	}
}

func TestMulInt64Overflow(t *testing.T) {
	// MulInt64 is explicitly unchecked: this documents the behavior, not
	// a guarantee of a particular wraparound value.
	d := MustNew(1<<62, 0, PolicyDown)
	_ = d.MulInt64(4) // overflows int64; must not panic
}
