package decimal64

import (
	"math/big"
	"sync"
)

// bigIntPool and bigFloatPool recycle scratch big.Int/big.Float values used
// by multDiv's slow paths, grounded on the teacher's getBint/putBint pool.
var bigIntPool = sync.Pool{New: func() any { return new(big.Int) }}
var bigFloatPool = sync.Pool{New: func() any { return new(big.Float).SetPrec(bigFloatPrec) }}

func getBigInt() *big.Int {
	return bigIntPool.Get().(*big.Int)
}

func putBigInt(v *big.Int) {
	bigIntPool.Put(v)
}

func getBigFloat() *big.Float {
	v := bigFloatPool.Get().(*big.Float)
	v.SetPrec(bigFloatPrec)
	return v
}

func putBigFloat(v *big.Float) {
	bigFloatPool.Put(v)
}

// multDiv computes round((value1*value2)/divisor) under policy p, using
// only 64-bit arithmetic whenever possible and falling back to arbitrary
// precision only when the direct product would overflow. It is the single
// core routine every cross-decimal Mul and Quo is built from, ported from
// the original's impl::MultDiv.
//
// divisor must be non-zero; it may be negative (Quo passes the divisor's
// mantissa). ok is false when value1*(value2/divisor) or
// (value1/divisor)*(value2%divisor) overflows int64; the big.Float
// fallback itself always reports ok.
func multDiv(p Policy, value1, value2, divisor int64) (result int64, ok bool) {
	value1Int := value1 / divisor
	value1Dec := value1 % divisor
	value2Int := value2 / divisor
	value2Dec := value2 % divisor

	if isMultOverflow(value1, value2Int) || isMultOverflow(value1Int, value2Dec) {
		return 0, false
	}
	result = value1*value2Int + value1Int*value2Dec

	if value1Dec == 0 || value2Dec == 0 {
		return result, true
	}

	if !isMultOverflow(value1Dec, value2Dec) {
		product := value1Dec * value2Dec
		q, qok := p.divRounded(product, divisor)
		if qok {
			return result + q, true
		}
	}

	// gcd-reduce the shared divisor sequentially against each decimal
	// remainder in turn, then retry the direct multiply. Reducing each
	// remainder against its own copy of divisor (and then multiplying the
	// two shrunk divisors back together) would compute a result divided
	// by divisor^2 instead of divisor — this has to reduce one running
	// divisor, not two independent ones.
	d1, reduced := reduceByGCD(value1Dec, divisor)
	d2, dv := reduceByGCD(value2Dec, reduced)

	if !isMultOverflow(d1, d2) {
		if q, qok := p.divRounded(d1*d2, dv); qok {
			return result + q, true
		}
	}

	// Last resort: compute the remainder term as a real number at
	// extended precision and round it with the policy's real-valued
	// rounding rule.
	bf1 := getBigFloat()
	bf2 := getBigFloat()
	bd := getBigFloat()
	defer putBigFloat(bf1)
	defer putBigFloat(bf2)
	defer putBigFloat(bd)

	bf1.SetInt64(value1Dec)
	bf2.SetInt64(value2Dec)
	bd.SetInt64(divisor)

	product := new(big.Float).SetPrec(bigFloatPrec).Mul(bf1, bf2)
	quotient := new(big.Float).SetPrec(bigFloatPrec).Quo(product, bd)

	return result + p.roundBig(quotient), true
}

// reduceByGCD divides both n and d by their greatest common divisor,
// shrinking the pair before a multiply that would otherwise overflow. It is
// called twice in sequence against one running divisor (first with
// value1Dec, then with value2Dec against whatever the first call left of
// the divisor), never independently against two copies of the original
// divisor — that would divide the final quotient by the divisor a second
// time.
func reduceByGCD(n, d int64) (int64, int64) {
	if n == 0 {
		return 0, d
	}
	a := getBigInt()
	b := getBigInt()
	g := getBigInt()
	defer putBigInt(a)
	defer putBigInt(b)
	defer putBigInt(g)

	a.SetInt64(absInt64(n))
	b.SetInt64(absInt64(d))
	g.GCD(nil, nil, a, b)

	gcd := g.Int64()
	if gcd <= 1 {
		return n, d
	}
	return n / gcd, d / gcd
}
