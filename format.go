package decimal64

import (
	"fmt"
	"strconv"
)

// trimTrailingZeros drops trailing zero digits from the fractional part
// after, which is expressed at prec digits, returning the surviving
// digit count. It ports the original's impl::TrimTrailingZeros, a
// binary-search-style check against the powers 16, 8, 4, 2 and 1 rather
// than a linear scan.
func trimTrailingZeros(after int64, prec int) int {
	if after == 0 {
		return 0
	}
	digits := prec
	for _, step := range [5]int{16, 8, 4, 2, 1} {
		if step >= digits {
			continue
		}
		divisor := Pow10(step)
		if after%divisor == 0 {
			after /= divisor
			digits -= step
		}
	}
	return digits
}

// String renders d in its shortest round-tripping form: trailing zero
// fractional digits are trimmed, matching the original's default
// fmt::formatter behavior (the "{}" specifier, as opposed to "{:f}").
func (d Decimal) String() string {
	return string(d.appendTo(nil, false))
}

// AppendFixed renders d with exactly Precision() fractional digits (no
// trailing-zero trimming), matching the original's "{:f}" formatter mode,
// and appends it to dst.
func (d Decimal) AppendFixed(dst []byte) []byte {
	return d.appendTo(dst, true)
}

func (d Decimal) appendTo(dst []byte, fixed bool) []byte {
	mant := d.mant
	neg := mant < 0
	if neg {
		mant = -mant
	}
	prec := int(d.prec)
	scale := Pow10(prec)
	intPart := mant / scale
	fracPart := mant % scale

	if neg {
		dst = append(dst, '-')
	}
	dst = strconv.AppendInt(dst, intPart, 10)

	digits := prec
	if !fixed {
		digits = trimTrailingZeros(fracPart, prec)
	}
	if digits == 0 {
		return dst
	}

	dst = append(dst, '.')
	// fracPart must be printed as `prec` digits, left-padded with
	// zeros, then truncated from the right down to `digits`.
	buf := make([]byte, prec)
	v := fracPart
	for i := prec - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:digits]...)
}

// Format implements fmt.Formatter, supporting the verbs s, v and q (all
// three render like String, trimming trailing zeros) and f (renders like
// AppendFixed, keeping exactly Precision() fractional digits), matching
// the set the teacher's own Decimal.Format supports.
func (d Decimal) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'v':
		buf = d.appendTo(nil, false)
	case 'q':
		buf = append(buf, '"')
		buf = d.appendTo(buf, false)
		buf = append(buf, '"')
	case 'f', 'F':
		buf = d.appendTo(nil, true)
	default:
		fmt.Fprintf(f, "%%!%c(decimal64.Decimal=%s)", verb, d.appendTo(nil, false))
		return
	}

	width, hasWidth := f.Width()
	if !hasWidth || len(buf) >= width {
		f.Write(buf)
		return
	}

	pad := make([]byte, width-len(buf))
	for i := range pad {
		pad[i] = ' '
	}
	if f.Flag('-') {
		f.Write(buf)
		f.Write(pad)
		return
	}
	f.Write(pad)
	f.Write(buf)
}
