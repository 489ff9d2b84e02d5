package decimal64

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a hash of d's mantissa and precision. Precision is folded
// into the digest (not just the mantissa) so that two Decimals holding
// the same mantissa at different precisions — which represent different
// numeric values — land in independent hash spaces, per this package's
// hash contract. Policy is intentionally excluded, matching Equal.
func (d Decimal) Hash() uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(d.mant))
	buf[8] = d.prec
	return xxhash.Sum64(buf[:])
}

// WriteTo implements io.WriterTo, writing d in its MarshalText form
// prefixed by a length, so ReadFrom can recover it byte-exact without a
// delimiter.
func (d Decimal) WriteTo(w io.Writer) (int64, error) {
	text, _ := d.MarshalText()
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(text)))
	n1, err := w.Write(lenBuf[:])
	if err != nil {
		return int64(n1), err
	}
	n2, err := w.Write(text)
	return int64(n1 + n2), err
}

// ReadFrom implements io.ReaderFrom, the inverse of WriteTo. d's
// precision and policy are preserved from the receiver's current value;
// only its mantissa is replaced.
func (d *Decimal) ReadFrom(r io.Reader) (int64, error) {
	var lenBuf [2]byte
	n1, err := io.ReadFull(r, lenBuf[:])
	if err != nil {
		return int64(n1), err
	}
	size := binary.BigEndian.Uint16(lenBuf[:])
	text := make([]byte, size)
	n2, err := io.ReadFull(r, text)
	if err != nil {
		return int64(n1 + n2), err
	}
	parsed, err := Parse(string(text), int(d.prec), d.policy)
	if err != nil {
		return int64(n1 + n2), err
	}
	*d = parsed
	return int64(n1 + n2), nil
}

// Scan implements fmt.Scanner, the idiomatic Go analogue of the
// original's fail-bit operator>>(istream&, Decimal&): on a parse error,
// the error is returned and the receiver is left unchanged, exactly as
// this package's stream-input propagation policy requires.
func (d *Decimal) Scan(state fmt.ScanState, verb rune) error {
	state.SkipSpace()
	tok, err := state.Token(false, func(r rune) bool {
		return r == '-' || r == '+' || r == '.' || (r >= '0' && r <= '9')
	})
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return newParseError(ErrNoDigits, "", "", 0)
	}
	parsed, err := Parse(string(tok), int(d.prec), d.policy)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, rendering d the same
// way String does (trailing zeros trimmed). This is the one generic
// (de)serialization hook this package exposes for collaborators such as
// config loaders and cache layers that marshal via the encoding
// interfaces rather than linking against this package's concrete API.
func (d Decimal) MarshalText() ([]byte, error) {
	return d.appendTo(nil, false), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It parses strictly,
// at the receiver's current Precision() and PolicyOf() — callers that
// need a specific precision should zero-value-construct a Decimal with
// New first.
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), int(d.prec), d.policy)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
