package decimal64

import (
	"fmt"
	"testing"
)

func TestStringTrimsTrailingZeros(t *testing.T) {
	cases := []struct {
		mant int64
		prec int
		want string
	}{
		{12300, 3, "12.3"},
		{12000, 3, "12"},
		{0, 2, "0"},
		{-500, 2, "-5"},
		{1, 2, "0.01"},
	}
	for _, c := range cases {
		d := MustNew(c.mant, c.prec, PolicyDown)
		if got := d.String(); got != c.want {
			t.Errorf("Decimal{%d,%d}.String() = %q, want %q", c.mant, c.prec, got, c.want)
		}
	}
}

func TestAppendFixedKeepsAllDigits(t *testing.T) {
	d := MustNew(12300, 3, PolicyDown)
	got := string(d.AppendFixed(nil))
	if got != "12.300" {
		t.Errorf("AppendFixed = %q, want %q", got, "12.300")
	}
}

func TestFormatVerbF(t *testing.T) {
	d := MustNew(12300, 3, PolicyDown)
	got := fmt.Sprintf("%f", d)
	if got != "12.300" {
		t.Errorf("Sprintf(%%f) = %q, want %q", got, "12.300")
	}
	got = fmt.Sprintf("%s", d)
	if got != "12.3" {
		t.Errorf("Sprintf(%%s) = %q, want %q", got, "12.3")
	}
	got = fmt.Sprintf("%q", d)
	if got != `"12.3"` {
		t.Errorf("Sprintf(%%q) = %q, want %q", got, `"12.3"`)
	}
}

func TestFormatWidth(t *testing.T) {
	d := MustNew(5, 1, PolicyDown) // "0.5"
	got := fmt.Sprintf("%6s", d)
	if got != "   0.5" {
		t.Errorf("Sprintf(%%6s) = %q, want %q", got, "   0.5")
	}
	got = fmt.Sprintf("%-6s|", d)
	if got != "0.5   |" {
		t.Errorf("Sprintf(%%-6s) = %q, want %q", got, "0.5   |")
	}
}
