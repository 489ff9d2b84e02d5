package decimal64

import "testing"

func TestPow10(t *testing.T) {
	cases := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 10},
		{5, 100000},
		{18, 1000000000000000000},
	}
	for _, c := range cases {
		if got := Pow10(c.n); got != c.want {
			t.Errorf("Pow10(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestPow10PanicsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 19, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Pow10(%d) did not panic", n)
				}
			}()
			Pow10(n)
		}()
	}
}
