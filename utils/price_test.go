package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{30 + 30*0.1 + 5, 38.00},
		{0.1 + 0.2, 0.30},
		{12.345678, 12.35},
		{0, 0},
	}

	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
