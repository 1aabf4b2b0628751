package money

import "testing"

func TestRounding(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "counter offer", got: Discount(49.99, 0.05), want: 47.49},
		{name: "vat on round amount", got: Percent(100, 0.20), want: 20},
		{name: "vat on pence", got: Percent(49.99, 0.20), want: 10},
		{name: "half up", got: Round(0.125), want: 0.13},
		{name: "add", got: Add(0.1, 0.2), want: 0.3},
		{name: "mul", got: Mul(9.60, 10), want: 96},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, tc.got)
			}
		})
	}
}
