package ui

import (
	"strings"
	"testing"
)

func TestPercent(t *testing.T) {
	cases := map[float64]string{
		0:     "0%",
		0.5:   "50%",
		0.666: "67%",
		1:     "100%",
	}
	for in, want := range cases {
		if got := Percent(in); got != want {
			t.Errorf("Percent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestBarWidth(t *testing.T) {
	for _, ratio := range []float64{-0.5, 0, 0.3, 0.5, 1, 2} {
		bar := Bar(ratio, 10)
		cells := strings.Count(bar, "█") + strings.Count(bar, "░")
		if cells != 10 {
			t.Errorf("Bar(%v, 10) has %d cells", ratio, cells)
		}
	}
	if Bar(0.5, 0) != "" {
		t.Error("expected empty bar for zero width")
	}
}

func TestBulletList(t *testing.T) {
	out := BulletList([]string{"one", "two"})
	if !strings.Contains(out, "• one") || !strings.Contains(out, "• two") {
		t.Fatalf("BulletList = %q", out)
	}
}
