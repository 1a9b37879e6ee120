package clock

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"15m", 15 * time.Minute},
		{"2h", 2 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"0s", 0},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "d", "10", "10w", "-5m", "x1h", "1.5h"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) must fail", in)
		}
	}
}

func TestSystem_Add(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	got, err := System{}.Add(base, "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := base.Add(24 * time.Hour); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, err := (System{}).Add(base, "1y"); err == nil {
		t.Fatal("an unknown unit must fail")
	}
}

func TestSystem_NowIsUTC(t *testing.T) {
	if loc := (System{}).Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}
