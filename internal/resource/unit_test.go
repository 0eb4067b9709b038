package resource

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeUnit(t *testing.T) {
	cases := map[string]Unit{
		"M": UnitMi,
		"m": UnitMi,
		"G": UnitGi,
		"g": UnitGi,
		"":  UnitNone,
	}
	for input, want := range cases {
		got, err := NormalizeUnit(input)
		if err != nil {
			t.Errorf("NormalizeUnit(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeUnit(%q) = %q; want %q", input, got, want)
		}
	}

	for _, bad := range []string{"Mi", "Gi", "MB", "GB", "K", "T", "x"} {
		if _, err := NormalizeUnit(bad); !errors.Is(err, ErrMalformedSpec) {
			t.Errorf("NormalizeUnit(%q) error = %v; want ErrMalformedSpec", bad, err)
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		from, to Unit
		value    int64
		want     int64
	}{
		{UnitGi, UnitMi, 2, 2048},
		{UnitMi, UnitMi, 300, 300},
		{UnitNone, UnitMi, 1 << 20, 1},
		{UnitNone, UnitMi, 1024, 0},
		{UnitNone, UnitMi, 3<<20 + 5, 3},
		{UnitMi, UnitGi, 3072, 3},
		{UnitGi, UnitNone, 1, 1 << 30},
	}
	for _, tt := range tests {
		got, err := Convert(tt.from, tt.to, tt.value)
		if err != nil {
			t.Errorf("Convert(%q, %q, %d) returned error: %v", tt.from, tt.to, tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Convert(%q, %q, %d) = %d; want %d", tt.from, tt.to, tt.value, got, tt.want)
		}
	}
}

func TestConvertOverflow(t *testing.T) {
	if _, err := ToMebibytes(UnitGi, math.MaxInt64/1024+1); err == nil {
		t.Error("expected overflow error")
	}
	got, err := ToMebibytes(UnitGi, math.MaxInt64/1024)
	if err != nil {
		t.Fatalf("unexpected error at the limit: %v", err)
	}
	if got != (math.MaxInt64/1024)*1024 {
		t.Errorf("ToMebibytes at limit = %d", got)
	}
}
