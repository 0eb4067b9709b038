package resource

import (
	"fmt"
	"math"
)

// Unit is a binary scale applied to a resource amount.
type Unit string

const (
	UnitNone Unit = ""   // unscaled (bytes for memory)
	UnitMi   Unit = "Mi" // 2^20
	UnitGi   Unit = "Gi" // 2^30
)

// multiplier returns the size of one unit in unscaled units.
func (u Unit) multiplier() int64 {
	switch u {
	case UnitMi:
		return 1 << 20
	case UnitGi:
		return 1 << 30
	default:
		return 1
	}
}

// NormalizeUnit maps a command-line unit suffix to its binary scale.
// M/m and G/g are accepted; an empty suffix means unscaled.
func NormalizeUnit(raw string) (Unit, error) {
	switch raw {
	case "M", "m":
		return UnitMi, nil
	case "G", "g":
		return UnitGi, nil
	case "":
		return UnitNone, nil
	default:
		return UnitNone, &MalformedSpecError{Unit: raw, Reason: "acceptable units are M/G or empty"}
	}
}

// Convert rescales value from one unit to another.
// Down-scaling truncates; up-scaling fails if the result overflows int64.
func Convert(from, to Unit, value int64) (int64, error) {
	if from == to {
		return value, nil
	}
	fm, tm := from.multiplier(), to.multiplier()
	if fm < tm {
		return value / (tm / fm), nil
	}
	factor := fm / tm
	if value > math.MaxInt64/factor {
		return 0, fmt.Errorf("converting %d from '%s' to '%s' will result in an overflow of int64",
			value, from, to)
	}
	return value * factor, nil
}

// ToMebibytes converts a memory amount to the canonical MiB unit.
func ToMebibytes(from Unit, value int64) (int64, error) {
	return Convert(from, UnitMi, value)
}
