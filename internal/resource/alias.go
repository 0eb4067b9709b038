package resource

// Canonical resource names understood by the scheduler.
const (
	MemoryURI = "memory-mb"
	VCoresURI = "vcores"
	GPUURI    = "yarn.io/gpu"
	FPGAURI   = "yarn.io/fpga"
)

// conversion says when an amount is rescaled to MiB.
type conversion int

const (
	convertNever  conversion = iota // amount used as typed; unit is checked then dropped
	convertIfUnit                   // rescale only when a unit suffix was given
	convertAlways                   // rescale, treating an empty suffix as unscaled
)

// alias maps a user-facing key to its canonical name and conversion policy.
type alias struct {
	Canonical string
	Convert   conversion
}

// aliases is the closed policy table. Keys missing here pass through unchanged.
var aliases = map[string]alias{
	MemoryURI: {Canonical: MemoryURI, Convert: convertIfUnit},
	"memory":  {Canonical: MemoryURI, Convert: convertAlways},
	"gpu":     {Canonical: GPUURI, Convert: convertNever},
	"fpga":    {Canonical: FPGAURI, Convert: convertNever},
}

func lookupAlias(key string) alias {
	if a, ok := aliases[key]; ok {
		return a
	}
	return alias{Canonical: key, Convert: convertNever}
}

// apply returns the canonical name and amount for key=value with the given unit.
func (a alias) apply(value int64, unit Unit) (string, int64, error) {
	switch a.Convert {
	case convertAlways:
		v, err := ToMebibytes(unit, value)
		return a.Canonical, v, err
	case convertIfUnit:
		if unit == UnitNone {
			return a.Canonical, value, nil
		}
		v, err := ToMebibytes(unit, value)
		return a.Canonical, v, err
	default:
		return a.Canonical, value, nil
	}
}

// Canonicalize returns the canonical resource name for a user-facing key.
func Canonicalize(key string) string {
	return lookupAlias(key).Canonical
}
