package resource

import (
	"fmt"
	"sort"
	"strings"
)

// Resource is the per-container resource request handed to the scheduler.
// Memory and vcores are always present; other types appear once set.
type Resource struct {
	values map[string]int64
}

// NewResource creates a resource with the given memory (MiB) and vcores.
func NewResource(memoryMB, vcores int64) *Resource {
	return &Resource{values: map[string]int64{
		MemoryURI: memoryMB,
		VCoresURI: vcores,
	}}
}

// CreateResource parses and validates spec, then builds a Resource from it.
// Types not mentioned in spec keep their zero value.
func CreateResource(spec string, reg Registry) (*Resource, error) {
	m, err := ParseAndValidate(spec, reg)
	if err != nil {
		return nil, err
	}
	r := NewResource(0, 0)
	for name, q := range m {
		r.Set(name, q)
	}
	return r, nil
}

// Set overwrites the value of a resource type.
func (r *Resource) Set(name string, value int64) {
	r.values[name] = value
}

// Get returns the value of a resource type and whether it is set.
func (r *Resource) Get(name string) (int64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// MemoryMB returns the memory amount in MiB.
func (r *Resource) MemoryMB() int64 { return r.values[MemoryURI] }

// VCores returns the number of virtual cores.
func (r *Resource) VCores() int64 { return r.values[VCoresURI] }

// Names returns memory and vcores first, then the remaining types sorted.
func (r *Resource) Names() []string {
	names := []string{MemoryURI, VCoresURI}
	var extra []string
	for name := range r.values {
		if name != MemoryURI && name != VCoresURI {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Amounts returns every value in Names order.
func (r *Resource) Amounts() []Amount {
	return Map(r.values).Amounts(r.Names())
}

// Map returns a copy of the resource values.
func (r *Resource) Map() Map {
	m := make(Map, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

func (r *Resource) String() string {
	parts := make([]string, 0, len(r.values))
	for _, a := range r.Amounts() {
		parts = append(parts, fmt.Sprintf("%s:%d", a.Name, a.Quantity))
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// MarshalYAML renders the resource as a plain name -> value mapping.
func (r *Resource) MarshalYAML() (interface{}, error) {
	return map[string]int64(r.Map()), nil
}
