package resource

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Registry answers whether a resource name is known to the cluster.
type Registry interface {
	Has(name string) bool
}

// RegistryFunc adapts a plain function to the Registry interface.
type RegistryFunc func(name string) bool

func (f RegistryFunc) Has(name string) bool { return f(name) }

// SetRegistry is a Registry backed by a fixed set of names.
// It is never modified after construction, so it is safe for concurrent use.
type SetRegistry struct {
	names mapset.Set[string]
}

// NewRegistry creates a registry containing the given resource names.
func NewRegistry(names ...string) *SetRegistry {
	return &SetRegistry{names: mapset.NewSet(names...)}
}

// DefaultTypes returns the resource types every cluster exposes.
func DefaultTypes() []string {
	return []string{MemoryURI, VCoresURI, GPUURI, FPGAURI}
}

func (r *SetRegistry) Has(name string) bool {
	return r.names.Contains(name)
}

// Names returns the registered names in sorted order.
func (r *SetRegistry) Names() []string {
	names := r.names.ToSlice()
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *SetRegistry) Len() int {
	return r.names.Cardinality()
}
