package registry

import (
	"fmt"
	"sort"
)

// Catalog indexes the modules compiled into the binary by name, so a view
// config can list modules as strings.
type Catalog struct {
	byName map[string]Descriptor
}

// NewCatalog creates a catalog. A name declared twice is a programming
// error and panics.
func NewCatalog(descriptors ...Descriptor) *Catalog {
	c := &Catalog{byName: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, exists := c.byName[d.Name]; exists {
			panic(fmt.Sprintf("module with name '%s' already registered", d.Name))
		}
		c.byName[d.Name] = d
	}
	return c
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Names returns the sorted catalog names.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry builds a registry from names, keeping their order. Unknown names
// fail with a ResolutionError.
func (c *Catalog) Registry(names ...string) (*Registry, error) {
	descriptors := make([]Descriptor, 0, len(names))
	for _, name := range names {
		d, ok := c.byName[name]
		if !ok {
			return nil, &ResolutionError{Name: name, Err: fmt.Errorf("unknown module, available: %v", c.Names())}
		}
		descriptors = append(descriptors, d)
	}
	return New(descriptors...), nil
}
