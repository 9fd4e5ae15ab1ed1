package model

import "fmt"

// UnknownModelError is returned when a model identifier is not in the
// registry. It is a configuration error and is allowed to propagate to
// callers rather than being swallowed.
type UnknownModelError struct {
	ID string
}

// Error returns a formatted message including the missing identifier.
func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("model: unknown model: %s", e.ID)
}

// Registry is the static model catalog. It is read-only after
// construction and safe to call concurrently from any number of callers.
type Registry struct {
	descriptors map[string]Descriptor
	fx          float64
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithFXMultiplier sets the fixed currency-conversion multiplier applied
// to all computed costs. Default is 1.0 (USD).
func WithFXMultiplier(fx float64) Option {
	return func(r *Registry) {
		r.fx = fx
	}
}

// New creates a registry from the given descriptors. A later descriptor
// with a duplicate ID replaces the earlier one.
func New(descriptors []Descriptor, opts ...Option) *Registry {
	r := &Registry{
		descriptors: make(map[string]Descriptor, len(descriptors)),
		fx:          1.0,
	}
	for _, d := range descriptors {
		r.descriptors[d.ID] = d
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultRegistry creates a registry with the built-in catalog.
func DefaultRegistry(opts ...Option) *Registry {
	return New(Catalog(), opts...)
}

// Resolve returns the descriptor for the given model identifier, or an
// *UnknownModelError if it is not registered.
func (r *Registry) Resolve(id string) (Descriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return Descriptor{}, &UnknownModelError{ID: id}
	}
	return d, nil
}

// IDs returns all registered model identifiers.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.descriptors))
	for id := range r.descriptors {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
