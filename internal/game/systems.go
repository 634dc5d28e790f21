package game

import "context"

// System is a game subsystem that gets updated once per frame.
type System interface {
	Update(ctx context.Context)
}

// SystemRegistry holds named systems and updates them in registration order.
type SystemRegistry struct {
	names   []string
	systems map[string]System
}

// NewSystemRegistry creates an empty registry.
func NewSystemRegistry() *SystemRegistry {
	return &SystemRegistry{systems: make(map[string]System)}
}

// Register adds a system under the given name, replacing any previous system
// with that name but keeping its position in the update order.
func (r *SystemRegistry) Register(name string, system System) {
	if _, exists := r.systems[name]; !exists {
		r.names = append(r.names, name)
	}
	r.systems[name] = system
}

// Get returns the system registered under the given name, or nil.
func (r *SystemRegistry) Get(name string) System {
	return r.systems[name]
}

// Update runs every registered system once, in registration order.
func (r *SystemRegistry) Update(ctx context.Context) {
	for _, name := range r.names {
		r.systems[name].Update(ctx)
	}
}
