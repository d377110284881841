package kata

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available exercises
type Registry struct {
	mu        sync.RWMutex
	exercises map[string]Exercise
}

// NewRegistry creates an empty exercise registry
func NewRegistry() *Registry {
	return &Registry{
		exercises: make(map[string]Exercise),
	}
}

// Register adds an exercise to the registry
func (r *Registry) Register(ex Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := ex.Name()
	if _, exists := r.exercises[name]; exists {
		return fmt.Errorf("exercise %q already registered", name)
	}

	r.exercises[name] = ex
	return nil
}

// Get retrieves an exercise by name
func (r *Registry) Get(name string) (Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ex, exists := r.exercises[name]
	if !exists {
		return nil, fmt.Errorf("exercise %q not found", name)
	}

	return ex, nil
}

// List returns all registered exercises sorted by name
func (r *Registry) List() []Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Exercise, 0, len(r.exercises))
	for _, ex := range r.exercises {
		list = append(list, ex)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Options tunes the behavior of the default exercises
type Options struct {
	IgnoreCase bool
}

// NewDefaultRegistry returns a registry holding every exercise
func NewDefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	for _, ex := range defaultExercises(opts) {
		if err := r.Register(ex); err != nil {
			panic(err)
		}
	}
	return r
}
