package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// AlgorithmFactory creates a fresh instance of a search algorithm. Every
// search gets its own instance; algorithms are not reused across searches.
type AlgorithmFactory func() Algorithm

// UnknownAlgorithmError is returned when an algorithm name is not present in
// the registry.
type UnknownAlgorithmError struct {
	Name      string
	Available []string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown search algorithm %q has been requested, available search algorithms: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// Registry maps human-readable algorithm names to factories. It is built
// explicitly once at startup; there is no dynamic discovery.
type Registry struct {
	entries map[string]AlgorithmFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]AlgorithmFactory{}}
}

// Register adds the given factory under the given name. Registering the same
// name twice is a programming error.
func (r *Registry) Register(name string, factory AlgorithmFactory) {
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("search algorithm %q registered twice", name))
	}
	logrus.WithField("algorithm", name).Debug("search algorithm registered")
	r.entries[name] = factory
}

// Names returns the names of all registered algorithms, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a new instance of the algorithm with the given name. An
// *UnknownAlgorithmError carrying the available names is returned if no such
// algorithm is registered.
func (r *Registry) New(name string) (Algorithm, error) {
	factory, ok := r.entries[name]
	if !ok {
		return nil, &UnknownAlgorithmError{Name: name, Available: r.Names()}
	}
	return factory(), nil
}
