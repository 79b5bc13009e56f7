package bitexpr

import (
	"fmt"
	"sort"
	"sync"
)

// Backend computes the result of an operator over two vectors of equal size.
type Backend interface {
	Name() string
	Apply(op Operator, lhs, rhs *BitVector) (*BitVector, error)
}

type BackendFactory func() (Backend, error)

var (
	backendsLock sync.RWMutex
	backends     = map[string]BackendFactory{}
)

func init() {
	RegisterBackend("native", func() (Backend, error) {
		return NativeBackend{}, nil
	})
}

// RegisterBackend makes a backend available to NewBackend under name.
// Registering the same name twice replaces the previous factory.
func RegisterBackend(name string, factory BackendFactory) {
	backendsLock.Lock()
	defer backendsLock.Unlock()

	backends[name] = factory
}

func NewBackend(name string) (Backend, error) {
	backendsLock.RLock()
	factory, ok := backends[name]
	backendsLock.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownBackend, name, Backends())
	}
	return factory()
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	backendsLock.RLock()
	defer backendsLock.RUnlock()

	res := make([]string, 0, len(backends))
	for name := range backends {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// NativeBackend evaluates operators with the BitVector operations.
type NativeBackend struct{}

func (NativeBackend) Name() string {
	return "native"
}

func (NativeBackend) Apply(op Operator, lhs, rhs *BitVector) (*BitVector, error) {
	return op.Apply(lhs, rhs)
}
