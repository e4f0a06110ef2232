// Package container is lesson 3: a toy inversion-of-control container. It
// does exactly two things - create objects by registered name and cache them
// as singletons - because that is the irreducible core every real container
// grows from. No dependency graph, no scopes, no cycle detection; see the
// README for what the grown-ups add.
package container

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
)

var (
	ErrBeanNotRegistered = errors.New("bean not registered")
	ErrNameTaken         = errors.New("bean name already registered")
	ErrNotAStruct        = errors.New("prototype must be a struct or pointer to struct")
	ErrNilFactory        = errors.New("factory is nil")
	ErrEmptyName         = errors.New("bean name is empty")
)

// SimpleContainer maps bean names to build recipes and caches the first
// build forever - the cache IS the singleton scope. An RWMutex guards both
// maps; construction happens under the write lock, so concurrent first
// requests for a name build exactly once.
type SimpleContainer struct {
	log *slog.Logger

	mu        sync.RWMutex
	builders  map[string]func() any
	instances map[string]any
}

func NewSimpleContainer(log *slog.Logger) *SimpleContainer {
	return &SimpleContainer{
		log:       log,
		builders:  make(map[string]func() any),
		instances: make(map[string]any),
	}
}

// Register maps a name to the struct type behind prototype; the bean will be
// built as a pointer to that type's zero value (the reflection spelling of
// "default constructor"). Pointer and value prototypes register the same
// type. Re-registering a name and registering a non-struct are mistakes,
// caught here rather than at GetBean time.
func (c *SimpleContainer) Register(name string, prototype any) error {
	t, err := structTypeOf(prototype)
	if err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}
	return c.register(name, func() any {
		return reflect.New(t).Interface()
	})
}

// RegisterFactory maps a name to a build function, for beans whose zero
// value is not usable. The result is still singleton-cached: the factory
// runs at most once.
func (c *SimpleContainer) RegisterFactory(name string, factory func() any) error {
	if factory == nil {
		return fmt.Errorf("registering %q: %w", name, ErrNilFactory)
	}
	return c.register(name, factory)
}

func (c *SimpleContainer) register(name string, build func() any) error {
	if name == "" {
		return ErrEmptyName
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, taken := c.builders[name]; taken {
		return fmt.Errorf("%w: %q", ErrNameTaken, name)
	}
	c.builders[name] = build
	c.log.Debug("bean registered", "name", name)
	return nil
}

// GetBean returns the singleton instance for name, building it on first
// request. Two calls return the same reference; an unregistered name is an
// error.
func (c *SimpleContainer) GetBean(name string) (any, error) {
	c.mu.RLock()
	if instance, ok := c.instances[name]; ok {
		c.mu.RUnlock()
		return instance, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// another goroutine may have built it between the two locks
	if instance, ok := c.instances[name]; ok {
		return instance, nil
	}
	build, ok := c.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBeanNotRegistered, name)
	}
	instance := build()
	c.instances[name] = instance
	c.log.Debug("bean constructed", "name", name, "type", TypeName(instance))
	return instance, nil
}

// MustGetBean is GetBean for wiring code that treats a missing bean as a
// programming error, demos included.
func (c *SimpleContainer) MustGetBean(name string) any {
	instance, err := c.GetBean(name)
	if err != nil {
		panic(err)
	}
	return instance
}

// Names lists every registered bean, sorted, built or not.
func (c *SimpleContainer) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.builders))
	for name := range c.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// structTypeOf unwraps pointers until it finds the struct type, rejecting
// everything else. Registering an interface, func, or int as a prototype has
// no meaningful zero value to hand out.
func structTypeOf(prototype any) (reflect.Type, error) {
	if prototype == nil {
		return nil, ErrNotAStruct
	}
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %s", ErrNotAStruct, t.Kind())
	}
	return t, nil
}

// TypeName reports the concrete type name behind v, pointers unwrapped.
// Purely for narration and log lines.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
