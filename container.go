package circumflex

import (
	"fmt"
	"strconv"
	"time"
)

// Container is a typed-access facade over an untyped string-keyed store.
//
// It holds no state of its own, the underlying store is referenced, not
// copied, so mutations of the store are immediately visible through the
// container. Thread safety is that of the underlying store.
type Container struct {
	store Store
}

// NewContainer creates a Container over an optional store, MapStore by default.
func NewContainer(store ...Store) *Container {
	var s Store

	if len(store) >= 1 && store[0] != nil {
		s = store[0]
	} else {
		s = MapStore{}
	}

	return &Container{store: s}
}

// Store exposes the underlying store.
func (c *Container) Store() Store {
	return c.store
}

// Put sets value under key.
func (c *Container) Put(key string, value interface{}) {
	c.store.Store(key, value)
}

// Has reports whether key is present.
func (c *Container) Has(key string) bool {
	_, ok := c.store.Load(key)

	return ok
}

// String returns the stored value's text representation, "" when absent.
func (c *Container) String(key string) string {
	v, ok := c.store.Load(key)
	if !ok || v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// Bool coerces the stored value to bool, false when absent.
func (c *Container) Bool(key string) (bool, error) {
	v, ok := c.store.Load(key)
	if !ok || v == nil {
		return false, nil
	}

	if b, ok := v.(bool); ok {
		return b, nil
	}

	b, err := strconv.ParseBool(fmt.Sprint(v))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a bool", ErrCoercion, key)
	}

	return b, nil
}

// Int coerces the stored value to int, 0 when absent.
func (c *Container) Int(key string) (int, error) {
	v, ok := c.store.Load(key)
	if !ok || v == nil {
		return 0, nil
	}

	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	}

	i, err := strconv.Atoi(fmt.Sprint(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an int", ErrCoercion, key)
	}

	return i, nil
}

// Int64 coerces the stored value to int64, 0 when absent.
func (c *Container) Int64(key string) (int64, error) {
	v, ok := c.store.Load(key)
	if !ok || v == nil {
		return 0, nil
	}

	switch val := v.(type) {
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	case float64:
		if val == float64(int64(val)) {
			return int64(val), nil
		}
	}

	i, err := strconv.ParseInt(fmt.Sprint(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an int64", ErrCoercion, key)
	}

	return i, nil
}

// Float64 coerces the stored value to float64, 0 when absent.
func (c *Container) Float64(key string) (float64, error) {
	v, ok := c.store.Load(key)
	if !ok || v == nil {
		return 0, nil
	}

	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	}

	f, err := strconv.ParseFloat(fmt.Sprint(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float64", ErrCoercion, key)
	}

	return f, nil
}

// Date parses the stored value's text representation with the given layout.
//
// Absent key returns the current time.
func (c *Container) Date(key, layout string) (time.Time, error) {
	v, ok := c.store.Load(key)
	if !ok || v == nil {
		return time.Now(), nil
	}

	if t, ok := v.(time.Time); ok {
		return t, nil
	}

	t, err := time.Parse(layout, fmt.Sprint(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match layout %q", ErrParse, key, layout)
	}

	return t, nil
}

// As returns the value stored under key asserted to T.
//
// Absent key fails with ErrKeyNotFound, incompatible runtime type fails with
// ErrTypeMismatch. Typed access is package level since Go methods can not be
// generic.
func As[T any](c *Container, key string) (T, error) {
	var zero T

	v, ok := c.store.Load(key)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, key, v)
	}

	return t, nil
}

// GetAs is like As, but an absent key reports false instead of failing.
func GetAs[T any](c *Container, key string) (T, bool, error) {
	var zero T

	v, ok := c.store.Load(key)
	if !ok {
		return zero, false, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, false, fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, key, v)
	}

	return t, true, nil
}

// Instantiate resolves the value stored under key into a live instance of T.
//
// A string value names a Registry entry, any other value is asserted to T
// directly. An absent key or a value of unexpected shape falls back to def,
// which is evaluated lazily. A string value that the registry can not resolve
// is an error, not a fallback.
func Instantiate[T any](c *Container, r *Registry, key string, def func() T) (T, error) {
	var zero T

	v, ok := c.store.Load(key)
	if !ok {
		if def != nil {
			return def(), nil
		}

		return zero, fmt.Errorf("%w for %q", ErrConfiguration, key)
	}

	if name, isName := v.(string); isName {
		inst, err := r.Resolve(name)
		if err != nil {
			return zero, err
		}

		t, ok := inst.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %q resolved to %T", ErrTypeMismatch, name, inst)
		}

		return t, nil
	}

	if t, ok := v.(T); ok {
		return t, nil
	}

	if def != nil {
		return def(), nil
	}

	return zero, fmt.Errorf("%w for %q", ErrConfiguration, key)
}
