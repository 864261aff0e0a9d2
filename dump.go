package circumflex

import (
	"encoding/gob"
	"io"
)

type dumpEntry[V any] struct {
	Key   string
	Value V
}

// Dump saves cached entries and returns a number of processed entries.
func (c *CacheMap[V]) Dump(w io.Writer) (int, error) {
	encoder := gob.NewEncoder(w)

	return c.Walk(func(key string, value V) error {
		return encoder.Encode(dumpEntry[V]{Key: key, Value: value})
	})
}

// Restore loads cached entries and returns number of processed entries.
func (c *CacheMap[V]) Restore(r io.Reader) (int, error) {
	decoder := gob.NewDecoder(r)
	n := 0

	for {
		var e dumpEntry[V]

		err := decoder.Decode(&e)
		if err == io.EOF {
			break
		}

		if err != nil {
			return n, err
		}

		c.data.Store(e.Key, e.Value)
		n++
	}

	return n, nil
}

// GobRegister enables dump transfer of heterogeneous cached values.
func GobRegister(values ...interface{}) {
	for _, value := range values {
		gob.Register(value)
	}
}

// nolint:gochecknoinits // Registering types to a package level registry of "encoding/gob".
func init() {
	// Registering commonly used types.
	gob.Register(map[string]interface{}{})
	gob.Register([]interface{}{})
}
