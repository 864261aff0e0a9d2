package circumflex

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bool64/ctxd"
	"gopkg.in/yaml.v3"
)

// ResourceName is the base name of the bootstrap resource.
const ResourceName = "cx"

// resourceFiles lists bootstrap candidates in lookup order.
var resourceFiles = []string{
	ResourceName + ".yaml",
	ResourceName + ".yml",
	ResourceName + ".json",
}

// ConfigOptions is optional configuration for NewConfig.
type ConfigOptions struct {
	// Dir is the directory searched for the bootstrap resource, "." by default.
	Dir string

	// Store backs the container, a synchronized store by default.
	Store Store

	// Logger collects messages with context.
	Logger ctxd.Logger
}

// Config is the process-wide configuration instance.
//
// Construct one at process start and pass it to the components that need it.
// Bootstrap failure is logged and leaves the configuration empty, construction
// never fails.
type Config struct {
	*Container

	options ConfigOptions
	log     ctxd.Logger
}

// NewConfig creates a Config and loads the bootstrap resource.
func NewConfig(opts ...ConfigOptions) *Config {
	options := ConfigOptions{}

	if len(opts) >= 1 {
		options = opts[0]
	}

	if options.Dir == "" {
		options.Dir = "."
	}

	s := options.Store
	if s == nil {
		s = NewSyncStore()
	}

	c := &Config{
		Container: NewContainer(s),
		options:   options,
		log:       options.Logger,
	}

	if err := c.Reload(); err != nil && c.log != nil {
		c.log.Warn(context.Background(), "failed to load bootstrap resource",
			"error", err,
			"resource", ResourceName,
			"dir", options.Dir)
	}

	return c
}

// Reload re-reads the bootstrap resource into the container.
//
// Existing keys are overwritten, keys no longer present in the resource are
// kept. Nested maps are flattened to dot-separated keys.
func (c *Config) Reload() error {
	path := ""

	for _, name := range resourceFiles {
		p := filepath.Join(c.options.Dir, name)
		if _, err := os.Stat(p); err == nil {
			path = p

			break
		}
	}

	if path == "" {
		return fmt.Errorf("%w: no %s resource in %q", ErrResourceLoad, ResourceName, c.options.Dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResourceLoad, err)
	}

	var m map[string]interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	case ".json":
		err = json.Unmarshal(data, &m)
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrResourceLoad, err)
	}

	n := 0

	flatten("", m, func(key string, value interface{}) {
		c.store.Store(key, value)
		n++
	})

	if c.log != nil {
		c.log.Debug(context.Background(), "loaded bootstrap resource",
			"path", path,
			"keys", n)
	}

	return nil
}

// flatten renders nested maps as dot-separated keys.
func flatten(prefix string, m map[string]interface{}, emit func(key string, value interface{})) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]interface{}); ok {
			flatten(key, nested, emit)

			continue
		}

		emit(key, v)
	}
}
