package circumflex_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zhanglae/circumflex"
)

func TestReloader_Reload(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, "cx.yaml", "greeting: hello\n")

	cfg := circumflex.NewConfig(circumflex.ConfigOptions{Dir: dir})

	cache := circumflex.NewCacheMap(func(_ context.Context, key string) (string, error) {
		return cfg.String(key), nil
	})

	ctx := context.Background()

	v, err := cache.Get(ctx, "greeting")
	assert.NoError(t, err)
	assert.Equal(t, "hello", v)

	r := &circumflex.Reloader{}

	err = r.Reload()
	assert.Error(t, err) // nothing to reload

	r.Callbacks = append(r.Callbacks, cfg.Reload, func() error {
		cache.RemoveAll()

		return nil
	})

	writeResource(t, dir, "cx.yaml", "greeting: hi\n")

	assert.NoError(t, r.Reload())

	v, err = cache.Get(ctx, "greeting")
	assert.NoError(t, err)
	assert.Equal(t, "hi", v)

	err = r.Reload()
	assert.True(t, errors.Is(err, circumflex.ErrAlreadyReloaded))
}

func TestReloader_Reload_callbackFailure(t *testing.T) {
	errBroken := errors.New("broken")

	r := &circumflex.Reloader{
		SkipInterval: time.Nanosecond,
		Callbacks: []func() error{
			func() error { return errBroken },
		},
	}

	assert.Equal(t, errBroken, r.Reload())
}
