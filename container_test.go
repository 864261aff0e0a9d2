package circumflex_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhanglae/circumflex"
)

func TestContainer_typedGetters(t *testing.T) {
	c := circumflex.NewContainer()

	c.Put("s", "hello")
	c.Put("n", "42")
	c.Put("native", 7)
	c.Put("big", "9000000000")
	c.Put("f", "3.5")
	c.Put("b", "true")
	c.Put("flag", false)

	assert.Equal(t, "hello", c.String("s"))
	assert.Equal(t, "7", c.String("native"))

	i, err := c.Int("n")
	assert.NoError(t, err)
	assert.Equal(t, 42, i)

	i, err = c.Int("native")
	assert.NoError(t, err)
	assert.Equal(t, 7, i)

	i64, err := c.Int64("big")
	assert.NoError(t, err)
	assert.Equal(t, int64(9000000000), i64)

	f, err := c.Float64("f")
	assert.NoError(t, err)
	assert.Equal(t, 3.5, f)

	f, err = c.Float64("native")
	assert.NoError(t, err)
	assert.Equal(t, 7.0, f)

	b, err := c.Bool("b")
	assert.NoError(t, err)
	assert.True(t, b)

	b, err = c.Bool("flag")
	assert.NoError(t, err)
	assert.False(t, b)
}

func TestContainer_absentZeroValues(t *testing.T) {
	c := circumflex.NewContainer()

	assert.Equal(t, "", c.String("missing"))

	i, err := c.Int("missing")
	assert.NoError(t, err)
	assert.Equal(t, 0, i)

	i64, err := c.Int64("missing")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), i64)

	f, err := c.Float64("missing")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, f)

	b, err := c.Bool("missing")
	assert.NoError(t, err)
	assert.False(t, b)

	assert.False(t, c.Has("missing"))
}

func TestContainer_badCoercion(t *testing.T) {
	c := circumflex.NewContainer()

	c.Put("n", "not-a-number")
	c.Put("b", "not-a-bool")
	c.Put("f", "not-a-float")

	_, err := c.Int("n")
	assert.True(t, errors.Is(err, circumflex.ErrCoercion))

	_, err = c.Int64("n")
	assert.True(t, errors.Is(err, circumflex.ErrCoercion))

	_, err = c.Bool("b")
	assert.True(t, errors.Is(err, circumflex.ErrCoercion))

	_, err = c.Float64("f")
	assert.True(t, errors.Is(err, circumflex.ErrCoercion))
}

func TestContainer_Date(t *testing.T) {
	c := circumflex.NewContainer()

	c.Put("since", "2021-03-04")
	c.Put("junk", "yesterday")

	d, err := c.Date("since", "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), d)

	// An absent key yields the current time.
	d, err = c.Date("missing", "2006-01-02")
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), d, time.Second)

	_, err = c.Date("junk", "2006-01-02")
	assert.True(t, errors.Is(err, circumflex.ErrParse))

	// A natively stored time is returned as is.
	now := time.Now()
	c.Put("native", now)

	d, err = c.Date("native", "2006-01-02")
	assert.NoError(t, err)
	assert.Equal(t, now, d)
}

func TestAs(t *testing.T) {
	c := circumflex.NewContainer()

	c.Put("list", []int{1, 2, 3})

	l, err := circumflex.As[[]int](c, "list")
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, l)

	_, err = circumflex.As[string](c, "list")
	assert.True(t, errors.Is(err, circumflex.ErrTypeMismatch))

	_, err = circumflex.As[[]int](c, "missing")
	assert.True(t, errors.Is(err, circumflex.ErrKeyNotFound))
}

func TestGetAs(t *testing.T) {
	c := circumflex.NewContainer()

	c.Put("list", []int{1, 2, 3})

	l, ok, err := circumflex.GetAs[[]int](c, "list")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, l)

	_, ok, err = circumflex.GetAs[[]int](c, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = circumflex.GetAs[string](c, "list")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, circumflex.ErrTypeMismatch))
}

func TestContainer_overCacheMap(t *testing.T) {
	cm := circumflex.NewCacheMap[interface{}](nil)
	c := circumflex.NewContainer(cm)

	c.Put("x", "42")

	i, err := c.Int("x")
	assert.NoError(t, err)
	assert.Equal(t, 42, i)

	v, ok := cm.Peek("x")
	assert.True(t, ok)
	assert.Equal(t, "42", v)
}
