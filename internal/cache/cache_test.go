package cache

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"attr-builder/internal/extract"
	"attr-builder/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type first int

func (first) String() string { return "first" }

type second int

func (second) String() string { return "second" }

func TestShapes_BuildsOncePerType(t *testing.T) {
	var s Shapes[string]
	builds := 0
	build := func(t reflect.Type) (string, error) {
		builds++
		return t.String(), nil
	}

	for range 3 {
		got, err := s.GetOrBuild(reflect.TypeFor[int](), build)
		require.NoError(t, err)
		assert.Equal(t, "int", got)
	}

	got, err := s.GetOrBuild(reflect.TypeFor[string](), build)
	require.NoError(t, err)
	assert.Equal(t, "string", got)

	assert.Equal(t, 2, builds)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())

	_, err = s.GetOrBuild(reflect.TypeFor[int](), build)
	require.NoError(t, err)
	assert.Equal(t, 3, builds)
}

func TestShapes_ErrorsAreNotCached(t *testing.T) {
	var s Shapes[int]
	boom := errors.New("boom")
	calls := 0

	for range 2 {
		_, err := s.GetOrBuild(reflect.TypeFor[int](), func(reflect.Type) (int, error) {
			calls++
			return 0, boom
		})
		assert.ErrorIs(t, err, boom)
	}

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, s.Len())
}

func TestShapes_ConcurrentFirstUse(t *testing.T) {
	var s Shapes[*int]
	var builds atomic.Int32

	const goroutines = 16

	results := make([]*int, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			v, err := s.GetOrBuild(reflect.TypeFor[int](), func(reflect.Type) (*int, error) {
				builds.Add(1)
				n := i
				return &n, nil
			})
			if err == nil {
				results[i] = v
			}
		}()
	}
	wg.Wait()

	// every caller sees the same published value, however many builds raced
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.GreaterOrEqual(t, builds.Load(), int32(1))
	assert.Equal(t, 1, s.Len())
}

func TestSymbols_KeyIncludesType(t *testing.T) {
	var s Symbols

	k1, _ := extract.Symbol(first(1))
	k2, _ := extract.Symbol(second(1))
	require.Equal(t, k1.Value, k2.Value)

	assert.Equal(t, "a", s.GetOrAdd(k1, func() string { return "a" }))
	assert.Equal(t, "b", s.GetOrAdd(k2, func() string { return "b" }))
	assert.Equal(t, "a", s.GetOrAdd(k1, func() string { return "changed" }))
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "changed", s.GetOrAdd(k1, func() string { return "changed" }))
}

func TestSet_Clear(t *testing.T) {
	var set Set

	_, err := set.Classes.GetOrBuild(reflect.TypeFor[struct{ A bool }](), func(t reflect.Type) (extract.ClassExtractor, error) {
		return extract.CompileClass(t, naming.None)
	})
	require.NoError(t, err)

	k, _ := extract.Symbol(first(1))
	set.Symbols.GetOrAdd(k, func() string { return "x" })

	set.Clear()
	assert.Equal(t, 0, set.Classes.Len())
	assert.Equal(t, 0, set.Symbols.Len())
}
