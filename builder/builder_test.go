package builder

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"attr-builder/errs"
	"attr-builder/naming"
	"attr-builder/options"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Level int

func (l Level) String() string {
	if l == 1 {
		return "VeryHigh"
	}
	return "Low"
}

type Flags struct {
	IsOpen bool
}

type Mixed struct {
	IsOpen bool
	Count  int
}

func TestNewClasses(t *testing.T) {
	b, err := NewClasses(nil)
	require.NoError(t, err)
	require.NotNil(t, b.Default())

	l, err := b.Create()
	require.NoError(t, err)
	assert.Equal(t, "", l.String())

	_, err = NewClasses(&options.Options{})
	require.ErrorIs(t, err, errs.ErrConfiguration)
}

func TestNewStyles(t *testing.T) {
	b, err := NewStyles(nil)
	require.NoError(t, err)

	s, err := b.Create()
	require.NoError(t, err)
	assert.Equal(t, "", s.String())

	_, err = NewStyles(&options.Options{FieldNamer: naming.None})
	require.ErrorIs(t, err, errs.ErrConfiguration)
}

func TestClasses_Build(t *testing.T) {
	b, err := NewClasses(nil)
	require.NoError(t, err)

	l, err := b.Build("btn", Level(1), Flags{IsOpen: true})
	require.NoError(t, err)
	assert.Equal(t, "btn very-high is-open", l.String())

	l, err = b.Build("btn", Mixed{})
	require.ErrorIs(t, err, errs.ErrConfiguration)
	assert.Nil(t, l)

	assert.Panics(t, func() { b.MustBuild(Mixed{}) })
	assert.Equal(t, "a", b.MustBuild("a").String())
}

func TestStyles_Build(t *testing.T) {
	b, err := NewStyles(nil)
	require.NoError(t, err)

	s, err := b.Build("width:100px", map[string]any{"style": "height: 200px "})
	require.NoError(t, err)
	assert.Equal(t, "width:100px;height:200px", s.String())

	_, err = b.Build("height")
	require.ErrorIs(t, err, errs.ErrMalformedInput)
}

func TestClasses_CreateWithUsesSeparateCaches(t *testing.T) {
	b, err := NewClasses(nil)
	require.NoError(t, err)

	custom := &options.Options{FieldNamer: naming.None, SymbolNamer: naming.None}

	def, err := b.Create()
	require.NoError(t, err)
	require.NoError(t, def.AddMultiple(Level(1), Flags{IsOpen: true}))

	other, err := b.CreateWith(custom)
	require.NoError(t, err)
	require.NoError(t, other.AddMultiple(Level(1), Flags{IsOpen: true}))

	fallback, err := b.CreateWith(nil)
	require.NoError(t, err)
	require.NoError(t, fallback.AddMultiple(Level(1)))

	assert.Equal(t, "very-high is-open", def.String())
	assert.Equal(t, "VeryHigh IsOpen", other.String())
	assert.Equal(t, "very-high", fallback.String())

	classes, _, symbols := b.Default().CacheStats()
	assert.Equal(t, 1, classes)
	assert.Equal(t, 1, symbols)

	classes, _, symbols = custom.CacheStats()
	assert.Equal(t, 1, classes)
	assert.Equal(t, 1, symbols)
}

func TestClasses_StaleNamesUntilClearCache(t *testing.T) {
	b, err := NewClasses(nil)
	require.NoError(t, err)

	assert.Equal(t, "very-high is-open", b.MustBuild(Level(1), Flags{IsOpen: true}).String())

	b.Default().SymbolNamer = naming.None
	b.Default().FieldNamer = naming.UnderscoreToHyphen
	assert.Equal(t, "very-high is-open", b.MustBuild(Level(1), Flags{IsOpen: true}).String())

	b.ClearCache()
	assert.Equal(t, "VeryHigh IsOpen", b.MustBuild(Level(1), Flags{IsOpen: true}).String())
}

func TestStyles_ClearCache(t *testing.T) {
	b, err := NewStyles(nil)
	require.NoError(t, err)

	value := struct{ FontSize string }{"1em"}
	assert.Equal(t, "font-size:1em", b.MustBuild(value).String())

	b.Default().FieldNamer = naming.None
	b.ClearCache()
	assert.Equal(t, "FontSize:1em", b.MustBuild(value).String())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b, err := NewClasses(nil, WithLogger(logger))
	require.NoError(t, err)
	assert.Same(t, logger, b.Default().Logger)

	b.MustBuild(Flags{IsOpen: true})
	b.ClearCache()

	assert.Contains(t, buf.String(), "compiling class extractor")
	assert.Contains(t, buf.String(), "caches cleared")
}

func TestClasses_ConcurrentBuilds(t *testing.T) {
	opts := options.Default()
	opts.Deduplicate = true

	b, err := NewClasses(opts)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if i%16 == 0 {
				b.ClearCache()
			}

			l, err := b.Build("is-open", Flags{IsOpen: true}, Level(1), Level(0))
			if assert.NoError(t, err) {
				assert.Equal(t, "is-open very-high low", l.String())
			}
		}()
	}
	wg.Wait()
}
