package extract

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"attr-builder/errs"
	"attr-builder/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	name string
	on   bool
}

func collectClasses(t *testing.T, v any, namer naming.Converter) []pair {
	t.Helper()

	rv, ok := Record(v)
	require.True(t, ok)

	ex, err := CompileClass(rv.Type(), namer)
	require.NoError(t, err)

	var out []pair
	ex(rv, func(class string, on bool) {
		out = append(out, pair{class, on})
	})

	return out
}

type Inner struct {
	Nested bool
}

type outer struct {
	*Inner
	IsOpen   bool
	Disabled bool `attr:"is-disabled"`
	Skipped  bool `attr:"-"`
	_        int
}

func TestCompileClass(t *testing.T) {
	got := collectClasses(t, struct {
		alfa      bool
		Beta_Gama bool
	}{alfa: true}, naming.KebabCaseWithUnderscoreToHyphen)

	assert.Equal(t, []pair{{"alfa", true}, {"beta--gama", false}}, got)
}

func TestCompileClass_TagsAndEmbedding(t *testing.T) {
	got := collectClasses(t, &outer{Inner: &Inner{Nested: true}, IsOpen: true}, naming.KebabCase)
	assert.Equal(t, []pair{{"nested", true}, {"is-open", true}, {"is-disabled", false}}, got)

	// nil embedded pointer: promoted fields are skipped
	got = collectClasses(t, outer{Disabled: true}, naming.KebabCase)
	assert.Equal(t, []pair{{"is-open", false}, {"is-disabled", true}}, got)
}

func TestCompileClass_NamesConvertedOnce(t *testing.T) {
	calls := 0
	namer := func(d naming.Descriptor) string {
		calls++
		return strings.ToUpper(d.Name)
	}

	ex, err := CompileClass(reflect.TypeFor[flags](), namer)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	for range 3 {
		ex(reflect.ValueOf(flags{Active: true}), func(class string, on bool) {
			assert.Equal(t, "ACTIVE", class)
			assert.True(t, on)
		})
	}
	assert.Equal(t, 1, calls)
}

func TestCompileClass_RejectsNonBool(t *testing.T) {
	type button struct {
		Active bool
		Size   int
	}

	_, err := CompileClass(reflect.TypeFor[button](), naming.None)
	require.ErrorIs(t, err, errs.ErrConfiguration)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "button", fieldErr.Shape)
	assert.Equal(t, "Size", fieldErr.Field)
	assert.Equal(t, reflect.TypeFor[int](), fieldErr.Type)
	assert.Contains(t, err.Error(), "button.Size")
}

func TestCompileClass_InvalidInput(t *testing.T) {
	_, err := CompileClass(reflect.TypeFor[int](), naming.None)
	assert.ErrorIs(t, err, errs.ErrConfiguration)

	_, err = CompileClass(reflect.TypeFor[flags](), nil)
	assert.ErrorIs(t, err, errs.ErrConfiguration)
}

func TestCompileStyle(t *testing.T) {
	type box struct {
		BorderWidth       string
		Height            *string
		ZIndex            int
		Color             color
		_webkitTransition string
		Hidden            any
	}

	rv := reflect.ValueOf(box{BorderWidth: "1px", ZIndex: 3, Color: colorRed, _webkitTransition: "ease"})
	ex, err := CompileStyle(rv.Type(), naming.KebabCaseWithUnderscoreToHyphen)
	require.NoError(t, err)

	var got []string
	err = ex(rv, func(property, value string) error {
		got = append(got, property+":"+value)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"border-width:1px", "z-index:3", "color:Red", "-webkit-transition:ease"}, got)
}

func TestCompileStyle_UnexportedFieldsRenderLikeExported(t *testing.T) {
	type timing struct {
		width *string
		delay time.Duration
		tone  color
		Width *string
		Delay time.Duration
	}

	w := "10px"
	value := timing{width: &w, delay: time.Second, tone: colorBlue, Width: &w, Delay: time.Second}

	ex, err := CompileStyle(reflect.TypeFor[timing](), naming.None)
	require.NoError(t, err)

	for _, rv := range []reflect.Value{reflect.ValueOf(value), reflect.ValueOf(&value).Elem()} {
		var got []string
		err = ex(rv, func(property, value string) error {
			got = append(got, property+":"+value)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"width:10px", "delay:1s", "tone:Blue", "Width:10px", "Delay:1s"}, got)
	}
}

func TestCompileStyle_EmitErrorStops(t *testing.T) {
	type box struct{ A, B string }

	ex, err := CompileStyle(reflect.TypeFor[box](), naming.None)
	require.NoError(t, err)

	calls := 0
	err = ex(reflect.ValueOf(box{"1", "2"}), func(string, string) error {
		calls++
		return errs.MalformedInput("stop")
	})
	assert.ErrorIs(t, err, errs.ErrMalformedInput)
	assert.Equal(t, 1, calls)
}
