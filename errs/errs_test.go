package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"attr-builder/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapping(t *testing.T) {
	err := errs.Configuration("field %s is %s", "Button.Size", "int")
	assert.ErrorIs(t, err, errs.ErrConfiguration)
	assert.NotErrorIs(t, err, errs.ErrMalformedInput)
	assert.Equal(t, "configuration error: field Button.Size is int", err.Error())

	err = fmt.Errorf("outer: %w", errs.MalformedInput("segment %q", "a:b:c"))
	assert.True(t, errors.Is(err, errs.ErrMalformedInput))

	err = errs.NilArgument("predicate")
	assert.ErrorIs(t, err, errs.ErrNilArgument)
	assert.Equal(t, "nil argument: predicate", err.Error())
}
