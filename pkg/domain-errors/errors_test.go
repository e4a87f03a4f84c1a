package domainerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "keymint/pkg/domain-errors"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := dErrors.New(dErrors.CodeValidation, "key is not valid")
	assert.Equal(t, "key is not valid", err.Error())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.False(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := dErrors.Wrap(cause, dErrors.CodeInternal, "operation failed")

	require.ErrorIs(t, err, cause)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Contains(t, err.Error(), "operation failed")
	assert.Contains(t, err.Error(), "root cause")
}

func TestHasCodeSeesThroughWrapping(t *testing.T) {
	inner := dErrors.New(dErrors.CodeValidation, "bad key")
	outer := fmt.Errorf("handling request: %w", inner)
	assert.True(t, dErrors.HasCode(outer, dErrors.CodeValidation))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(errors.New("plain")))
	assert.Equal(t, dErrors.CodeValidation, dErrors.CodeOf(dErrors.New(dErrors.CodeValidation, "x")))
}
