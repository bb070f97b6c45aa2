package guard_test

import (
	"errors"
	"testing"

	"shipnotice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates the intended embedding pattern.
func TestConstructorGuardUsageExample(t *testing.T) {
	type containerLabel struct {
		code  string
		guard guard.ConstructorGuard
	}

	var errLabelNotConstructed = errors.New("containerLabel must be created via newContainerLabel")

	newContainerLabel := func(code string) (containerLabel, error) {
		if code == "" {
			return containerLabel{}, errors.New("code is required")
		}
		return containerLabel{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_label_is_valid", func(t *testing.T) {
		label, err := newContainerLabel("CTN-0001")

		require.NoError(t, err)
		require.NoError(t, label.guard.Validate(errLabelNotConstructed))
		assert.Equal(t, "CTN-0001", label.code)
	})

	t.Run("zero_value_label_fails_validation", func(t *testing.T) {
		var label containerLabel

		err := label.guard.Validate(errLabelNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errLabelNotConstructed, err)
	})
}
