package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-store/pkg/validator"
)

type color uint8

func (c color) Validate() error {
	if c > 1 {
		return fmt.Errorf("unknown color: %d", c)
	}
	return nil
}

type paintOrder struct {
	Name    string `validate:"required"`
	Primary color  `validate:"enum"`
}

func TestDefaultValidator(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	t.Run("Should accept a valid struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(paintOrder{Name: "fence", Primary: 1}))
	})

	t.Run("Should report missing required fields", func(t *testing.T) {
		err := v.Validate(paintOrder{Primary: 1})
		require.Error(t, err)

		assert.True(t, validator.IsValidationError(err))
		assert.Contains(t, validator.ErrorDetails(err), "Name field is required")
	})

	t.Run("Should report enum members outside the set", func(t *testing.T) {
		err := v.Validate(paintOrder{Name: "fence", Primary: 7})
		require.Error(t, err)

		assert.True(t, validator.IsValidationError(err))
		assert.Contains(t, validator.ErrorDetails(err), "invalid enum value")
	})
}

func TestErrorDetailsFallsBackForOtherErrors(t *testing.T) {
	err := errors.New("connection refused")

	assert.False(t, validator.IsValidationError(err))
	assert.Equal(t, "connection refused", validator.ErrorDetails(err))
}
