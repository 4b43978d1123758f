package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-store/pkg/zerror"
)

func TestZError(t *testing.T) {
	base := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	t.Run("Should expose code, status and message", func(t *testing.T) {
		assert.Equal(t, "PRODUCT_NOT_FOUND", base.Code())
		assert.Equal(t, zerror.StatusNotFound, base.Status())
		assert.Equal(t, "product not found", base.Msg())
		assert.Equal(t, "Code=PRODUCT_NOT_FOUND, Msg=product not found", base.Error())
	})

	t.Run("Should carry a wrapped parent", func(t *testing.T) {
		parent := errors.New("no rows in result set")
		wrapped := base.WrapParent(parent)

		assert.Equal(t, parent, wrapped.Parent())
		assert.Contains(t, wrapped.Error(), "no rows in result set")
	})

	t.Run("Should be recoverable through an error chain", func(t *testing.T) {
		err := fmt.Errorf("get product: %w", base)

		var zerr zerror.ZError
		require.ErrorAs(t, err, &zerr)
		assert.Equal(t, "PRODUCT_NOT_FOUND", zerr.Code())
	})
}
