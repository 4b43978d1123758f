package apperr

import (
	"github.com/tuanvumaihuynh/product-store/pkg/validator"
	"github.com/tuanvumaihuynh/product-store/pkg/zerror"
)

const (
	ValidationErrorCode   = "VALIDATION_FAILED"
	ProductNotFoundCode   = "PRODUCT_NOT_FOUND"
	ProductIDRequiredCode = "PRODUCT_ID_REQUIRED"
)

var (
	ErrValidation        = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ErrProductNotFound   = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	ErrProductIDRequired = zerror.NewBadRequest(ProductIDRequiredCode, "product has no identifier")
)

// ValidationError wraps parent as a VALIDATION_FAILED error. Struct
// validation failures carry a field-by-field message.
func ValidationError(parent error) zerror.ZError {
	if validator.IsValidationError(parent) {
		return zerror.NewValidationFailed(ValidationErrorCode, validator.ErrorDetails(parent)).WrapParent(parent)
	}
	return ErrValidation.WrapParent(parent)
}
