// Package validator wraps go-playground/validator with the tags used across
// blockscope and a standardized multi-error format.
//
// Besides the stock tags it registers:
//
//   - address: exactly 40 hexadecimal characters, no prefix.
//   - hash: at least 32 hexadecimal characters, no prefix.
package validator

import (
	"errors"
	"fmt"

	"github.com/gabapcia/blockscope/internal/pkg/types"

	gvalidator "github.com/go-playground/validator/v10"
)

// AddressLength is the length of a hex-encoded account or validator address.
const AddressLength = 40

// MinHashLength is the shortest hex string accepted as a block or transaction hash.
const MinHashLength = 32

// ErrValidationFailed is the first error in the chain returned when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'Address': value '0x' does not meet the requirements for the 'address' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	must(validator.RegisterValidation("address", func(fl gvalidator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) == AddressLength && types.IsHex(s)
	}))
	must(validator.RegisterValidation("hash", func(fl gvalidator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) >= MinHashLength && types.IsHex(s)
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per failing field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against a tag expression such as "address".
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
