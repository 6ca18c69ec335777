package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	wefterrors "github.com/weftkit/weft/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// ValidateConfig checks structural rules the YAML schema cannot express.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return wefterrors.NewValidationError("", "empty document", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return wefterrors.NewValidationError(namespaceToPath(fe.Namespace()), messageForTag(fe), err)
		}
		return wefterrors.NewValidationError("", err.Error(), err)
	}

	if cfg.Field.MaxRows > 0 && cfg.Field.MinRows > 0 && cfg.Field.MaxRows < cfg.Field.MinRows {
		return wefterrors.NewValidationError("field.max_rows", "must not be less than field.min_rows", nil)
	}

	return nil
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "hexcolor":
		return "must be a hex colour"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func namespaceToPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the root struct name
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
