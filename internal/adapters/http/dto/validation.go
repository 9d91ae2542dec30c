package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quotable/internal/domain"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

var (
	// validate is the singleton validator instance.
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance, initialized with
// custom validations on first call.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Use JSON tag names in error messages and field maps
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notempty", validateNotEmpty)
		_ = validate.RegisterValidation("namepair", validateNamePair)
	})

	return validate
}

// Validate validates a struct and converts any failure into the domain
// invalid-payload kind, carrying per-field reasons. Services below the
// adapter never see validator internals.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return domain.NewInvalidPayloadError(fieldErrors(validationErrs))
	}

	return fmt.Errorf("validating request: %w", err)
}

// BindAndValidate binds the JSON body into v and validates it.
// Malformed JSON and schema-shape mismatches surface as the same
// invalid-payload kind as field validation failures, so the transport
// never leaks its own error shape.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return domain.NewInvalidPayloadError(nil)
	}

	return Validate(v)
}

// BindQueryAndValidate binds query parameters into v and validates them.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return domain.NewInvalidPayloadError(nil)
	}

	return Validate(v)
}

// fieldErrors flattens validator failures into a field->reason map.
func fieldErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = validationMessage(fe)
	}

	return fields
}

// validationMessages maps validation tags to reasons. Blank-or-missing
// violations share one message across fields, matching the envelope
// contract for required data.
var validationMessages = map[string]string{
	"required": "Data not provided.",
	"notempty": "Data not provided.",
	"namepair": "Data not provided.",
	"gte":      "must be greater than or equal to {param}",
	"lte":      "must be less than or equal to {param}",
}

func validationMessage(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}

// validateNotEmpty rejects strings that are blank after trimming.
func validateNotEmpty(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateNamePair accepts an AuthorValue only when normalization
// produced a genuine (first, last) pair.
func validateNamePair(fl validator.FieldLevel) bool {
	pair, ok := fl.Field().Interface().(AuthorValue)
	if !ok {
		return false
	}

	return pair.First != "" && pair.Last != ""
}
