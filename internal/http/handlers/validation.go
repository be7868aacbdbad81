package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/beerstock/internal/models"
)

type BeerValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("beertype", func(fl validator.FieldLevel) bool {
		return models.BeerType(fl.Field().String()).Valid()
	})
	return v
}

func validateBeer(req BeerRequest) []BeerValidationError {
	errs := validationErrors(validate.Struct(req))
	if req.Max != nil && req.Quantity != nil && *req.Quantity > *req.Max {
		errs = append(errs, BeerValidationError{
			Field:       "quantity",
			Description: fmt.Sprintf("quantity must not exceed max (%d)", *req.Max),
		})
	}
	return errs
}

func validateQuantity(req QuantityRequest) []BeerValidationError {
	return validationErrors(validate.Struct(req))
}

func validateCredentials(req CredentialsRequest) []BeerValidationError {
	return validationErrors(validate.Struct(req))
}

func validationErrors(err error) []BeerValidationError {
	errs := []BeerValidationError{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}

	for _, fe := range ve {
		field := fe.Field()
		var desc string
		switch fe.Tag() {
		case "required":
			desc = fmt.Sprintf("%s is required", field)
		case "min":
			if fe.Kind() == reflect.String {
				desc = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
			} else {
				desc = fmt.Sprintf("%s must be at least %s", field, fe.Param())
			}
		case "max":
			if fe.Kind() == reflect.String {
				desc = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
			} else {
				desc = fmt.Sprintf("%s must be at most %s", field, fe.Param())
			}
		case "gte":
			desc = fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
		case "lte":
			desc = fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
		case "beertype":
			desc = fmt.Sprintf("%s must be one of %s", field, beerTypeList())
		default:
			desc = fmt.Sprintf("%s is invalid", field)
		}
		errs = append(errs, BeerValidationError{Field: field, Description: desc})
	}
	return errs
}

func beerTypeList() string {
	names := make([]string, len(models.BeerTypes))
	for i, t := range models.BeerTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
