package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/asset-tracker/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator настраивает validator: имена полей из json-тегов и правило ddmmyyyy
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
		_, err := domain.NormalizeDate(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			return domain.IsFinite(fl.Field().Float())
		}
		return true
	})

	return v
}

// validateStruct проверяет структуру и переводит первую ошибку в domain.ValidationError
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(fe.Field(), "is required")
	case "ddmmyyyy":
		return domain.NewValidationError(fe.Field(), "must be a DD-MM-YYYY date")
	case "finite":
		return domain.NewValidationError(fe.Field(), "must be a number")
	default:
		return domain.NewValidationError(fe.Field(), "failed "+fe.Tag()+" check")
	}
}

// normalizedDate - domain.NormalizeDate для уже проверенного значения
func normalizedDate(s string) string {
	d, err := domain.NormalizeDate(s)
	if err != nil {
		return s
	}
	return d
}
