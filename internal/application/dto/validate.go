package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/domain"
)

// quantityScale decimales que guardan las columnas NUMERIC(14,3).
const quantityScale = 3

var (
	validate    = validator.New()
	clockTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func init() {
	// decimal.Decimal se valida como número (gt=0, gte=0...).
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Los nombres de campo del error son los del JSON.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockTimeRe.MatchString(fl.Field().String())
	})

	// dec3: como mucho tres decimales, los que persiste la base de datos.
	_ = validate.RegisterValidation("dec3", func(fl validator.FieldLevel) bool {
		d, ok := rawDecimal(fl)
		if !ok {
			return true
		}
		return d.Equal(d.Round(quantityScale))
	})
}

// rawDecimal recupera el decimal original del campo: el custom type func ya lo
// convirtió a float64 y el float perdería dígitos.
func rawDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() == reflect.Struct {
		if f := parent.FieldByName(fl.StructFieldName()); f.IsValid() {
			if d, ok := f.Interface().(decimal.Decimal); ok {
				return d, true
			}
		}
	}
	if fl.Field().Kind() == reflect.Float64 {
		return decimal.NewFromFloat(fl.Field().Float()), true
	}
	return decimal.Decimal{}, false
}

// Validate ejecuta las etiquetas validate del struct y traduce el resultado a
// *domain.ValidationError (campo -> regla incumplida).
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", err.Error())
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), ruleMessage(fe))
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateFragmentRequest.items[0].quantity" -> "items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "obligatorio"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "oneof":
		return "valor no permitido, opciones: " + fe.Param()
	case "datetime":
		return "formato esperado " + fe.Param()
	case "clock":
		return "formato esperado HH:MM"
	case "dec3":
		return "máximo 3 decimales"
	case "min":
		return "mínimo " + fe.Param()
	case "max":
		return "máximo " + fe.Param()
	}
	return fe.Tag()
}
