package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve go-playground/validator. Trae el tag date (YYYY-MM-DD);
// los enums del dominio se registran con RegisterEnum.
type Validator struct {
	v        *validator.Validate
	messages map[string]string
}

func New() *Validator {
	v := validator.New()

	// Mensajes con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", strings.TrimSpace(fl.Field().String()))
		return err == nil
	})

	return &Validator{v: v, messages: map[string]string{}}
}

// RegisterEnum agrega un tag que acepta solo los valores dados (comparación exacta).
func (v *Validator) RegisterEnum(tag, message string, allowed ...string) {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	_ = v.v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	})
	v.messages[tag] = message
}

// Error lista los campos inválidos.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: map[string]string{}}
	for _, fe := range verrs {
		out.Fields[fieldPath(fe)] = v.message(fe)
	}
	return out
}

// fieldPath quita el nombre del struct raíz ("createRequest.days[0]" => "days[0]").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func (v *Validator) message(fe validator.FieldError) string {
	if m, ok := v.messages[fe.Tag()]; ok {
		return m
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "date":
		return "must be YYYY-MM-DD"
	default:
		return "is invalid"
	}
}
