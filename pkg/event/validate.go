package event

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Timestamps validate as their underlying time so "required" rejects zero.
		validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
			if ts, ok := v.Interface().(Timestamp); ok {
				return ts.Time
			}
			return nil
		}, Timestamp{})
	})
	return validate
}

// ValidationError lists the required fields missing from a draft.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "event: missing required field(s): " + strings.Join(e.Fields, ", ")
}

// Validate checks that d has a title, start and end.
func Validate(d Draft) error {
	d.Title = strings.TrimSpace(d.Title)
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
