package models

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrRequired is wrapped by every validation failure.
var ErrRequired = errors.New("required field missing")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requiredFields turns the output of Struct (an error) or ValidateMap
// (a field→error map) into a single ErrRequired naming the fields.
func requiredFields(res any) error {
	var fields []string

	switch r := res.(type) {
	case nil:
		return nil
	case map[string]any:
		for field := range r {
			fields = append(fields, field)
		}
	case error:
		var verrs validator.ValidationErrors
		if !errors.As(r, &verrs) {
			return r
		}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	default:
		return fmt.Errorf("unexpected validation result %T", res)
	}

	if len(fields) == 0 {
		return nil
	}
	sort.Strings(fields)
	return fmt.Errorf("%w: %s", ErrRequired, strings.Join(fields, ", "))
}
