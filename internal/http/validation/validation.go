package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

// FromBindError maps a gin bind/validation error to field -> message.
// dst is the bound struct pointer; its form tags name the fields.
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fieldKey(dst, fe.StructField())
			out[key] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	// type mismatches, malformed JSON and the like
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		out["_"] = "Expected a number."
		return out
	}
	out["_"] = "The submitted form is invalid."
	return out
}

// First returns one message, preferring the given field order.
func (fe FieldErrors) First(order ...string) string {
	for _, k := range order {
		if m, ok := fe[k]; ok {
			return m
		}
	}
	for _, m := range fe {
		return m
	}
	return ""
}

// fieldKey names a field the way the client sent it: the form tag, then
// the json tag, then the lowercased Go name.
func fieldKey(dst any, structField string) string {
	fallback := strings.ToLower(structField)

	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fallback
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return fallback
	}

	for _, key := range []string{"form", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fallback
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "min", "gte":
		return "Must be at least " + param + "."
	case "max", "lte":
		return "Must be at most " + param + "."
	case "oneof":
		return "Must be one of: " + param + "."
	case "numeric", "number":
		return "Expected a number."
	default:
		return "Invalid value."
	}
}
