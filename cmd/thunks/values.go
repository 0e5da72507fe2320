package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// parseValue converts user input to a value of type t. Slices of scalars
// take comma-separated input.
func parseValue(input string, t reflect.Type) (any, error) {
	v, err := parseInto(strings.TrimSpace(input), t)
	if err != nil {
		return nil, fmt.Errorf("parse %q as %s: %w", input, t, err)
	}
	return v.Interface(), nil
}

func parseInto(input string, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.String:
		out.SetString(input)
	case reflect.Bool:
		b, err := strconv.ParseBool(input)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(input, 0, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(input, 0, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(input, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)
	case reflect.Slice:
		if input == "" {
			return out, nil
		}
		parts := strings.Split(input, ",")
		s := reflect.MakeSlice(t, len(parts), len(parts))
		for i, part := range parts {
			elem, err := parseInto(strings.TrimSpace(part), t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			s.Index(i).Set(elem)
		}
		out.Set(s)
	default:
		return reflect.Value{}, fmt.Errorf("unsupported kind %s", t.Kind())
	}
	return out, nil
}

// formatValue renders a boxed value on one line.
func formatValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return "&" + fmt.Sprintf("%+v", rv.Elem().Interface())
	}
	return fmt.Sprintf("%+v", v)
}
