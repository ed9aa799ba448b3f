package viewmodels

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/opmodel/renderings/internal/content"
	"github.com/opmodel/renderings/internal/rendering"
)

// idKey feeds the content id into an untagged ID field.
const idKey = "ID"

// newModel creates a *T, copies the content id into an ID field when
// present, and binds tagged fields from content properties. Missing or nil
// properties leave the zero value.
func newModel[T any](c content.Content) (*T, error) {
	m := new(T)
	input := map[string]any{idKey: c.ID()}
	for _, alias := range rendering.PropertyAliases(reflect.TypeFor[T]()) {
		if raw, ok := c.Value(alias); ok && raw != nil {
			input[alias] = raw
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    rendering.PropertyTag,
		Result:     m,
		DecodeHook: mapstructure.DecodeHookFuncType(exactNumber),
		MatchName:  func(key, field string) bool { return key == field },
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(input); err != nil {
		return nil, fmt.Errorf("binding %s from content %d: %w", reflect.TypeFor[T](), c.ID(), err)
	}
	return m, nil
}

// exactNumber converts between numeric kinds only when the value survives
// the conversion unchanged. Float to float and integer to float are passed
// through.
func exactNumber(from, to reflect.Type, data any) (any, error) {
	if from == to || !isNumber(from.Kind()) || !isNumber(to.Kind()) || isFloat(to.Kind()) {
		return data, nil
	}

	src := reflect.ValueOf(data)
	target := reflect.New(to).Elem()
	var overflow bool
	switch {
	case isFloat(from.Kind()):
		f := src.Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("%v is not a whole number, cannot store in %s", data, to)
		}
		if isUnsigned(to.Kind()) {
			overflow = f < 0 || f >= math.MaxUint64 || target.OverflowUint(uint64(f))
		} else {
			overflow = f < math.MinInt64 || f >= math.MaxInt64 || target.OverflowInt(int64(f))
		}
	case isUnsigned(from.Kind()):
		u := src.Uint()
		if isUnsigned(to.Kind()) {
			overflow = target.OverflowUint(u)
		} else {
			overflow = u > math.MaxInt64 || target.OverflowInt(int64(u))
		}
	default:
		i := src.Int()
		if isUnsigned(to.Kind()) {
			overflow = i < 0 || target.OverflowUint(uint64(i))
		} else {
			overflow = target.OverflowInt(i)
		}
	}
	if overflow {
		return nil, fmt.Errorf("%v does not fit in %s", data, to)
	}
	return src.Convert(to).Interface(), nil
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return isUnsigned(k) || isFloat(k)
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
