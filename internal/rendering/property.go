package rendering

import (
	"fmt"
	"reflect"
	"strings"

	oerrors "github.com/opmodel/renderings/internal/errors"
)

// PropertyTag is the struct tag that declares a field's property alias:
//
//	Title string `rendering:"pageTitle"`
const PropertyTag = "rendering"

// PropertyAliasOf returns the property alias declared on the field of T
// named by member. member may be a dotted path into nested structs, in which
// case the last field's tag is used.
func PropertyAliasOf[T any](member string) (string, error) {
	return propertyAlias(reflect.TypeFor[T](), member)
}

func propertyAlias(t reflect.Type, member string) (string, error) {
	field, err := lookupField(t, member)
	if err != nil {
		return "", err
	}

	alias, ok := tagAlias(field)
	if !ok {
		return "", fmt.Errorf("%w: tag %q not found on %s.%s",
			oerrors.ErrMissingAnnotation, PropertyTag, TypeName(t), member)
	}
	return alias, nil
}

func lookupField(t reflect.Type, member string) (reflect.StructField, error) {
	if t == nil {
		return reflect.StructField{}, fmt.Errorf("%w: nil type", oerrors.ErrInvalidMember)
	}
	if strings.TrimSpace(member) == "" {
		return reflect.StructField{}, fmt.Errorf("%w: empty member on %s", oerrors.ErrInvalidMember, TypeName(t))
	}

	var field reflect.StructField
	current := t
	for _, name := range strings.Split(member, ".") {
		for current.Kind() == reflect.Pointer {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return reflect.StructField{}, fmt.Errorf("%w: %s is not a struct", oerrors.ErrInvalidMember, current)
		}
		f, ok := current.FieldByName(name)
		if !ok {
			return reflect.StructField{}, fmt.Errorf("%w: %s has no field %q", oerrors.ErrInvalidMember, current, name)
		}
		field = f
		current = f.Type
	}
	return field, nil
}

// tagAlias reads the alias part of a rendering tag; options after a comma
// are ignored and "-" counts as absent.
func tagAlias(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup(PropertyTag)
	if !ok {
		return "", false
	}
	alias, _, _ := strings.Cut(tag, ",")
	alias = strings.TrimSpace(alias)
	if alias == "" || alias == "-" {
		return "", false
	}
	return alias, true
}

// PropertyAliases returns field name -> property alias for every tagged
// top-level field of t (or of the struct t points to). Untagged fields are
// omitted; non-struct types yield an empty map.
func PropertyAliases(t reflect.Type) map[string]string {
	out := make(map[string]string)
	if t == nil {
		return out
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return out
	}
	for _, f := range reflect.VisibleFields(t) {
		if alias, ok := tagAlias(f); ok {
			out[f.Name] = alias
		}
	}
	return out
}
