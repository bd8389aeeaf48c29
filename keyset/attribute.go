package keyset

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/keyset/types"
)

// Attribute resolves a named attribute off a member. Resolution order: the
// member's own AttributeGetter, a map entry, a struct field (exact name, then
// case-insensitive), then a zero-argument single-result method. A resolved
// value implementing types.Unwrapper is unwrapped to its raw value, so
// consumers (filter, sort, grouping, search) never see the wrapper. An
// unresolvable attribute yields nil.
func Attribute(member any, field string) any {
	return unwrap(rawAttribute(member, field))
}

func unwrap(v any) any {
	if u, ok := v.(types.Unwrapper); ok {
		return u.Unwrap()
	}
	return v
}

func rawAttribute(member any, field string) any {
	if g, ok := member.(types.AttributeGetter); ok {
		return g.Attribute(field)
	}
	if m, ok := member.(map[string]any); ok {
		return m[field]
	}

	rv := reflect.ValueOf(member)
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	// Methods bind to the original (possibly pointer) value.
	if v, ok := callAccessor(rv, field); ok {
		return v
	}

	elem := rv
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			v := elem.MapIndex(reflect.ValueOf(field))
			if v.IsValid() {
				return v.Interface()
			}
		}
	case reflect.Struct:
		if f := elem.FieldByName(field); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
		if f := elem.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, field)
		}); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	}
	return nil
}

// callAccessor invokes a zero-argument, single-result method named field (or
// its exported capitalization) on v.
func callAccessor(v reflect.Value, field string) (any, bool) {
	for _, name := range []string{field, exportedName(field)} {
		m := v.MethodByName(name)
		if !m.IsValid() {
			continue
		}
		t := m.Type()
		if t.NumIn() != 0 || t.NumOut() != 1 {
			continue
		}
		return m.Call(nil)[0].Interface(), true
	}
	return nil, false
}

func exportedName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// attributeNames lists the attributes a member exposes for enumeration:
// map keys (sorted for determinism) or exported struct field names in
// declaration order. Members that only expose attributes through methods or
// an AttributeGetter enumerate nothing; callers must name fields explicitly
// for those.
func attributeNames(member any) []string {
	rv := reflect.ValueOf(member)
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		names := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			names = append(names, k.String())
		}
		sort.Strings(names)
		return names
	case reflect.Struct:
		t := rv.Type()
		names := make([]string, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				names = append(names, f.Name)
			}
		}
		return names
	}
	return nil
}

// isEmptyValue reports whether a discriminant value is empty: nil, an empty
// string, a zero number, or false.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}

// valueToString converts an attribute value to a string for comparison and
// grouping. Datetime values are normalized to RFC3339Nano so differently
// formatted timestamps compare consistently.
func valueToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case string:
		for _, format := range []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05Z",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if t, err := time.Parse(format, v); err == nil {
				return t.Format(time.RFC3339Nano)
			}
		}
		return v
	default:
		return fmt.Sprintf("%v", value)
	}
}

// compareValues orders two attribute values: numerically when both parse as
// numbers, by normalized string otherwise. Returns -1, 0 or 1.
func compareValues(a, b any) int {
	sa, sb := valueToString(a), valueToString(b)
	fa, errA := strconv.ParseFloat(sa, 64)
	fb, errB := strconv.ParseFloat(sb, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}
