package pattern

import (
	"reflect"
	"strings"
)

// Kind classifies values the way the comparator sees them.
type Kind uint8

// Kinds of values. Undefined is the kind of an absent value.
const (
	Undefined Kind = iota
	Null
	Bool
	Number
	String
	Symbolic
	Sequence
	Mapping
	Function
	Other
)

var kindNames = [...]string{"undefined", "null", "bool", "number", "string",
	"symbol", "sequence", "mapping", "function", "other"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// KindOf returns the kind of v.
func KindOf(v any) Kind {
	return kindOfValue(reflect.ValueOf(v))
}

var (
	symbolType   = reflect.TypeOf((*Symbol)(nil))
	wildcardType = reflect.TypeOf(Any)
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

func kindOfValue(v reflect.Value) Kind {
	if !v.IsValid() {
		return Undefined
	}
	v = unwrap(v)
	if v.Type() == symbolType || v.Type() == wildcardType {
		return Symbolic
	}
	switch v.Kind() {
	case reflect.Interface:
		return Null // unwrap leaves nil interfaces only
	case reflect.Bool:
		return Bool
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map, reflect.Struct:
		return Mapping
	case reflect.Func:
		if v.IsNil() {
			return Null
		}
		return Function
	case reflect.Pointer:
		if v.IsNil() {
			return Null
		}
		if isContainer(v.Type().Elem()) {
			return kindOfValue(v.Elem())
		}
		return Other
	}
	if isNumber(v.Kind()) {
		return Number
	}
	return Other
}

// unwrap strips non-nil interfaces from v.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// settle strips interfaces and pointers to containers from v, leaving a value
// which may be indexed by keys.
func settle(v reflect.Value) reflect.Value {
	v = unwrap(v)
	for v.IsValid() && v.Kind() == reflect.Pointer && !v.IsNil() && isContainer(v.Type().Elem()) {
		v = unwrap(v.Elem())
	}
	return v
}

func isContainer(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return t != symbolType.Elem()
	}
	return false
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

// interfaceOf returns v as an interface value. Absent values and values we may
// not access are returned as nil.
func interfaceOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}

// --- Numbers ---------------------------------------------------------------

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// numericEqual compares two numbers by value, regardless of their Go types.
func numericEqual(a, b reflect.Value) bool {
	ak, bk := a.Kind(), b.Kind()
	switch {
	case isInt(ak) && isInt(bk):
		return a.Int() == b.Int()
	case isUint(ak) && isUint(bk):
		return a.Uint() == b.Uint()
	case isInt(ak) && isUint(bk):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUint(ak) && isInt(bk):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
	return toFloat(a) == toFloat(b)
}

func toFloat(v reflect.Value) float64 {
	switch k := v.Kind(); {
	case isInt(k):
		return float64(v.Int())
	case isUint(k):
		return float64(v.Uint())
	}
	return v.Float()
}

// convertLossless converts v to type t if this does not change its value.
// Only numbers, strings and bools are converted.
func convertLossless(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	vk, tk := v.Kind(), t.Kind()
	switch {
	case vk == reflect.String && tk == reflect.String, vk == reflect.Bool && tk == reflect.Bool:
		return v.Convert(t), true
	case isNumber(vk) && isNumber(tk):
		if isUint(tk) && ((isInt(vk) && v.Int() < 0) || (isFloat(vk) && v.Float() < 0)) {
			return reflect.Value{}, false
		}
		c := v.Convert(t)
		if numericEqual(c, v) {
			return c, true
		}
	}
	return reflect.Value{}, false
}

// --- Keys ------------------------------------------------------------------

// lookup returns the element of mapping-like value m at key, and whether it is present.
func lookup(m reflect.Value, key reflect.Value) (reflect.Value, bool) {
	switch m.Kind() {
	case reflect.Map:
		k, ok := mapKey(key, m.Type().Key())
		if !ok {
			return reflect.Value{}, false
		}
		e := m.MapIndex(k)
		return e, e.IsValid()
	case reflect.Struct:
		key = unwrap(key)
		if key.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		f, ok := fieldByKey(m.Type(), key.String())
		if !ok {
			return reflect.Value{}, false
		}
		e, err := m.FieldByIndexErr(f.Index)
		return e, err == nil
	case reflect.Slice, reflect.Array:
		key = unwrap(key)
		var i int
		switch k := key.Kind(); {
		case isInt(k):
			i = int(key.Int())
		case isUint(k):
			i = int(key.Uint())
		default:
			return reflect.Value{}, false
		}
		if i < 0 || i >= m.Len() {
			return reflect.Value{}, false
		}
		return m.Index(i), true
	}
	return reflect.Value{}, false
}

func mapKey(key reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if key.Type().AssignableTo(t) {
		return key, true
	}
	return convertLossless(unwrap(key), t)
}

// fieldByKey finds an exported field by json tag name, then by Go name.
func fieldByKey(t reflect.Type, key string) (reflect.StructField, bool) {
	var byName reflect.StructField
	var found bool
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous && f.Type.Kind() == reflect.Struct {
			continue
		}
		if jsonName(f) == key {
			return f, true
		}
		if !found && f.Name == key {
			byName, found = f, true
		}
	}
	return byName, found
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
