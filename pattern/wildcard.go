package pattern

import (
	"reflect"

	"github.com/pkg/errors"
)

// Wildcard is a pattern which matches a whole category of values.
// The set of wildcards is closed; a Wildcard never equals any user data.
type Wildcard uint8

// Wildcards. Any matches every value but an undefined one.
// AnyObject matches maps and structs, but no slices or arrays.
const (
	Any Wildcard = iota + 1
	AnyString
	AnyNumber
	AnyBoolean
	AnyObject
	AnyArray
	AnyFunction
)

var wildcardNames = [...]string{"?", "Any", "AnyString", "AnyNumber", "AnyBoolean",
	"AnyObject", "AnyArray", "AnyFunction"}

func (w Wildcard) String() string {
	if int(w) < len(wildcardNames) {
		return wildcardNames[w]
	}
	return wildcardNames[0]
}

// ErrNoCanonicalForm is returned when marshaling wildcards or symbols, which
// have no serialized representation.
var ErrNoCanonicalForm = errors.New("value has no canonical serialized form")

// MarshalJSON refuses to serialize w. Strict patterns therefore never match
// values containing wildcards.
func (w Wildcard) MarshalJSON() ([]byte, error) {
	return nil, errors.Wrap(ErrNoCanonicalForm, w.String())
}

func (w Wildcard) matches(v reflect.Value) bool {
	k := kindOfValue(v)
	switch w {
	case Any:
		return k != Undefined
	case AnyString:
		return k == String
	case AnyNumber:
		return k == Number
	case AnyBoolean:
		return k == Bool
	case AnyObject:
		return k == Mapping
	case AnyArray:
		return k == Sequence
	case AnyFunction:
		return k == Function
	}
	return false
}
