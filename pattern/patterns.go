package pattern

import (
	"bytes"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/npillmayer/pmatch/result"
)

// Predicate is a pattern which matches if it returns true for a value.
type Predicate func(any) bool

// --- Composition -----------------------------------------------------------

// Composed is a conjunction of patterns, see Compose.
type Composed struct {
	patterns []any
}

// Compose returns a pattern which matches if all of patterns match. Patterns are
// tested left to right, and testing stops at the first one which does not match:
//
//     pattern.Compose(pattern.AnyNumber, func(x int) bool { return x > 5 })
//
// An empty composition matches every value.
func Compose(patterns ...any) Composed {
	ps := make([]any, len(patterns))
	copy(ps, patterns)
	return Composed{patterns: ps}
}

// Patterns returns the sub-patterns of c.
func (c Composed) Patterns() []any {
	ps := make([]any, len(c.patterns))
	copy(ps, c.patterns)
	return ps
}

func (c Composed) matches(v reflect.Value) bool {
	for _, p := range c.patterns {
		if !compare(p, v) {
			return false
		}
	}
	return true
}

// --- Strict equality -------------------------------------------------------

// StrictPattern requests exact equality instead of partial matching, see Strict.
type StrictPattern struct {
	value any
	canon []byte // canonical serialization of value
	err   error  // value cannot be serialized
}

// Strict wraps value into a pattern which matches only values deeply equal to it.
// Equality is judged by canonical JSON serialization: maps must have exactly the
// same keys, and no wildcards or predicates are expanded inside value.
// A Symbol wrapped directly matches only itself.
func Strict(value any) StrictPattern {
	canon, err := canonical(value)
	return StrictPattern{value: value, canon: canon, err: err}
}

// Value returns the wrapped value.
func (s StrictPattern) Value() any {
	return s.value
}

func (s StrictPattern) matches(v reflect.Value) bool {
	if sym, ok := s.value.(*Symbol); ok {
		return sym.is(v)
	}
	if s.err != nil {
		tracer().Debugf("strict pattern cannot match: %v", s.err)
		return false
	}
	canon, err := canonical(interfaceOf(v))
	if err != nil {
		return false
	}
	return bytes.Equal(s.canon, canon)
}

// canonical serializes v to JSON. The first serialization is decoded and
// serialized again, so that struct fields end up sorted like map keys.
func canonical(v any) ([]byte, error) {
	var canon []byte
	var err error
	r := result.Catch(func() ([]byte, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var generic any
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err = dec.Decode(&generic); err != nil {
			return nil, err
		}
		return json.Marshal(generic)
	})
	switch m := r.Match(); m {
	case m.Ok(&canon):
	case m.Err(&err):
	}
	return canon, err
}
