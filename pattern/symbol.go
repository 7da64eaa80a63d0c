package pattern

import (
	"reflect"

	"github.com/pkg/errors"
)

// Symbol is a unique token, compared by identity only. Symbols are useful as
// tags of states which carry no data:
//
//     var Loading = pattern.NewSymbol("Loading")
//
type Symbol struct {
	name string
}

// NewSymbol creates a fresh symbol. Two symbols are never equal, even if they
// share a name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name: name}
}

// Name returns the name s has been created with.
func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) String() string {
	return "Symbol(" + s.name + ")"
}

// MarshalJSON refuses to serialize s.
func (s *Symbol) MarshalJSON() ([]byte, error) {
	return nil, errors.Wrap(ErrNoCanonicalForm, s.String())
}

// is checks if v holds s itself.
func (s *Symbol) is(v reflect.Value) bool {
	v = unwrap(v)
	return v.IsValid() && v.Type() == symbolType && v.Pointer() == reflect.ValueOf(s).Pointer()
}
