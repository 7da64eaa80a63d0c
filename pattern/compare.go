package pattern

import (
	"reflect"

	"github.com/npillmayer/pmatch/result"
	"github.com/pkg/errors"
)

// Compare checks if value v satisfies pattern p. Compare never panics: failing
// predicates and values of incompatible kinds simply do not match.
//
// Rules are tested in this order, the first applicable one decides:
//
//     1. Composed: all sub-patterns match
//     2. StrictPattern: canonical serializations are equal
//     3. Any: v is defined
//     4. typed wildcards: v is of the wildcard's kind
//     5. functions: the predicate returns true
//     6. maps, slices, arrays: v is mapping-like, and every key of p is present on v and matches
//     7. literals: p and v are of the same kind and equal
//
func Compare(p, v any) bool {
	return compare(p, reflect.ValueOf(v))
}

func compare(p any, v reflect.Value) bool {
	v = unwrap(v)
	switch pt := p.(type) {
	case Composed:
		return pt.matches(v)
	case StrictPattern:
		return pt.matches(v)
	case Wildcard:
		return pt.matches(v)
	case Predicate:
		return callPredicate(pt, v)
	case func(any) bool:
		return callPredicate(Predicate(pt), v)
	case *Symbol:
		return pt.is(v)
	case nil:
		return isNil(v)
	}
	pv := reflect.ValueOf(p)
	switch pv.Kind() {
	case reflect.Func:
		return callFunc(pv, v)
	case reflect.Map, reflect.Slice, reflect.Array:
		return matchStructure(pv, v)
	}
	return equalLiteral(pv, v)
}

// --- Structures ------------------------------------------------------------

// matchStructure matches a map, slice or array pattern against v. Keys missing
// on v make the match fail, extra keys on v are ignored.
func matchStructure(pv reflect.Value, v reflect.Value) bool {
	m := settle(v)
	if k := kindOfValue(m); k != Mapping && k != Sequence {
		return false
	}
	if pv.Kind() == reflect.Map {
		iter := pv.MapRange()
		for iter.Next() {
			sub, found := lookup(m, iter.Key())
			if !found || !compare(iter.Value().Interface(), sub) {
				return false
			}
		}
		return true
	}
	for i := 0; i < pv.Len(); i++ {
		sub, found := lookup(m, reflect.ValueOf(i))
		if !found || !compare(pv.Index(i).Interface(), sub) {
			return false
		}
	}
	return true
}

// --- Literals --------------------------------------------------------------

func equalLiteral(pv reflect.Value, v reflect.Value) bool {
	if !v.IsValid() || v.Type() == wildcardType {
		return false
	}
	switch pk := pv.Kind(); {
	case pk == reflect.Bool:
		return v.Kind() == reflect.Bool && pv.Bool() == v.Bool()
	case pk == reflect.String:
		return v.Kind() == reflect.String && pv.String() == v.String()
	case isNumber(pk):
		return isNumber(v.Kind()) && numericEqual(pv, v)
	}
	if pv.Type() != v.Type() || !pv.Type().Comparable() || !v.CanInterface() {
		return false
	}
	return safeEqual(pv.Interface(), v.Interface())
}

// safeEqual compares a and b with ==, which may panic for structs holding
// incomparable values in interface fields.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// --- Predicates ------------------------------------------------------------

func callPredicate(pred Predicate, v reflect.Value) bool {
	if pred == nil {
		return false
	}
	arg := interfaceOf(v)
	r := result.Catch(func() (bool, error) {
		return pred(arg), nil
	})
	return outcome(r, "predicate")
}

// callFunc calls fn as a predicate. fn has to take exactly one argument and return
// either bool or (bool, error). If v cannot be passed to fn, fn is not called.
func callFunc(fn reflect.Value, v reflect.Value) bool {
	ft := fn.Type()
	if fn.IsNil() || ft.NumIn() != 1 || ft.IsVariadic() || !returnsBool(ft) {
		tracer().Debugf("function of type %s is not a predicate", ft)
		return false
	}
	arg, ok := argument(ft.In(0), v)
	if !ok {
		return false
	}
	r := result.Catch(func() (bool, error) {
		out := fn.Call([]reflect.Value{arg})
		if len(out) == 2 && !out[1].IsNil() {
			return false, out[1].Interface().(error)
		}
		return out[0].Bool(), nil
	})
	return outcome(r, ft.String())
}

func returnsBool(ft reflect.Type) bool {
	switch ft.NumOut() {
	case 1:
		return ft.Out(0).Kind() == reflect.Bool
	case 2:
		return ft.Out(0).Kind() == reflect.Bool && ft.Out(1) == errorType
	}
	return false
}

// argument prepares v to be passed as a parameter of type t.
func argument(t reflect.Type, v reflect.Value) (reflect.Value, bool) {
	if isNil(v) {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	if !v.CanInterface() {
		return reflect.Value{}, false
	}
	if v.Type().AssignableTo(t) {
		return v, true
	}
	if v.Kind() == reflect.Pointer && v.Type().Elem().AssignableTo(t) {
		return v.Elem(), true
	}
	return convertLossless(v, t)
}

// outcome unpacks the result of a predicate call. Failures are downgraded to
// non-matches.
func outcome(r result.Result[bool], what string) bool {
	var ok bool
	var err error
	switch m := r.Match(); m {
	case m.Ok(&ok):
		return ok
	case m.Err(&err):
		tracer().Debugf("%v", errors.Wrapf(err, "%s failed, treated as no match", what))
	}
	return false
}
