package pmatch

import (
	"github.com/npillmayer/pmatch/maybe"
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/persistent/vector"
)

// --- Patterns --------------------------------------------------------------

// Wildcards, see package pattern.
const (
	Any         = pattern.Any
	AnyString   = pattern.AnyString
	AnyNumber   = pattern.AnyNumber
	AnyBoolean  = pattern.AnyBoolean
	AnyObject   = pattern.AnyObject
	AnyArray    = pattern.AnyArray
	AnyFunction = pattern.AnyFunction
)

// Compose returns a pattern which matches if all of patterns match, tested
// from left to right.
func Compose(patterns ...any) pattern.Composed {
	return pattern.Compose(patterns...)
}

// Strict wraps value into a pattern which matches only values exactly equal to it,
// i.e. without extra keys.
func Strict(value any) pattern.StrictPattern {
	return pattern.Strict(value)
}

// NewSymbol creates a unique token to be used as a subject and as a pattern.
func NewSymbol(name string) *pattern.Symbol {
	return pattern.NewSymbol(name)
}

// Is checks if value matches pattern p.
func Is(value, p any) bool {
	return pattern.Compare(p, value)
}

// --- Match expressions -----------------------------------------------------

// Builder collects the cases of a match expression over a subject. Handlers
// produce results of type U. The zero value is a builder for a nil subject
// without cases.
type Builder[U any] struct {
	subject any
	cases   vector.Vector[caseEntry[U]]
}

type caseEntry[U any] struct {
	pattern any
	handler func(any) U
}

// Match starts a match expression for subject.
func Match[U any](subject any) Builder[U] {
	return Builder[U]{
		subject: subject,
		cases:   vector.Immutable[caseEntry[U]](vector.DegreeExponent(3)),
	}
}

// Case returns a new builder with an additional case. If p is the first pattern
// to match the subject, handler will be called with the subject.
// b itself is not modified.
func (b Builder[U]) Case(p any, handler func(any) U) Builder[U] {
	b.cases = b.cases.Push(caseEntry[U]{pattern: p, handler: handler})
	return b
}

// Len returns the number of cases of b.
func (b Builder[U]) Len() int {
	return b.cases.Len()
}

// Subject returns the value b matches against.
func (b Builder[U]) Subject() any {
	return b.subject
}

// Default finishes a match expression. It calls the handler of the first case
// matching the subject and returns its result. If no case matches, def is called.
func (b Builder[U]) Default(def func() U) U {
	var c caseEntry[U]
	switch m := b.first().Match(); m {
	case m.Just(&c):
		return c.handler(b.subject)
	case m.Nothing():
	}
	tracer().Debugf("none of %d cases matches, using default", b.cases.Len())
	return def()
}

// first finds the first case matching the subject.
func (b Builder[U]) first() maybe.Maybe[caseEntry[U]] {
	found := maybe.Nothing[caseEntry[U]]()
	b.cases.Each(func(i int, c caseEntry[U]) bool {
		if !pattern.Compare(c.pattern, b.subject) {
			return true
		}
		tracer().Debugf("case #%d matches:\n%s", i, pattern.Printable{Pattern: c.pattern})
		found = maybe.Just(c)
		return false
	})
	return found
}
