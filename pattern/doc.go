/*
Package pattern implements structural comparison of runtime values against
declarative patterns.

Compare(p, v) decides if value v satisfies pattern p. Patterns are ordinary Go
values, interpreted by their type:

  - Composed (see Compose): every sub-pattern has to match.
  - StrictPattern (see Strict): v has to be exactly equal to the wrapped value,
    judged by canonical JSON serialization.
  - Wildcard: Any matches every defined value, the typed wildcards match by
    runtime kind (AnyString, AnyNumber, AnyBoolean, AnyObject, AnyArray, AnyFunction).
  - functions: a Predicate, or any func taking one argument and returning bool
    or (bool, error). A predicate which panics or returns an error does not match.
  - maps, slices and arrays: every key (index) of the pattern has to be present on v
    and match recursively. Keys present only on v are ignored.
  - everything else is a literal and compared by kind and value.

Mapping-like values are maps and structs; struct fields are addressed by their
json tag name or by their Go name. Numbers compare by value across Go numeric
types, thus a float64 decoded from JSON matches an int literal.

A nil subject is “undefined”. A nil found under a present key is null, which
is a defined value:

    Compare(map[string]any{"error": Any}, map[string]any{"error": nil})  // true
    Compare(Any, nil)                                                    // false

Compare does not detect cycles; recursion depth equals the nesting depth of the pattern.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.pattern")
}
