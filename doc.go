/*
Package pmatch implements structural pattern matching on runtime values.

A match expression binds a subject value, collects cases and finally selects the
first case whose pattern matches the subject:

    result := pmatch.Match[string](response).
        Case(Loading, pmatch.Return("loading")).
        Case(map[string]any{"data": pmatch.AnyString}, func(r any) string { … }).
        Case(map[string]any{"error": pmatch.Any}, pmatch.Return("error")).
        Default(pmatch.Const("unknown"))

Cases are tested in the order they have been added. Patterns are described in
package pattern: literals, maps and slices for partial structural matching,
wildcards, predicates, compositions (Compose) and exact values (Strict).

Builders are immutable: Case returns a new builder and leaves its receiver
untouched. An intermediate builder may therefore be shared by several match
expressions, which will not see each other's cases. Builders are safe for
concurrent use, as long as patterns and handlers are.

Handlers are the client's own code; panics in handlers are not recovered.
Predicates, on the other hand, fail silently: a predicate which panics or returns
an error is treated as not matching.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch")
}
