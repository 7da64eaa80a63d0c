/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices which are only ever appended to.

An immutable persistent vector has copy-on-write behaviour: each “modification” of the
vector creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of parts of the structure only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

The vector is a bit-partitioned trie of degree 2^k, with the most recent items held
in a separate tail. pmatch uses vectors to hold the cases of a match expression, so that
branching a chain of cases never lets one branch see the cases of another.

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.vector'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.vector")
}
