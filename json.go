package pmatch

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by MatchJSON for malformed documents.
var ErrInvalidJSON = errors.New("invalid JSON document")

// MatchJSON starts a match expression for a JSON document. The document is decoded
// into generic values: objects become map[string]any, arrays []any, numbers
// float64; null becomes nil.
//
//     b, err := pmatch.MatchJSON[string]([]byte(`{"name": "Mark", "age": 15}`))
//     …
//     s := b.Case(map[string]any{"name": pmatch.AnyString, "age": pmatch.AnyNumber},
//         pmatch.Return("person")).Default(pmatch.Const("unknown"))
//
func MatchJSON[U any](data []byte) (Builder[U], error) {
	if !gjson.ValidBytes(data) {
		return Match[U](nil), errors.Wrapf(ErrInvalidJSON, "cannot match %d bytes", len(data))
	}
	return Match[U](gjson.ParseBytes(data).Value()), nil
}
