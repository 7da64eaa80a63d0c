package pattern

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/xlab/treeprint"
)

// Sprint renders a pattern as a tree, one line per sub-pattern:
//
//     .
//     └── map[string]interface {}
//         ├── [age]  AnyNumber
//         └── [name]  AnyString
//
func Sprint(p any) string {
	tree := treeprint.New()
	addPattern(tree.AddBranch(label(p)), p)
	return tree.String()
}

// Printable wraps a pattern to be rendered by Sprint only if it gets formatted.
// Use it to trace patterns without paying for the rendering.
type Printable struct {
	Pattern any
}

func (pp Printable) String() string {
	return Sprint(pp.Pattern)
}

func addPattern(branch treeprint.Tree, p any) {
	switch pt := p.(type) {
	case Composed:
		for _, sub := range pt.patterns {
			addPattern(branch.AddBranch(label(sub)), sub)
		}
		return
	case StrictPattern, Wildcard, *Symbol, Predicate, func(any) bool, nil:
		return
	}
	pv := reflect.ValueOf(p)
	switch pv.Kind() {
	case reflect.Map:
		keys := pv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			sub := pv.MapIndex(k).Interface()
			meta := fmt.Sprintf("[%v]", k.Interface())
			addPattern(branch.AddMetaBranch(meta, label(sub)), sub)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < pv.Len(); i++ {
			sub := pv.Index(i).Interface()
			addPattern(branch.AddMetaBranch(fmt.Sprintf("%d", i), label(sub)), sub)
		}
	}
}

func label(p any) string {
	switch pt := p.(type) {
	case nil:
		return "nil"
	case Composed:
		return "compose"
	case StrictPattern:
		if pt.err != nil {
			return fmt.Sprintf("strict %#v", pt.value)
		}
		return "strict " + string(pt.canon)
	case Wildcard:
		return pt.String()
	case *Symbol:
		return pt.String()
	case Predicate, func(any) bool:
		return "predicate"
	}
	pv := reflect.ValueOf(p)
	switch pv.Kind() {
	case reflect.Func:
		return "predicate " + pv.Type().String()
	case reflect.Map, reflect.Slice, reflect.Array:
		return pv.Type().String()
	}
	return fmt.Sprintf("%#v", p)
}
