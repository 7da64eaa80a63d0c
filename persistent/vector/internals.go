package vector

import (
	"fmt"
	"strings"
)

const defaultBits uint32 = 5 // will produce nodes with degree  2 ^ 5 = 32

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2 ^ bits
	mask   uint32 // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func makeProps(bits uint32) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

// init makes the zero value of props usable.
func (p props) init() props {
	if p.bits == 0 {
		return makeProps(defaultBits)
	}
	return p
}

// vnode is a node in the trie a vector is made of. Inner nodes hold children,
// leaf nodes hold a full bucket of items.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

func newLeaf[T any](tail []T) *vnode[T] {
	l := make([]T, len(tail))
	copy(l, tail)
	return &vnode[T]{leafs: l}
}

func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail)
	return newTail
}

// newPath wraps node into a chain of fresh inner nodes, one per level above it.
func newPath[T any](level, bits, k uint32, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	top := emptyNode[T](k)
	top.children[0] = newPath(level-bits, bits, k, node)
	return top
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
