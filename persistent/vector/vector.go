package vector

import (
	"github.com/npillmayer/pmatch/maybe"
)

// Vector is an immutable persistent vector. The zero value is an empty vector
// of default degree, i.e. this is legal:
//
//     v := vector.Vector[int]{}.Push(1)
//
type Vector[T any] struct {
	props
	length uint32
	shift  uint32 // we do not store h(v), but rather bits*h(v)
	root   *vnode[T]
	tail   []T
}

// Immutable constructs a vector with options, if you need any.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	v.props = v.props.init()
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying tree for a vector.
// The degree of the tree will be 2^exp. Accepted exponents are [1…5]; default is 5, i.e.
// a degree of 32.
//
// Use it like this:
//
//     vec := vector.Immutable[int](DegreeExponent(3))
//
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return makeProps(uint32(n))
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in v.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Last returns the most recently pushed item, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns the item at position i. Get panics if i is out of range, as slices do.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	return v.leafFor(uint32(i))[uint32(i)&v.mask]
}

// Push returns a new vector with value appended. v itself is unchanged.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if !v.tailFull() { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{props: v.props, length: v.length + 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into tree
	tailNode := newLeaf(v.tail)
	root, shift := v.root, v.shift
	if root == nil {
		root, shift = emptyNode[T](v.degree), v.bits
	}
	var newRoot *vnode[T]
	if (v.length >> v.bits) > (1 << shift) { // root is full ⇒ trie grows by one level
		newRoot = emptyNode[T](v.degree)
		newRoot.children[0] = root
		newRoot.children[1] = newPath(shift, v.bits, v.degree, tailNode)
		shift += v.bits
		tracer().Debugf("vector of length %d grows to shift %d", v.length+1, shift)
	} else {
		newRoot = v.pushTail(shift, root, tailNode)
	}
	return Vector[T]{props: v.props, length: v.length + 1, shift: shift, root: newRoot, tail: []T{value}}
}

// Each calls f for every item in index order, until f returns false.
func (v Vector[T]) Each(f func(int, T) bool) {
	v.props = v.props.init()
	for i := uint32(0); i < v.length; i += v.degree {
		for j, item := range v.leafFor(i) {
			if !f(int(i)+j, item) {
				return
			}
		}
	}
}

// Slice returns the items of v as a fresh slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	v.Each(func(_ int, item T) bool {
		s = append(s, item)
		return true
	})
	return s
}

// --- Internals -------------------------------------------------------------

// pushTail copies the path from parent down to the slot for tailNode, leaving
// all other sub-trees shared.
func (v Vector[T]) pushTail(level uint32, parent, tailNode *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask
	cow := parent.clone()
	var insert *vnode[T]
	if level == v.bits {
		insert = tailNode
	} else if child := parent.children[subidx]; child != nil {
		insert = v.pushTail(level-v.bits, child, tailNode)
	} else {
		insert = newPath(level-v.bits, v.bits, v.degree, tailNode)
	}
	cow.children[subidx] = insert
	return cow
}

// leafFor returns the bucket holding item i.
func (v Vector[T]) leafFor(i uint32) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	assertThat(node.leafs != nil, "inconsistency: expected leaf bucket for index %d", i)
	return node.leafs
}

func (v Vector[T]) tailOffset() uint32 {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

func (v Vector[T]) tailFull() bool {
	return uint32(len(v.tail)) >= v.degree
}
