package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Header describes the range of symbols used by a tree.  It is written ahead
// of the tree structure by WriteTree.
type Header struct {
	// MaxSymbol is the highest symbol with a non-zero frequency.
	MaxSymbol Symbol

	// MinSymbol is the lowest symbol with a non-zero frequency.
	MinSymbol Symbol

	// UsedSymbols is the number of symbols with a non-zero frequency.  It
	// is advisory: ReadTree does not need it to rebuild the tree.  Only its
	// low HeaderWidth() bits are stored, so a loaded Header may hold the
	// truncated value.
	UsedSymbols uint32
}

// HeaderWidth is the bit width of the MinSymbol and UsedSymbols fields.
func (h Header) HeaderWidth() uint8 {
	return bitLength(uint64(h.MaxSymbol))
}

// SymbolWidth is the bit width of each leaf's symbol, stored as an offset
// from MinSymbol.
func (h Header) SymbolWidth() uint8 {
	return bitLength(uint64(h.MaxSymbol - h.MinSymbol))
}

// Tree is a built or loaded Huffman code tree.
type Tree struct {
	root   *Node
	header Header
}

// Root returns the root Node.  The tree must not be modified.
func (t *Tree) Root() *Node {
	return t.root
}

// Header returns the symbol range used by this tree.
func (t *Tree) Header() Header {
	return t.header
}

// NumLeaves counts the leaves of the tree.
func (t *Tree) NumLeaves() uint32 {
	var count uint32
	t.walk(func(n *Node, hc Code) {
		count++
	})
	return count
}

// Codes flattens the tree into a table of Codes indexed by Symbol.  The table
// has numSymbols entries; symbols that are not leaves of the tree keep the
// zero Code.  A tree whose root is a leaf assigns that symbol the empty Code.
//
func (t *Tree) Codes(numSymbols int) []Code {
	assert.Assertf(numSymbols > int(t.header.MaxSymbol), "numSymbols %d <= MaxSymbol %d", numSymbols, int(t.header.MaxSymbol))

	codes := make([]Code, numSymbols)
	t.walk(func(n *Node, hc Code) {
		codes[n.Symbol] = hc
	})
	return codes
}

// walk calls fn for every leaf in pre-order, left before right, along with
// the Code that is the path from the root to the leaf.
//
// An explicit stack is used in place of recursion.  stackItem.x tracks the
// progress at each internal node:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (t *Tree) walk(fn func(*Node, Code)) {
	if t.root == nil {
		return
	}
	if t.root.IsLeaf() {
		fn(t.root, Code{})
		return
	}

	type stackItem struct {
		n  *Node
		hc Code
		x  byte
	}

	stack := make([]stackItem, 0, MaxCodeSize)

	processChild := func(child *Node, hc Code) {
		if child.IsLeaf() {
			fn(child, hc)
			return
		}
		stack = append(stack, stackItem{n: child, hc: hc})
	}

	stack = append(stack, stackItem{n: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.Left, top.hc.Append(0))
		case 1:
			processChild(top.n.Right, top.hc.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

// depth returns the number of edges on the longest path from the root to a
// leaf.
func (t *Tree) depth() int {
	type item struct {
		n *Node
		d int
	}

	var max int
	stack := []item{{t.root, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.n.IsLeaf() {
			if top.d > max {
				max = top.d
			}
			continue
		}
		stack = append(stack, item{top.n.Right, top.d + 1}, item{top.n.Left, top.d + 1})
	}
	return max
}
