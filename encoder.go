package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for Huffman codes built from a frequency
// table.  The zero value has no tree; call Init before use.
type Encoder struct {
	tree    *Tree
	codes   []Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder using StableSortStrategy.  The first argument
// tells Init how many Symbols are in this code's alphabet, and the second
// argument lists the frequency (i.e. number of occurrences) for each Symbol
// in the code, one for each Symbol except that any Symbol not represented in
// the list is assumed to have a frequency of 0.
//
// On failure the Encoder is reset to its zero value.
//
func (e *Encoder) Init(numSymbols int, frequencies []uint64) error {
	return e.InitStrategy(StableSortStrategy, numSymbols, frequencies)
}

// InitStrategy is like Init, but builds the tree with the given Strategy.
func (e *Encoder) InitStrategy(strategy Strategy, numSymbols int, frequencies []uint64) error {
	assert.Assertf(numSymbols >= len(frequencies), "numSymbols %d < len(frequencies) %d", numSymbols, len(frequencies))

	*e = Encoder{}
	t, err := BuildTree(strategy, frequencies)
	if err != nil {
		return err
	}
	e.InitTree(numSymbols, t)
	return nil
}

// InitTree initializes this Encoder from an existing tree, such as one
// returned by ReadTree.
func (e *Encoder) InitTree(numSymbols int, t *Tree) {
	codes := t.Codes(numSymbols)

	var minSize, maxSize byte
	var hasMinMax bool
	t.walk(func(n *Node, hc Code) {
		size := hc.Size
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	})

	*e = Encoder{
		tree:    t,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Tree returns the tree this Encoder was built from, or nil.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// Store writes the tree to w, so that a Decoder can Load it.
func (e Encoder) Store(w BitWriter) error {
	if e.tree == nil {
		return ErrNoTree
	}
	return WriteTree(w, e.tree)
}

// Code returns the Code for a Symbol.  The second result is false if the
// Symbol is outside the alphabet or has a frequency of 0.
func (e Encoder) Code(symbol Symbol) (Code, bool) {
	if symbol < 0 || int(symbol) >= len(e.codes) || !e.isLeaf(symbol) {
		return Code{}, false
	}
	return e.codes[symbol], true
}

// Encode writes the Code for a Symbol to w.  The only Symbol of a
// single-symbol alphabet has an empty Code, and writes nothing.
//
// Encode returns an error wrapping ErrUnknownSymbol, without writing, if the
// Symbol has no Code.
//
func (e Encoder) Encode(w BitWriter, symbol Symbol) error {
	hc, ok := e.Code(symbol)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}
	if hc.Size == 0 {
		return nil
	}
	return w.WriteBits(hc.Bits, hc.Size)
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// MaxSymbol is the last Symbol in the code's alphabet.
//
// (The first Symbol in the code's alphabet is always 0.)
//
func (e Encoder) MaxSymbol() Symbol {
	return Symbol(len(e.codes)) - 1
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.  Unused symbols, and the only symbol of a single-symbol
// alphabet, have a bit length of 0.
//
func (e Encoder) SizeBySymbol() []byte {
	numSymbols := Symbol(len(e.codes))
	out := make([]byte, numSymbols)
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := e.codes[symbol]
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	numSymbols := Symbol(len(e.codes))
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		if hc, ok := e.Code(symbol); ok {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%d) = nil\n", symbol)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// isLeaf distinguishes a used Symbol from an unused one, since both may
// have a zero-length Code.
func (e Encoder) isLeaf(symbol Symbol) bool {
	if e.codes[symbol].Size != 0 {
		return true
	}
	root := e.tree.root
	return root.IsLeaf() && root.Symbol == symbol
}
