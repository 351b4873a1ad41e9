package huffman

import (
	"errors"
	"fmt"
	"io"
)

// maxSymbolWidth is the width of the MaxSymbol field that starts every
// serialized tree.
const maxSymbolWidth = 16

// WriteTree serializes t to w.  The format, in the order written, is:
//
//     MaxSymbol    16 bits
//     MinSymbol    HeaderWidth() bits
//     UsedSymbols  HeaderWidth() bits, truncated to that width
//     structure    pre-order: 1 for an internal node (then left, then
//                  right), 0 for a leaf followed by Symbol-MinSymbol in
//                  SymbolWidth() bits
//
// The structure terminates itself; no node count is needed to read it back.
//
func WriteTree(w BitWriter, t *Tree) error {
	if t == nil || t.root == nil {
		return ErrNoTree
	}

	h := t.header
	headerWidth := h.HeaderWidth()
	symbolWidth := h.SymbolWidth()

	if err := w.WriteBits(uint64(h.MaxSymbol), maxSymbolWidth); err != nil {
		return fmt.Errorf("huffman: failed to write max symbol: %w", err)
	}
	if err := w.WriteBits(uint64(h.MinSymbol), headerWidth); err != nil {
		return fmt.Errorf("huffman: failed to write min symbol: %w", err)
	}
	if err := w.WriteBits(uint64(h.UsedSymbols)&fieldMask(headerWidth), headerWidth); err != nil {
		return fmt.Errorf("huffman: failed to write used symbol count: %w", err)
	}
	if err := writeNode(w, t.root, h.MinSymbol, symbolWidth); err != nil {
		return fmt.Errorf("huffman: failed to write tree: %w", err)
	}

	log.Debugf("stored tree: symbols [%d, %d], %d used, %d-bit header fields, %d-bit leaves", h.MinSymbol, h.MaxSymbol, h.UsedSymbols, headerWidth, symbolWidth)
	return nil
}

func writeNode(w BitWriter, n *Node, minSymbol Symbol, symbolWidth uint8) error {
	if !n.IsLeaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		if err := writeNode(w, n.Left, minSymbol, symbolWidth); err != nil {
			return err
		}
		return writeNode(w, n.Right, minSymbol, symbolWidth)
	}
	if err := w.WriteBits(0, 1); err != nil {
		return err
	}
	return w.WriteBits(uint64(n.Symbol-minSymbol), symbolWidth)
}

// ReadTree deserializes a tree written by WriteTree.  Frequencies are not
// serialized, so every Node of the returned tree has a Freq of 0.
//
// ReadTree returns io.EOF if r is exhausted before the first field, and an
// error wrapping io.ErrUnexpectedEOF if it runs out partway through.  It
// returns an error wrapping ErrCorruptTree if the bits do not describe a tree
// that WriteTree could have produced.
//
func ReadTree(r BitReader) (*Tree, error) {
	maxSymbol, err := r.ReadBits(maxSymbolWidth)
	if err != nil {
		return nil, err
	}

	h := Header{MaxSymbol: Symbol(maxSymbol)}
	headerWidth := h.HeaderWidth()

	minSymbol, err := readBits(r, headerWidth)
	if err != nil {
		return nil, fmt.Errorf("huffman: failed to read min symbol: %w", err)
	}
	if minSymbol > maxSymbol {
		return nil, fmt.Errorf("%w: min symbol %d > max symbol %d", ErrCorruptTree, minSymbol, maxSymbol)
	}
	h.MinSymbol = Symbol(minSymbol)

	usedSymbols, err := readBits(r, headerWidth)
	if err != nil {
		return nil, fmt.Errorf("huffman: failed to read used symbol count: %w", err)
	}
	h.UsedSymbols = uint32(usedSymbols)

	tr := treeReader{
		r:           r,
		header:      h,
		symbolWidth: h.SymbolWidth(),
		seen:        make([]bool, maxSymbol-minSymbol+1),
	}
	root, err := tr.readNode(0)
	if err != nil {
		return nil, fmt.Errorf("huffman: failed to read tree: %w", err)
	}

	t := &Tree{root: root, header: h}
	if uint64(tr.leaves)&fieldMask(headerWidth) != uint64(h.UsedSymbols) {
		log.Warningf("tree header claims %d used symbols, but %d leaves were read", h.UsedSymbols, tr.leaves)
	}
	log.Debugf("loaded tree: symbols [%d, %d], %d leaves", h.MinSymbol, h.MaxSymbol, tr.leaves)
	return t, nil
}

type treeReader struct {
	r           BitReader
	header      Header
	symbolWidth uint8
	seen        []bool
	leaves      uint32
}

func (tr *treeReader) readNode(depth int) (*Node, error) {
	bit, err := readBits(tr.r, 1)
	if err != nil {
		return nil, err
	}

	if bit == 1 {
		if depth >= MaxCodeSize {
			return nil, fmt.Errorf("%w: tree deeper than %d bits", ErrCorruptTree, MaxCodeSize)
		}
		left, err := tr.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := tr.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		return newInternal(left, right), nil
	}

	delta, err := readBits(tr.r, tr.symbolWidth)
	if err != nil {
		return nil, err
	}
	if delta >= uint64(len(tr.seen)) {
		return nil, fmt.Errorf("%w: symbol %d > max symbol %d", ErrCorruptTree, uint64(tr.header.MinSymbol)+delta, tr.header.MaxSymbol)
	}
	symbol := tr.header.MinSymbol + Symbol(delta)
	if tr.seen[delta] {
		return nil, fmt.Errorf("%w: duplicate symbol %d", ErrCorruptTree, symbol)
	}
	tr.seen[delta] = true
	tr.leaves++
	return newLeaf(symbol, 0), nil
}

// fieldMask keeps the low width bits of a value.  The used symbol count can
// need one bit more than HeaderWidth when every symbol from 0 to MaxSymbol is
// used and MaxSymbol+1 is a power of two.
func fieldMask(width uint8) uint64 {
	return 1<<width - 1
}

// readBits reads from a stream that is known to hold more data, so running
// out is always unexpected.
func readBits(r BitReader, n uint8) (uint64, error) {
	value, err := r.ReadBits(n)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return value, err
}
