package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decoder implements a decoder for Huffman codes by walking the code tree one
// bit at a time.  The zero value has no tree; call Load or InitTree before
// use.
type Decoder struct {
	tree *Tree
}

// Load reads a tree written by Encoder.Store or WriteTree, replacing any
// tree this Decoder already held.  On failure the Decoder is left without a
// tree.
func (d *Decoder) Load(r BitReader) error {
	*d = Decoder{}
	t, err := ReadTree(r)
	if err != nil {
		return err
	}
	d.tree = t
	return nil
}

// InitTree initializes this Decoder from an existing tree.
func (d *Decoder) InitTree(t *Tree) {
	*d = Decoder{tree: t}
}

// Tree returns the tree this Decoder is using, or nil.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode reads one Code from r and returns its Symbol.
//
// If the tree has a single symbol, its Code is empty: Decode returns that
// Symbol without reading from r.
//
// If r is exhausted before the first bit, Decode returns InvalidSymbol and
// io.EOF.  If r is exhausted partway through a Code, Decode returns
// InvalidSymbol and io.ErrUnexpectedEOF.
//
func (d Decoder) Decode(r BitReader) (Symbol, error) {
	if d.tree == nil {
		return InvalidSymbol, ErrNoTree
	}

	n := d.tree.root
	if n.IsLeaf() {
		return n.Symbol, nil
	}

	bit, err := r.ReadBits(1)
	for {
		if err != nil {
			if n != d.tree.root && errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return InvalidSymbol, err
		}
		n = n.Child(bit)
		if n.IsLeaf() {
			return n.Symbol, nil
		}
		bit, err = r.ReadBits(1)
	}
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Each leaf is listed with the Code that leads to
// it, in tree order.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.tree != nil {
		h := d.tree.header
		fmt.Fprintf(&buf, "\tHeader() = {%d, %d, %d}\n", h.MaxSymbol, h.MinSymbol, h.UsedSymbols)
		d.tree.walk(func(n *Node, hc Code) {
			fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, n.Symbol)
		})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
