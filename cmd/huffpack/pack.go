package main

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	huffman "github.com/chronos-tachyon/treehuff"
)

// numByteSymbols is the alphabet size for byte-oriented data.
const numByteSymbols = 256

// countWidth is the width of the leading symbol count.
const countWidth = 64

// maxInitialCapacity bounds the allocation made up front for an untrusted
// byte count.
const maxInitialCapacity = 1 << 20

// maxSingleSymbolBytes bounds the byte count accepted for a tree with a single
// symbol, whose codes occupy no bits and so cannot run out.
const maxSingleSymbolBytes = 1 << 30

// pack compresses data into the container format:
//
//     [64-bit byte count][tree][one code per byte][zero padding]
//
// The tree is omitted when the byte count is 0.
//
func pack(data []byte, strategy huffman.Strategy) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	if err := w.WriteBits(uint64(len(data)), countWidth); err != nil {
		return nil, err
	}

	if len(data) != 0 {
		freqs := make([]uint64, numByteSymbols)
		for _, b := range data {
			freqs[b]++
		}

		var e huffman.Encoder
		if err := e.InitStrategy(strategy, numByteSymbols, freqs); err != nil {
			return nil, err
		}
		if err := e.Store(w); err != nil {
			return nil, err
		}
		for _, b := range data {
			if err := e.Encode(w, huffman.Symbol(b)); err != nil {
				return nil, err
			}
		}
		log.Debugf("packed %d bytes with code lengths %d .. %d bits", len(data), e.MinSize(), e.MaxSize())
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unpack reverses pack.
func unpack(packed []byte) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(packed))

	count, err := r.ReadBits(countWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to read byte count: %w", err)
	}
	if count == 0 {
		return []byte{}, nil
	}

	var d huffman.Decoder
	if err := d.Load(r); err != nil {
		return nil, err
	}
	if max := d.Tree().Header().MaxSymbol; max >= numByteSymbols {
		return nil, fmt.Errorf("tree uses symbol %d, which is not a byte", max)
	}

	if root := d.Tree().Root(); root.IsLeaf() {
		if count > maxSingleSymbolBytes {
			return nil, fmt.Errorf("byte count %d exceeds %d for a single-symbol tree", count, maxSingleSymbolBytes)
		}
		log.Debugf("unpacked %d copies of byte %d", count, root.Symbol)
		return bytes.Repeat([]byte{byte(root.Symbol)}, int(count)), nil
	}

	capacity := count
	if capacity > maxInitialCapacity {
		capacity = maxInitialCapacity
	}
	out := make([]byte, 0, capacity)
	for uint64(len(out)) < count {
		symbol, err := d.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode byte %d of %d: %w", len(out), count, err)
		}
		out = append(out, byte(symbol))
	}
	log.Debugf("unpacked %d bytes", len(out))
	return out, nil
}
