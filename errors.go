package huffman

import (
	"errors"
)

var (
	// ErrNoSymbols is returned when every frequency is zero.
	ErrNoSymbols = errors.New("huffman: frequency table has no used symbols")

	// ErrSymbolOutOfRange is returned when a symbol above MaxSymbol has a
	// non-zero frequency.
	ErrSymbolOutOfRange = errors.New("huffman: symbol out of range")

	// ErrCodeTooLong is returned when the frequencies would produce a code
	// longer than MaxCodeSize bits.
	ErrCodeTooLong = errors.New("huffman: code too long")

	// ErrUnknownSymbol is returned by Encoder.Encode for symbols that have
	// no code.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrCorruptTree is returned by ReadTree when the serialized tree is
	// structurally impossible.
	ErrCorruptTree = errors.New("huffman: corrupt tree")

	// ErrNoTree is returned by Encoder and Decoder methods that need a tree
	// before one has been built or loaded.
	ErrNoTree = errors.New("huffman: no tree")
)
