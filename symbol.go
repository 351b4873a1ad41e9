package huffman

// Symbol represents a symbol in an alphabet indexed from 0.  Negative symbols
// are not valid.
type Symbol int32

// MaxSymbol is the maximum symbol that may carry a non-zero frequency.  The
// serialized tree stores the highest used symbol in a 16-bit field.
const MaxSymbol = Symbol(0xffff)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)
