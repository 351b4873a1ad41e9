// Package huffman implements Huffman codes built from a frequency table, with
// a compact self-describing serialization of the code tree.
//
// An Encoder builds a tree from per-symbol frequencies, writes the tree with
// Store, and writes one symbol at a time with Encode.  A Decoder reads the
// tree back with Load and reads one symbol at a time with Decode.  Both work
// against a bit stream supplied by the caller, such as the Reader and Writer
// from github.com/icza/bitio.  The caller owns framing: it must know how
// many symbols follow the tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
