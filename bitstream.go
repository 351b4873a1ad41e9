package huffman

// BitWriter is the sink that trees and codes are written to.  Bits are
// emitted most significant first.  *bitio.Writer from github.com/icza/bitio
// satisfies this interface.
type BitWriter interface {
	// WriteBits writes the n lowest bits of r.  Bits of r above n-1 are
	// zero.
	WriteBits(r uint64, n uint8) error
}

// BitReader is the source that trees and codes are read from.
// *bitio.Reader from github.com/icza/bitio satisfies this interface.
type BitReader interface {
	// ReadBits reads n bits and returns them in the lowest bits of the
	// result.  It returns io.EOF if no bits remain.
	ReadBits(n uint8) (uint64, error)
}
