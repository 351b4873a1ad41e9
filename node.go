package huffman

// Node is a node in a Huffman code tree.  A Node is either a leaf, carrying a
// Symbol, or an internal node with exactly two children.  The frequency of an
// internal node is the (saturating) sum of its children's frequencies.
//
// A tree exclusively owns its nodes; no node is shared between trees.
//
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

func newLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{Symbol: symbol, Freq: freq}
}

func newInternal(left *Node, right *Node) *Node {
	return &Node{
		Symbol: InvalidSymbol,
		Freq:   addSaturating(left.Freq, right.Freq),
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Child returns the left child for bit 0 and the right child for bit 1.
func (n *Node) Child(bit uint64) *Node {
	if bit == 0 {
		return n.Left
	}
	return n.Right
}
