package huffman

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Strategy selects the merge loop used by BuildTree.  Every Strategy produces
// the same tree for the same frequencies; they differ only in cost.
type Strategy byte

const (
	// StableSortStrategy re-sorts the working list by descending frequency
	// (stable) before every merge and combines the last two entries.  It is
	// O(n² log n) and is the reference against which the others are
	// checked.
	StableSortStrategy Strategy = iota

	// HeapStrategy uses a min-heap, O(n log n).  Ties are broken by rank
	// so that merge order matches StableSortStrategy exactly.
	HeapStrategy
)

var strategyNames = [...]string{
	StableSortStrategy: "StableSortStrategy",
	HeapStrategy:       "HeapStrategy",
}

// String returns the name of this Strategy.
func (s Strategy) String() string {
	if uint(s) < uint(len(strategyNames)) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint(s))
}

var _ fmt.Stringer = Strategy(0)

// BuildTree builds a Huffman code tree from a frequency table, indexed by
// Symbol.  Symbols with a frequency of 0 get no leaf.
//
// If exactly one symbol is used, that symbol's leaf is the root and its code
// is empty.  BuildTree returns ErrNoSymbols if no symbol is used.
//
func BuildTree(strategy Strategy, frequencies []uint64) (*Tree, error) {
	assert.Assertf(uint(strategy) < uint(len(strategyNames)), "unknown %v", strategy)

	var header Header
	nodes := make([]*Node, 0, len(frequencies))
	for index, freq := range frequencies {
		if freq == 0 {
			continue
		}
		if index > int(MaxSymbol) {
			return nil, fmt.Errorf("%w: symbol %d has frequency %d, max symbol is %d", ErrSymbolOutOfRange, index, freq, MaxSymbol)
		}

		symbol := Symbol(index)
		if len(nodes) == 0 {
			header.MinSymbol = symbol
		}
		header.MaxSymbol = symbol
		nodes = append(nodes, newLeaf(symbol, freq))
	}

	if len(nodes) == 0 {
		return nil, ErrNoSymbols
	}
	header.UsedSymbols = uint32(len(nodes))

	var root *Node
	switch strategy {
	case StableSortStrategy:
		root = mergeBySorting(nodes)
	case HeapStrategy:
		root = mergeByHeap(nodes)
	}

	t := &Tree{root: root, header: header}
	if depth := t.depth(); depth > MaxCodeSize {
		return nil, fmt.Errorf("%w: %d bits, max %d", ErrCodeTooLong, depth, MaxCodeSize)
	}

	log.Debugf("built tree with %v: %d used symbols in [%d, %d]", strategy, header.UsedSymbols, header.MinSymbol, header.MaxSymbol)
	return t, nil
}

// mergeBySorting repeatedly sorts nodes by descending frequency and replaces
// the last two with their union.  The last node becomes the left child.  The
// union takes the second-to-last slot, so after the stable sort it trails
// every other node of equal frequency.
//
func mergeBySorting(nodes []*Node) *Node {
	list := byFreqDescending(nodes)
	list.Sort()
	for len(list) > 1 {
		last := len(list) - 1
		list[last-1] = newInternal(list[last], list[last-1])
		list[last] = nil
		list = list[:last]
		list.Sort()
	}
	return list[0]
}

// mergeByHeap pops the two smallest nodes, the first popped becoming the left
// child, and pushes their union back onto the heap.
//
// The rank of a leaf is its position in nodes (ascending Symbol order), and
// each union is ranked after every node created before it.  Among equal
// frequencies the heap yields the highest rank first, which is exactly the
// node StableSortStrategy would find at the end of its list.
//
func mergeByHeap(nodes []*Node) *Node {
	list := make([]rankedNode, len(nodes))
	for index, n := range nodes {
		list[index] = rankedNode{n, uint32(index)}
	}

	nextRank := uint32(len(nodes))
	h := freqHeap{list}
	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(rankedNode)
		b := heap.Pop(&h).(rankedNode)
		heap.Push(&h, rankedNode{newInternal(a.node, b.node), nextRank})
		nextRank++
	}
	return h.list[0].node
}

// type byFreqDescending {{{

type byFreqDescending []*Node

func (list byFreqDescending) Sort() {
	sort.Stable(list)
}

func (list byFreqDescending) Len() int {
	return len(list)
}

func (list byFreqDescending) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byFreqDescending) Less(i, j int) bool {
	return list[i].Freq > list[j].Freq
}

var _ sort.Interface = byFreqDescending(nil)

// }}}

// type rankedNode + type freqHeap {{{

type rankedNode struct {
	node *Node
	rank uint32
}

type freqHeap struct {
	list []rankedNode
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.rank > b.rank
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(rankedNode))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = rankedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
