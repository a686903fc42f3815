package patricia

import (
	"github.com/hideo55/go-popcount"
)

// node is the only structural unit of the trie: an optional terminal value
// plus a mapping from edge labels to children. The mapping is indexed by
// the leading byte of each label: a 256-bit bitmap marks the bytes in use
// and the labels/children slices are kept in bitmap rank order, so edge
// dispatch is a bitmap test plus a popcount.
//
// Invariants:
//   - every label is non-empty;
//   - no two labels of one node share a leading byte (one slot per byte).
type node struct {
	bitmap   [4]uint64 // 256 bits representing the possible leading bytes
	labels   []string
	children []*node
	val      interface{}
	terminal bool
}

func (n *node) hasEdge(b byte) bool {
	return n.bitmap[b>>6]>>(b&0x3F)&1 != 0
}

// rank returns the number of edges whose leading byte is below b.
func (n *node) rank(b byte) int {
	ofs := b >> 6
	idx := b & 0x3F // the lowest 6 bits (2**6 == 64)
	cnt := popcount.Count(n.bitmap[ofs] & ((1 << idx) - 1))
	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(n.bitmap[j])
	}
	return int(cnt)
}

// findEdge returns the at most one edge whose label starts with b.
func (n *node) findEdge(b byte) (label string, child *node, ok bool) {
	if !n.hasEdge(b) {
		return "", nil, false
	}
	i := n.rank(b)
	return n.labels[i], n.children[i], true
}

// addEdge inserts an edge. The label must be non-empty and its leading
// byte must be free in this node.
func (n *node) addEdge(label string, child *node) {
	b := label[0]
	i := n.rank(b)
	n.bitmap[b>>6] |= 1 << (b & 0x3F)

	n.labels = append(n.labels, "")
	copy(n.labels[i+1:], n.labels[i:])
	n.labels[i] = label

	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// splitEdge cuts the edge leading with b after p bytes. A fresh
// intermediate node adopts the old child under the tail label[p:] and
// takes over the child slot, so the parent mapping changes in one step.
// Returns the intermediate node.
func (n *node) splitEdge(b byte, p int) *node {
	i := n.rank(b)
	label, child := n.labels[i], n.children[i]

	split := &node{}
	split.addEdge(label[p:], child)

	n.labels[i] = label[:p]
	n.children[i] = split

	return split
}
