package patricia

import (
	"fmt"
	"strings"
)

// Iter is a lazy depth-first cursor over stored key/value pairs. It keeps
// an explicit frame stack, so arbitrarily long keys do not recurse. A
// partially consumed cursor cannot be rewound; obtain a fresh one instead.
type Iter struct {
	stack []iterFrame
}

type iterFrame struct {
	node *node
	path string
}

// Next returns the next stored item. Traversal is depth-first with edges
// taken in ascending leading-byte order, which makes the output
// lexicographic by key.
func (it *Iter) Next() (Item, bool) {
	for num := len(it.stack); num > 0; num = len(it.stack) {
		frame := it.stack[num-1]
		it.stack = it.stack[:num-1]

		// push the children in reverse so the lowest byte pops first
		for i := len(frame.node.labels) - 1; i >= 0; i-- {
			it.stack = append(it.stack, iterFrame{
				node: frame.node.children[i],
				path: frame.path + frame.node.labels[i],
			})
		}

		if frame.node.terminal {
			return Item{Key: frame.path, Val: frame.node.val}, true
		}
	}
	return Item{}, false
}

// Iter returns a cursor over all stored items.
func (t *Trie) Iter() *Iter {
	return &Iter{stack: []iterFrame{{node: &t.root}}}
}

// IterPrefix returns a cursor over the stored items whose keys start with
// prefix. A prefix ending in the middle of an edge is accepted when the
// edge label continues it consistently. A prefix leading nowhere yields an
// exhausted cursor.
func (t *Trie) IterPrefix(prefix string) *Iter {
	cur := &t.root
	idx := 0

	for idx < len(prefix) {
		label, child, ok := cur.findEdge(prefix[idx])
		if !ok {
			return &Iter{}
		}
		rest := prefix[idx:]
		if len(label) > len(rest) {
			// the edge extends past the prefix - it must agree on the
			// overlap, then the whole subtree qualifies
			if label[:len(rest)] != rest {
				return &Iter{}
			}
			return &Iter{stack: []iterFrame{{
				node: child,
				path: prefix + label[len(rest):],
			}}}
		}
		if rest[:len(label)] != label {
			return &Iter{}
		}
		cur = child
		idx += len(label)
	}
	return &Iter{stack: []iterFrame{{node: cur, path: prefix}}}
}

// IsPrefix reports whether any stored key starts with s, even when s
// itself is not stored. The empty string is a prefix of anything.
func (t *Trie) IsPrefix(s string) bool {
	cur := &t.root
	idx := 0

	for idx < len(s) {
		label, child, ok := cur.findEdge(s[idx])
		if !ok {
			return false
		}
		rest := s[idx:]
		if len(label) > len(rest) {
			return label[:len(rest)] == rest
		}
		if rest[:len(label)] != label {
			return false
		}
		cur = child
		idx += len(label)
	}
	return true
}

// Keys returns all stored keys in lexicographic order.
func (t *Trie) Keys() []string {
	var keys []string
	it := t.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			return keys
		}
		keys = append(keys, item.Key)
	}
}

// Values returns all stored values in the order of Keys.
func (t *Trie) Values() []interface{} {
	var vals []interface{}
	it := t.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			return vals
		}
		vals = append(vals, item.Val)
	}
}

// Items returns all stored key/value pairs in the order of Keys.
func (t *Trie) Items() []Item {
	var items []Item
	it := t.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

// String renders all stored pairs in enumeration order. The output is for
// diagnostics only, not a serialization format.
func (t *Trie) String() string {
	var buf strings.Builder
	buf.WriteString("patricia{")

	it := t.Iter()
	first := true
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			buf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&buf, "%q: %v", item.Key, item.Val)
	}

	buf.WriteByte('}')
	return buf.String()
}
