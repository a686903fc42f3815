package patricia

// Item is a key/value pair stored in a Trie.
type Item struct {
	Key string
	Val interface{}
}

// Trie is a compressed prefix tree mapping string keys to values. The zero
// value is an empty trie ready for use.
type Trie struct {
	root node
}

// InitTrie resets a trie and bulk-loads the given items, in order.
func InitTrie(t *Trie, items ...Item) *Trie {
	*t = Trie{}
	for _, item := range items {
		t.Set(item.Key, item.Val)
	}
	return t
}

// NewTrie returns a trie holding the given items.
func NewTrie(items ...Item) *Trie {
	return InitTrie(&Trie{}, items...)
}

// Set associates a value with a key, overwriting any previous value.
// Setting the empty key stores the value on the root.
func (t *Trie) Set(key string, val interface{}) {
	cur := &t.root
	idx := 0

	for idx < len(key) {
		label, child, ok := cur.findEdge(key[idx])
		if !ok {
			// no edge shares the leading byte - attach the whole
			// remainder as a new leaf
			cur.addEdge(key[idx:], &node{val: val, terminal: true})
			return
		}
		if rest := key[idx:]; len(rest) >= len(label) && rest[:len(label)] == label {
			// the whole label matches - descend
			cur = child
			idx += len(label)
			continue
		}
		// the label diverges from the key - split the edge at the
		// longest common prefix and continue from the intermediate node
		p := commonPrefixLen(label, key[idx:])
		cur = cur.splitEdge(key[idx], p)
		idx += p
	}

	cur.val = val
	cur.terminal = true
}

// commonPrefixLen returns the length of the longest common prefix of a and
// b, which must already share the leading byte.
func commonPrefixLen(a, b string) int {
	last := len(a)
	if len(b) < last {
		last = len(b)
	}
	p := 1
	for p < last && a[p] == b[p] {
		p++
	}
	return p
}

// Get returns the value stored under an exact key. On a miss the error is
// a *KeyError carrying the longest structurally matched prefix of the key.
func (t *Trie) Get(key string) (interface{}, error) {
	w := t.walk(key, 0, len(key))
	for w.pos < len(key) {
		if !w.next() {
			return nil, &KeyError{Path: key[:w.pos]}
		}
	}
	if !w.cur.terminal {
		return nil, &KeyError{Path: key}
	}
	return w.cur.val, nil
}

// Has reports whether an exact key is stored in the trie.
func (t *Trie) Has(key string) bool {
	_, err := t.Get(key)
	return err == nil
}

// Delete removes a key. The removal is logical: the terminal value is
// cleared while nodes and edges stay in place, so heavy insert/delete
// cycles fragment the tree (see the package doc for the rebuild idiom).
// Deleting an absent key fails with a *KeyError.
func (t *Trie) Delete(key string) error {
	w := t.walk(key, 0, len(key))
	for w.pos < len(key) {
		if !w.next() {
			return &KeyError{Path: key[:w.pos]}
		}
	}
	if !w.cur.terminal {
		return &KeyError{Path: key}
	}
	w.cur.val = nil
	w.cur.terminal = false
	return nil
}

// Len counts the stored keys with a full traversal. It is O(n) on purpose:
// logical deletion makes a cached size easy to get wrong.
func (t *Trie) Len() int {
	num := 0
	it := t.Iter()
	for {
		if _, ok := it.Next(); !ok {
			return num
		}
		num++
	}
}
