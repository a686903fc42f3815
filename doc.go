// Package patricia implements a PATRICIA trie (a compressed radix tree)
// mapping string keys to arbitrary values.
//
// Besides the usual dictionary operations (Set/Get/Has/Delete) the trie
// supports scanning: given a text and a window into it, find the longest
// stored key that is a prefix of the window (LongestMatch), or enumerate
// every such key shortest-first (Matches). Stored keys can also be listed
// by a common prefix (IterPrefix) and probed for prefix existence
// (IsPrefix).
//
// Structure:
// ---------
//
// Every node holds an optional terminal value and a set of labelled edges.
// Labels are merged maximally: a node only exists where keys diverge or
// end, so looking up a key touches at most len(key) nodes. No two edges of
// one node start with the same byte, which makes the next edge a
// single-byte dispatch.
//
// The trie {"foo", "baar", "baarhus", "bazar"} looks like this:
//
//	                        ,-- ["ar"] --- [term:"baar"] -- ["hus"] -- [term:"baarhus"]
//	        ,-- ["ba"] -- --+
//	[root] --+              `-- ["zar"] -- [term:"bazar"]
//	        `-- ["foo"] -- [term:"foo"]
//
// A value on the root is the empty key. It matches every scan window with
// length zero, so a trie holding "" never fails a LongestMatch.
//
// Deletion is logical: it clears the terminal value and never removes
// nodes or edges. A trie that has seen many deletions can be compacted by
// rebuilding it from its own contents:
//
//	t = patricia.NewTrie(t.Items()...)
//
// The trie is not safe for concurrent use; callers must serialize
// mutations against all other operations.
package patricia
