package patricia

// walker steps through the trie along a text window, one fully matching
// edge at a time. It is the traversal primitive behind the exact-match and
// scanning operations. A walker cannot be rewound; take a fresh one to
// walk again.
type walker struct {
	cur  *node
	text string
	pos  int
	end  int
}

func (t *Trie) walk(text string, start, end int) walker {
	return walker{cur: &t.root, text: text, pos: start, end: end}
}

// next descends into the child whose edge label matches the text at the
// current position, staying inside the window. It reports false when the
// window is exhausted or no edge matches in full.
func (w *walker) next() bool {
	if w.pos >= w.end {
		return false
	}
	label, child, ok := w.cur.findEdge(w.text[w.pos])
	if !ok || w.pos+len(label) > w.end {
		return false
	}
	if w.text[w.pos:w.pos+len(label)] != label {
		return false
	}
	w.cur = child
	w.pos += len(label)
	return true
}
