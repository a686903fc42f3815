package patricia

// Match is a stored key found while scanning a text window, together with
// its value. Key is the matched slice of the text itself, so a zero-length
// match at the window start has an empty Key.
type Match struct {
	Key string
	Val interface{}
}

// clampWindow resolves a [start,end) window over a text of length size.
// Negative offsets count from the end of the text and clamp at zero, end
// clamps at size, and an inverted window is empty.
func clampWindow(size, start, end int) (int, int) {
	if start < 0 {
		start += size
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end += size
		if end < 0 {
			end = 0
		}
	}
	if end > size {
		end = size
	}
	if start > end {
		start = end
	}
	return start, end
}

// LongestMatch returns the longest stored key that is a prefix of
// text[start:end], with its value. Negative offsets count from the end of
// the text. A value stored under the empty key is a zero-length match at
// start, so it makes LongestMatch succeed on any window. When no key
// matches, the error is a *KeyError carrying the structurally matched
// window prefix.
func (t *Trie) LongestMatch(text string, start, end int) (Match, error) {
	start, end = clampWindow(len(text), start, end)

	var (
		w     = t.walk(text, start, end)
		best  Match
		found bool
	)
	for {
		if w.cur.terminal {
			best = Match{Key: text[start:w.pos], Val: w.cur.val}
			found = true
		}
		if !w.next() {
			break
		}
	}
	if !found {
		return Match{}, &KeyError{Path: text[start:w.pos]}
	}
	return best, nil
}

// Matches returns a cursor over every stored key that is a prefix of
// text[start:end], shortest first. The cursor is finite and cannot be
// restarted.
func (t *Trie) Matches(text string, start, end int) *MatchIter {
	start, end = clampWindow(len(text), start, end)
	return &MatchIter{w: t.walk(text, start, end), start: start, live: true}
}

// MatchIter yields prefix matches in increasing key length order.
type MatchIter struct {
	w     walker
	start int
	live  bool // the walker position has not been examined yet
}

// Next returns the next match. It reports false once no further edge
// matches inside the window.
func (it *MatchIter) Next() (Match, bool) {
	for it.live {
		cur, pos := it.w.cur, it.w.pos
		if !it.w.next() {
			it.live = false
		}
		if cur.terminal {
			return Match{Key: it.w.text[it.start:pos], Val: cur.val}, true
		}
	}
	return Match{}, false
}
