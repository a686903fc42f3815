package patricia

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scanText = "The fool baal baarhus in the bazar!"

func newScanTrie() *Trie {
	return NewTrie(
		Item{"foo", 1},
		Item{"baar", 2},
		Item{"baarhus", 3},
		Item{"bazar", 4},
	)
}

func TestLongestMatch(t *testing.T) {
	t.Parallel()

	tr := newScanTrie()

	for _, tcase := range []*struct {
		Start  int
		ExpKey string
		ExpVal interface{}
	}{
		{4, "foo", 1},      // "fool ..." - "fool" is not stored
		{14, "baarhus", 3}, // "baar" matches too, the longest wins
		{29, "bazar", 4},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%d", tcase.Start)
		)

		t.Run(name, func(t *testing.T) {
			m, err := tr.LongestMatch(scanText, tcase.Start, len(scanText))

			require.NoError(t, err)
			assert.Equal(t, tcase.ExpKey, m.Key)
			assert.Equal(t, tcase.ExpVal, m.Val)
		})
	}
}

func TestLongestMatch_Presence(t *testing.T) {
	t.Parallel()

	tr := newScanTrie()

	// a stored key is a prefix of the text at exactly these offsets
	presence := map[int]bool{4: true, 14: true, 29: true}

	for i := 0; i < len(scanText); i++ {
		_, err := tr.LongestMatch(scanText, i, len(scanText))

		if presence[i] {
			assert.NoError(t, err, i)
		} else {
			assert.Error(t, err, i)
		}
	}
}

func TestLongestMatch_KeyError(t *testing.T) {
	t.Parallel()

	tr := newScanTrie()

	// "baal ..." walks the "ba" edge and then stalls
	_, err := tr.LongestMatch(scanText, 9, len(scanText))

	var kerr *KeyError
	require.True(t, errors.As(err, &kerr))
	assert.Equal(t, "ba", kerr.Path)
}

func TestMatches_AllOffsets(t *testing.T) {
	t.Parallel()

	tr := newScanTrie()

	var (
		keys []string
		vals []interface{}
	)
	for i := 0; i < len(scanText); i++ {
		it := tr.Matches(scanText, i, len(scanText))
		for {
			m, ok := it.Next()
			if !ok {
				break
			}
			keys = append(keys, m.Key)
			vals = append(vals, m.Val)
		}
	}

	assert.Equal(t, []string{"foo", "baar", "baarhus", "bazar"}, keys)
	assert.Equal(t, []interface{}{1, 2, 3, 4}, vals)
}

func TestMatches_Window(t *testing.T) {
	t.Parallel()

	tr := NewTrie(Item{"foo", 1}, Item{"foobar", 2})

	// a narrow window cuts the longer key off
	m, err := tr.LongestMatch("foobar", 0, 3)

	require.NoError(t, err)
	assert.Equal(t, Match{"foo", 1}, m)

	// the full window yields both matches, shortest first
	var matches []Match
	it := tr.Matches("a foobar!", 2, 8)
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		matches = append(matches, m)
	}

	assert.Equal(t, []Match{{"foo", 1}, {"foobar", 2}}, matches)

	m, err = tr.LongestMatch("a foobar!", 2, 8)

	require.NoError(t, err)
	assert.Equal(t, Match{"foobar", 2}, m)
}

func TestClampWindow(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Size, Start, End int
		ExpStart, ExpEnd int
	}{
		{10, 0, 10, 0, 10},
		{10, 0, 100, 0, 10},   // end clamps to the text length
		{10, -4, 10, 6, 10},   // negative start counts from the end
		{10, -100, 10, 0, 10}, // over-negative start clamps to zero
		{10, 4, -1, 4, 9},     // negative end counts from the end
		{10, 8, 2, 2, 2},      // inverted window is empty
	} {
		start, end := clampWindow(tcase.Size, tcase.Start, tcase.End)

		assert.Equal(t, tcase.ExpStart, start, tcase)
		assert.Equal(t, tcase.ExpEnd, end, tcase)
	}
}

func TestLongestMatch_NegativeStart(t *testing.T) {
	t.Parallel()

	tr := newScanTrie()

	m, err := tr.LongestMatch("in the bazar", -5, 12)

	require.NoError(t, err)
	assert.Equal(t, Match{"bazar", 4}, m)
}

func TestLongestMatch_EmptyKey(t *testing.T) {
	t.Parallel()

	tr := NewTrie(Item{"foo", 1})

	_, err := tr.LongestMatch("nothing here", 0, 12)
	assert.Error(t, err)

	// the empty key is a zero-length match at any window start
	tr.Set("", 0)

	for _, start := range []int{0, 3, 12} {
		m, err := tr.LongestMatch("nothing here", start, 12)

		require.NoError(t, err, start)
		assert.Equal(t, Match{"", 0}, m, start)
	}

	require.NoError(t, tr.Delete(""))

	_, err = tr.LongestMatch("nothing here", 0, 12)
	assert.Error(t, err)
}

func TestMatches_Exhausted(t *testing.T) {
	t.Parallel()

	tr := newScanTrie()
	it := tr.Matches(scanText, 0, len(scanText))

	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}

	// a drained cursor stays drained
	_, ok := it.Next()
	assert.False(t, ok)
}
