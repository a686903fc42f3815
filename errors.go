package patricia

import "fmt"

// KeyError reports a failed exact lookup, deletion or scan. Path holds the
// longest prefix of the query that matched the trie structurally - how far
// the walk got before it stalled.
type KeyError struct {
	Path string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("patricia: key not found (matched %q)", e.Path)
}
