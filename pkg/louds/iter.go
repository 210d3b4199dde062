package louds

// Iter enumerates the keys of a built Trie in ascending order, which
// is also id order: the n-th key returned has id n.
type Iter struct {
	t     *Trie
	stack []iterFrame
}

type iterFrame struct {
	nodeID int
	depth  int
	key    string
}

// Iter returns a new iterator positioned before the first key.
func (t *Trie) Iter() *Iter {
	return &Iter{
		t:     t,
		stack: []iterFrame{{nodeID: 0, depth: 0, key: ""}},
	}
}

// Next returns the next key, or ("", false) when the iterator is
// exhausted.
func (it *Iter) Next() (string, bool) {
	for len(it.stack) > 0 {
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if f.depth+1 < len(it.t.levels) {
			lv := it.t.levels[f.depth+1]
			lo, hi := it.t.children(f.nodeID, f.depth)
			// Push in reverse so the smallest label pops first.
			for c := hi - 1; c >= lo; c-- {
				it.stack = append(it.stack, iterFrame{
					nodeID: c,
					depth:  f.depth + 1,
					key:    f.key + string([]byte{lv.labels[c]}),
				})
			}
		}

		if it.t.levels[f.depth].outs.Get(f.nodeID) {
			return f.key, true
		}
	}
	return "", false
}
