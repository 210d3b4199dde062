package louds

// Trie is the finalised, read-only index produced by Builder.Build.
// It is safe for concurrent Lookup once published.
type Trie struct {
	levels []*level
	nKeys  int
	nNodes int
	size   int
}

// NumKeys returns the number of keys in the index.
func (t *Trie) NumKeys() int {
	return t.nKeys
}

// NumNodes returns the number of trie nodes, including the root.
func (t *Trie) NumNodes() int {
	return t.nNodes
}

// Size returns the accounted storage footprint in bytes.
func (t *Trie) Size() int {
	return t.size
}

// Lookup returns the id assigned to query and true if the query is a
// member of the key set, or (0, false) otherwise. Ids are dense in
// [0, NumKeys()) and follow the insertion order.
func (t *Trie) Lookup(query string) (int, bool) {
	if len(query) >= len(t.levels) {
		return 0, false
	}
	nodeID := 0
	for i := 0; i < len(query); i++ {
		lv := t.levels[i+1]
		nodePos := 0
		if nodeID != 0 {
			// The child block of node nodeID starts one past the
			// terminator of the preceding parent; the child slots
			// before it number nodePos - nodeID.
			nodePos = lv.louds.Select1(nodeID-1) + 1
			nodeID = nodePos - nodeID
		}
		end := lv.louds.NextSet(nodePos)

		lo, hi := nodeID, nodeID+end-nodePos
		c := query[i]
		found := false
		for lo < hi {
			nodeID = (lo + hi) / 2
			switch {
			case c < lv.labels[nodeID]:
				hi = nodeID
			case c > lv.labels[nodeID]:
				lo = nodeID + 1
			default:
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return 0, false
		}
	}

	lv := t.levels[len(query)]
	if !lv.outs.Get(nodeID) {
		return 0, false
	}
	return lv.offset + lv.outs.Rank1(nodeID), true
}

// children returns the node-id range [lo, hi) of the children that a
// node at the given depth has one level down.
func (t *Trie) children(nodeID, depth int) (lo, hi int) {
	lv := t.levels[depth+1]
	nodePos := 0
	if nodeID != 0 {
		nodePos = lv.louds.Select1(nodeID-1) + 1
	}
	lo = nodePos - nodeID
	hi = lo + lv.louds.NextSet(nodePos) - nodePos
	return lo, hi
}
