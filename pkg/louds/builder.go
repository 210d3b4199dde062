package louds

// rootLabel is the placeholder edge label carried by the root node.
// Lookup never examines it.
const rootLabel = ' '

// Builder constructs a Trie incrementally. Keys must be added in
// strictly ascending order under bytewise comparison; the empty key,
// if present, must be the very first one. A Builder is a one-shot
// machine: Build finalises it and returns the read-only index.
//
// Precondition violations (out-of-order Add, Add after Build, double
// Build) are caller bugs and panic.
type Builder struct {
	levels  []*level
	nKeys   int
	nNodes  int
	lastKey string
	built   bool
}

// NewBuilder returns an empty builder holding just the root node and
// the virtual super-root sentinel.
func NewBuilder() *Builder {
	b := &Builder{
		levels: []*level{{}, {}},
		nNodes: 1,
	}
	b.levels[0].louds.Add(false)
	b.levels[0].louds.Add(true)
	b.levels[1].louds.Add(true)
	b.levels[0].outs.Add(false)
	b.levels[0].labels = append(b.levels[0].labels, rootLabel)
	return b
}

// NumKeys returns the number of keys added so far.
func (b *Builder) NumKeys() int {
	return b.nKeys
}

// NumNodes returns the number of trie nodes, including the root.
func (b *Builder) NumNodes() int {
	return b.nNodes
}

// Add inserts the next key. key must compare strictly greater than
// every previously added key.
func (b *Builder) Add(key string) {
	if b.built {
		panic("louds: Add after Build")
	}
	if b.nKeys > 0 && key <= b.lastKey {
		panic("louds: keys must be added in strictly ascending order")
	}

	if key == "" {
		// Lexicographically smallest, so only valid as the first key.
		// The root doubles as its terminal node.
		b.levels[0].outs.Set(0, true)
		b.levels[1].offset++
		b.nKeys++
		return
	}

	for len(b.levels) <= len(key)+1 {
		b.levels = append(b.levels, &level{})
	}

	// Depth of the first byte where key diverges from the previous
	// one. Strict ordering guarantees d < len(key).
	d := 0
	for d < len(b.lastKey) && key[d] == b.lastKey[d] {
		d++
	}

	// Branch: close the previous sibling run by flipping its dangling
	// terminator into a child slot, then leave a fresh terminator.
	lv := b.levels[d+1]
	lv.louds.Set(lv.louds.Len()-1, false)
	lv.louds.Add(true)
	lv.outs.Add(false)
	lv.labels = append(lv.labels, key[d])
	b.nNodes++

	// Extend: a single-child chain for the remaining bytes.
	for i := d + 1; i < len(key); i++ {
		lv := b.levels[i+1]
		lv.louds.Add(false)
		lv.louds.Add(true)
		lv.outs.Add(false)
		lv.labels = append(lv.labels, key[i])
		b.nNodes++
	}

	// Terminate: open a speculative child block below the new leaf
	// and mark the leaf as a terminal.
	b.levels[len(key)+1].louds.Add(true)
	b.levels[len(key)+1].offset++
	leaf := b.levels[len(key)]
	leaf.outs.Set(leaf.outs.Len()-1, true)

	b.nKeys++
	b.lastKey = key
}

// Build freezes the structure, computes the rank/select indices and
// the cumulative per-level key-id offsets, and returns the read-only
// index. The builder must not be used afterwards.
func (b *Builder) Build() *Trie {
	if b.built {
		panic("louds: Build called twice")
	}
	b.built = true

	offset := 0
	size := 0
	for _, lv := range b.levels {
		lv.louds.Build()
		lv.outs.Build()
		offset += lv.offset
		lv.offset = offset
		size += lv.size()
	}
	return &Trie{
		levels: b.levels,
		nKeys:  b.nKeys,
		nNodes: b.nNodes,
		size:   size,
	}
}
