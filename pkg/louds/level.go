// Package louds implements a static, compressed string-set index based
// on the level-order unary degree sequence (LOUDS) representation of a
// trie. Keys are byte strings added in strictly ascending order; a
// built index maps each member key to a dense integer id in insertion
// order.
package louds

import "github.com/xflash-panda/louds-index/pkg/bitvec"

// level holds the parallel structures for all trie nodes at one depth.
// Within louds, a 0-bit is a child slot and a 1-bit closes a parent's
// child block; the last appended 1-bit of a level is the speculative
// terminator that the next deeper insertion may reopen.
type level struct {
	louds  bitvec.Vector
	outs   bitvec.Vector
	labels []byte
	offset int // after build: number of keys shorter than this depth
}

func (lv *level) size() int {
	return lv.louds.Size() + lv.outs.Size() + len(lv.labels)
}
