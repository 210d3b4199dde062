package louds

// Union builds a new index over the union of the key sets of a and b.
// Both inputs must be built. The two sorted key streams are merged
// directly into a fresh builder, so duplicates collapse and the
// resulting ids follow the merged order.
func Union(a, b *Trie) *Trie {
	bu := NewBuilder()
	ia, ib := a.Iter(), b.Iter()
	ka, oka := ia.Next()
	kb, okb := ib.Next()
	for oka || okb {
		switch {
		case !okb || (oka && ka < kb):
			bu.Add(ka)
			ka, oka = ia.Next()
		case !oka || kb < ka:
			bu.Add(kb)
			kb, okb = ib.Next()
		default:
			bu.Add(ka)
			ka, oka = ia.Next()
			kb, okb = ib.Next()
		}
	}
	return bu.Build()
}
