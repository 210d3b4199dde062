package louds

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionBasic(t *testing.T) {
	a := buildTrie(t, "apple", "banana")
	b := buildTrie(t, "apricot", "cherry")

	merged := Union(a, b)
	want := []string{"apple", "apricot", "banana", "cherry"}

	require.Equal(t, len(want), merged.NumKeys())
	for id, key := range want {
		got, ok := merged.Lookup(key)
		require.True(t, ok, "Lookup(%q)", key)
		assert.Equal(t, id, got)
	}
	_, ok := merged.Lookup("grape")
	assert.False(t, ok)
}

func TestUnionOverlap(t *testing.T) {
	a := buildTrie(t, "", "app", "apple", "cat")
	b := buildTrie(t, "", "apple", "bat", "cat")

	merged := Union(a, b)
	want := []string{"", "app", "apple", "bat", "cat"}

	require.Equal(t, want, collect(t, merged))
	for id, key := range want {
		got, ok := merged.Lookup(key)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestUnionWithEmpty(t *testing.T) {
	a := buildTrie(t, "x", "y")
	empty := buildTrie(t)

	for _, merged := range []*Trie{Union(a, empty), Union(empty, a)} {
		require.Equal(t, 2, merged.NumKeys())
		require.Equal(t, []string{"x", "y"}, collect(t, merged))
	}

	both := Union(empty, buildTrie(t))
	assert.Equal(t, 0, both.NumKeys())
}

func TestUnionRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	ka := genKeys(rng, 250, 8, "abcd")
	kb := genKeys(rng, 250, 8, "abcde")

	member := make(map[string]bool)
	for _, k := range ka {
		member[k] = true
	}
	for _, k := range kb {
		member[k] = true
	}
	want := make([]string, 0, len(member))
	for k := range member {
		want = append(want, k)
	}
	sort.Strings(want)

	merged := Union(buildTrie(t, ka...), buildTrie(t, kb...))
	require.Equal(t, len(want), merged.NumKeys())
	require.Equal(t, want, collect(t, merged))

	for i := 0; i < 1000; i++ {
		l := rng.Intn(10)
		b := make([]byte, l)
		for j := range b {
			b[j] = "abcde"[rng.Intn(5)]
		}
		q := string(b)
		id, ok := merged.Lookup(q)
		require.Equal(t, member[q], ok, "Lookup(%q)", q)
		if ok {
			require.Equal(t, sort.SearchStrings(want, q), id)
		}
	}
}
