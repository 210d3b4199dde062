// Package domain provides exact and suffix hostname matching backed by
// the LOUDS string-set index.
package domain

import (
	"sort"
	"strings"

	"golang.org/x/net/idna"

	"github.com/xflash-panda/louds-index/pkg/louds"
)

const (
	// Markers appended to stored keys after reversal. Neither byte can
	// occur in a hostname.
	suffixLabel = '\n' // suffix patterns matching the domain itself or any subdomain
	dotLabel    = '\r' // suffix patterns with a leading dot: subdomains only
)

// Matcher answers exact and suffix domain queries. Patterns are stored
// reversed in a single trie, tagged with a marker byte, so every query
// resolves to a handful of exact index lookups.
type Matcher struct {
	trie *louds.Trie
}

// NewMatcher creates a matcher from domain lists.
// domains: exact domain matches.
// domainSuffix: suffix matches; entries with a leading dot match
// subdomains only, entries without match the domain itself too.
func NewMatcher(domains []string, domainSuffix []string) *Matcher {
	keys := make([]string, 0, len(domains)+len(domainSuffix))

	for _, domain := range domainSuffix {
		domain = normalizeDomain(domain)
		if rest, ok := strings.CutPrefix(domain, "."); ok {
			if rest == "" {
				continue
			}
			keys = append(keys, reverseDomain(rest)+string(dotLabel))
		} else if domain != "" {
			keys = append(keys, reverseDomain(domain)+string(suffixLabel))
		}
	}
	for _, domain := range domains {
		domain = normalizeDomain(domain)
		if domain == "" {
			continue
		}
		keys = append(keys, reverseDomain(domain))
	}

	sort.Strings(keys)

	builder := louds.NewBuilder()
	prev := ""
	for i, key := range keys {
		if i > 0 && key == prev {
			continue
		}
		builder.Add(key)
		prev = key
	}
	return &Matcher{trie: builder.Build()}
}

// Match reports whether the given domain matches any rule.
func (m *Matcher) Match(domain string) bool {
	d := normalizeDomain(domain)
	if d == "" {
		return false
	}
	rd := reverseDomain(d)

	if _, ok := m.trie.Lookup(rd); ok {
		return true
	}
	if _, ok := m.trie.Lookup(rd + string(suffixLabel)); ok {
		return true
	}
	// Every dot-suffix of the query is a prefix of the reversed form,
	// so suffix candidates need no further string reversal.
	for i := len(d) - 1; i > 0; i-- {
		if d[i] != '.' {
			continue
		}
		tail := rd[:len(d)-i-1]
		if _, ok := m.trie.Lookup(tail + string(suffixLabel)); ok {
			return true
		}
		if _, ok := m.trie.Lookup(tail + string(dotLabel)); ok {
			return true
		}
	}
	return false
}

// Size returns the accounted byte size of the underlying index.
func (m *Matcher) Size() int {
	return m.trie.Size()
}

// normalizeDomain lower-cases the domain, trims a trailing root dot
// and converts internationalised names to their ASCII (punycode) form.
// Conversion failures fall back to the lower-cased input so malformed
// rules still match themselves.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSuffix(domain, "."))
	if isASCII(domain) {
		return domain
	}
	leadingDot := strings.HasPrefix(domain, ".")
	ascii, err := idna.Lookup.ToASCII(strings.TrimPrefix(domain, "."))
	if err != nil {
		return domain
	}
	if leadingDot {
		return "." + ascii
	}
	return ascii
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// reverseDomain reverses the domain bytewise for trie storage. The
// same transform is applied to rules and queries, so it only needs to
// be self-consistent.
func reverseDomain(domain string) string {
	b := []byte(domain)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
