package navi

import (
	"iter"
	"strings"

	"github.com/lestrrat-go/trie/v2"
)

type impl = trie.Trie[string, string, *route]

// routetrie indexes registered routes by their normalized pattern,
// one trie level per segment.
type routetrie struct {
	*impl
}

func newRoutetrie() *routetrie {
	return &routetrie{
		impl: trie.New[string, string, *route](segmentTokenizer{}),
	}
}

type segmentTokenizer struct{}

// Tokenize splits a normalized pattern into its segments. The root
// pattern "/" is a single empty segment.
func (segmentTokenizer) Tokenize(s string) (iter.Seq[string], error) {
	if s == "/" {
		s = ""
	}
	comps := strings.Split(s, "/")
	return func(yield func(string) bool) {
		for _, c := range comps {
			if !yield(c) {
				break
			}
		}
	}, nil
}

func (t *routetrie) walk(fn func(*route)) {
	trie.Walk(t.impl, trie.VisitFunc[string, *route](func(n trie.Node[string, *route], _ trie.VisitMetadata) bool {
		if r := n.Value(); r != nil {
			fn(r)
		}
		return true
	}))
}
