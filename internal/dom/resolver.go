package dom

import "golang.org/x/net/html"

// Resolver looks up nodes by selector, memoizing hits for the lifetime of
// the document. The cache is never invalidated; the pipeline only ever
// replaces the contents of container nodes, never the containers themselves.
type Resolver struct {
	root  *html.Node
	cache map[string]*html.Node
}

// NewResolver creates a Resolver for the given document root.
func NewResolver(root *html.Node) *Resolver {
	return &Resolver{
		root:  root,
		cache: make(map[string]*html.Node),
	}
}

// Lookup returns the first node matching the selector, consulting the cache
// first. Returns nil when nothing matches; callers must check.
func (r *Resolver) Lookup(selector string) *html.Node {
	return r.resolve(selector, true)
}

// LookupUncached queries the tree directly, bypassing and not populating
// the cache.
func (r *Resolver) LookupUncached(selector string) *html.Node {
	return r.resolve(selector, false)
}

func (r *Resolver) resolve(selector string, useCache bool) *html.Node {
	if useCache {
		if n, ok := r.cache[selector]; ok {
			return n
		}
	}
	n := FirstMatch(r.root, selector)
	if n != nil && useCache {
		r.cache[selector] = n
	}
	return n
}
