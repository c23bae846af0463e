package docs

import (
	"log/slog"
	"path"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

// Index looks docs up by route and by source path.
type Index struct {
	byRoute  map[string]*Doc
	bySource map[string]*Doc
}

// NewIndex indexes docs. When two docs claim the same route the first one
// (in RelPath order) wins and the collision is logged.
func NewIndex(docs []Doc) *Index {
	idx := &Index{byRoute: map[string]*Doc{}, bySource: map[string]*Doc{}}
	for i := range docs {
		d := &docs[i]
		idx.bySource[d.RelPath] = d
		if existing, ok := idx.byRoute[d.Route]; ok {
			slog.Warn("Duplicate doc route", logfields.Route(d.Route),
				logfields.Source(d.RelPath), slog.String("kept", existing.RelPath))
			continue
		}
		idx.byRoute[d.Route] = d
	}
	return idx
}

// ByRoute returns the doc served at route.
func (x *Index) ByRoute(route string) (*Doc, bool) {
	d, ok := x.byRoute[site.JoinRoute(route)]
	return d, ok
}

// BySource returns the doc whose RelPath is rel.
func (x *Index) BySource(rel string) (*Doc, bool) {
	d, ok := x.bySource[path.Clean(rel)]
	return d, ok
}

// Len is the number of routable docs.
func (x *Index) Len() int { return len(x.byRoute) }
