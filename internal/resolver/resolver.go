package resolver

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/matexport/internal/ctxlog"
	"github.com/specialistvlad/matexport/internal/node"
	"github.com/specialistvlad/matexport/internal/plug"
	"github.com/specialistvlad/matexport/internal/scene"
)

// Resolver walks connection chains of a scene graph.
type Resolver struct {
	graph scene.Graph
	cache *lru.Cache[string, Texture]
}

// Option configures a Resolver.
type Option func(*resolverOptions)

type resolverOptions struct {
	cacheSize int
}

// WithCache memoizes the result of every plug visited on a chain. A size of
// zero or less disables caching.
func WithCache(size int) Option {
	return func(o *resolverOptions) {
		o.cacheSize = size
	}
}

// New creates a Resolver over the given graph.
func New(g scene.Graph, opts ...Option) (*Resolver, error) {
	if g == nil {
		return nil, fmt.Errorf("resolver requires a scene graph")
	}
	var o resolverOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resolver{graph: g}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, Texture](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("init resolver cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// Resolve returns the file behind p, or an empty Texture when the chain is
// unwired, passes through an unrecognized node, or loops back on itself.
func (r *Resolver) Resolve(ctx context.Context, p plug.Address) Texture {
	return r.follow(ctx, p, make(map[string]struct{}))
}

func (r *Resolver) follow(ctx context.Context, p plug.Address, visited map[string]struct{}) Texture {
	logger := ctxlog.FromContext(ctx)
	key := p.String()

	if r.cache != nil {
		if tex, ok := r.cache.Get(key); ok {
			logger.Debug("Resolver cache hit.", "plug", key, "file_path", tex.FilePath)
			return tex
		}
	}

	tex := r.hop(ctx, p, visited)
	if r.cache != nil {
		r.cache.Add(key, tex)
	}
	return tex
}

// hop inspects the first incoming connection of p. The straight-line chain
// from any plug is fixed, so a chain that loops back is absent no matter where
// it was entered; that keeps per-plug caching consistent.
func (r *Resolver) hop(ctx context.Context, p plug.Address, visited map[string]struct{}) Texture {
	logger := ctxlog.FromContext(ctx)

	sources := r.graph.Sources(ctx, p)
	if len(sources) == 0 {
		logger.Debug("No incoming connection.", "plug", p.String())
		return Texture{}
	}
	if len(sources) > 1 {
		logger.Debug("Multiple incoming connections, following the first.", "plug", p.String(), "count", len(sources))
	}

	src := sources[0]
	if _, seen := visited[src.Node]; seen {
		logger.Debug("Connection chain loops back, giving up.", "plug", p.String(), "node", src.Node)
		return Texture{}
	}
	visited[src.Node] = struct{}{}

	nodeType, _ := r.graph.NodeType(ctx, src.Node)
	kind := node.KindOf(nodeType)
	logger.Debug("Following connection.", "plug", p.String(), "source", src.String(), "kind", kind.String())

	switch kind {
	case node.KindFileSource:
		return r.readFile(ctx, src.Node)
	case node.KindBumpIndirection, node.KindNormalIndirection:
		input, _ := kind.Passthrough()
		return r.follow(ctx, plug.New(src.Node, input), visited)
	default:
		return Texture{}
	}
}

func (r *Resolver) readFile(ctx context.Context, fileNode string) Texture {
	var tex Texture
	if v, ok := r.graph.Attr(ctx, plug.New(fileNode, attrFileTextureName)); ok {
		if path, isString := v.(string); isString {
			tex.FilePath = path
		}
	}
	if v, ok := r.graph.Attr(ctx, plug.New(fileNode, attrUVTilingMode)); ok {
		tex.UDIM = isTiledMode(v)
	}
	return tex
}
