// Package export builds the material document for a scene: which shaders
// each mesh uses, and what every shader's recognized inputs resolve to.
package export

import (
	"context"

	"github.com/specialistvlad/matexport/internal/ctxlog"
	"github.com/specialistvlad/matexport/internal/node"
	"github.com/specialistvlad/matexport/internal/plug"
	"github.com/specialistvlad/matexport/internal/resolver"
	"github.com/specialistvlad/matexport/internal/scene"
)

// ShaderAttributes is the fixed, ordered list of standard-surface inputs
// that get exported. Downstream importers rely on these exact names.
var ShaderAttributes = []string{
	"baseColor",
	"metalness",
	"specular",
	"specularRoughness",
	"subsurface",
	"subsurfaceColor",
	"subsurfaceRadius",
	"transmission",
	"emissionColor",
	"coat",
	"coatRoughness",
}

const (
	attrSurfaceShader      = "surfaceShader"
	attrDisplacementShader = "displacementShader"
	attrDisplacement       = "displacement"
)

// Exporter turns a scene graph into a Document.
type Exporter struct {
	graph    scene.Graph
	resolver *resolver.Resolver
}

// New creates an Exporter.
func New(g scene.Graph, r *resolver.Resolver) *Exporter {
	return &Exporter{graph: g, resolver: r}
}

// Export walks every renderable mesh and collects its shader assignments.
// A shader shared by several meshes is recorded once.
func (e *Exporter) Export(ctx context.Context) *Document {
	logger := ctxlog.FromContext(ctx)
	doc := NewDocument()

	meshes := e.graph.NodesOfType(ctx, node.TypeMesh, false)
	logger.Debug("Exporting meshes.", "count", len(meshes))

	for _, mesh := range meshes {
		entry := &MeshEntry{
			Transform: e.transformOf(ctx, mesh),
			Materials: []string{},
		}
		doc.Meshes[mesh] = entry

		for _, sg := range e.graph.ConnectedNodes(ctx, mesh, node.TypeShadingEngine) {
			shader, ok := e.surfaceShader(ctx, sg)
			if !ok {
				logger.Debug("Shading group has no standard surface shader, skipping.", "mesh", mesh, "shading_group", sg)
				continue
			}

			record, seen := doc.Shaders[shader]
			if !seen {
				record = e.buildRecord(ctx, shader)
				doc.Shaders[shader] = record
			}
			e.addDisplacement(ctx, sg, shader, record)

			entry.Materials = append(entry.Materials, shader)
		}
		logger.Debug("Mesh exported.", "mesh", mesh, "transform", entry.Transform, "materials", entry.Materials)
	}

	logger.Info("Scene export complete.", "meshes", len(doc.Meshes), "shaders", len(doc.Shaders))
	return doc
}

// transformOf returns the mesh's first parent. Meshes without a parent are
// exported with an empty transform.
func (e *Exporter) transformOf(ctx context.Context, mesh string) string {
	logger := ctxlog.FromContext(ctx)
	parents := e.graph.Parents(ctx, mesh)
	switch len(parents) {
	case 0:
		logger.Warn("Mesh has no parent transform.", "mesh", mesh)
		return ""
	case 1:
		return parents[0]
	default:
		logger.Debug("Mesh has several parents, using the first.", "mesh", mesh, "parents", parents)
		return parents[0]
	}
}

// surfaceShader returns the standard surface connected into the shading
// group's surfaceShader input.
func (e *Exporter) surfaceShader(ctx context.Context, sg string) (string, bool) {
	for _, src := range e.graph.Sources(ctx, plug.New(sg, attrSurfaceShader)) {
		nodeType, _ := e.graph.NodeType(ctx, src.Node)
		if node.KindOf(nodeType) == node.KindSurfaceShader {
			return src.Node, true
		}
	}
	return "", false
}

func (e *Exporter) buildRecord(ctx context.Context, shader string) *MaterialRecord {
	logger := ctxlog.FromContext(ctx)
	record := newMaterialRecord()

	for _, attr := range ShaderAttributes {
		p := plug.New(shader, attr)
		if tex := e.resolver.Resolve(ctx, p); tex.Found() {
			record.Textures[attr] = tex
			continue
		}
		if !e.graph.HasAttr(ctx, shader, attr) {
			continue
		}
		raw, _ := e.graph.Attr(ctx, p)
		record.Values[attr] = unwrapSingle(raw)
	}

	logger.Debug("Shader record built.", "shader", shader, "textures", len(record.Textures), "values", len(record.Values))
	return record
}

// addDisplacement resolves the displacement file of one shading group. It runs
// for every assignment, but the first displacement found for a shader wins.
func (e *Exporter) addDisplacement(ctx context.Context, sg, shader string, record *MaterialRecord) {
	sources := e.graph.Sources(ctx, plug.New(sg, attrDisplacementShader))
	if len(sources) == 0 {
		return
	}
	tex := e.resolver.Resolve(ctx, plug.New(sources[0].Node, attrDisplacement))
	if !tex.Found() {
		return
	}

	if existing, ok := record.Textures[attrDisplacement]; ok {
		if existing != tex {
			ctxlog.FromContext(ctx).Warn("Shader already has a different displacement, keeping the first.",
				"shader", shader, "shading_group", sg, "kept", existing.FilePath, "ignored", tex.FilePath)
		}
		return
	}
	record.Textures[attrDisplacement] = tex
}

// unwrapSingle flattens a one-element sequence to its element, the way host
// attribute reads wrap compound values.
func unwrapSingle(v any) any {
	switch s := v.(type) {
	case []any:
		if len(s) == 1 {
			return s[0]
		}
	case []float64:
		if len(s) == 1 {
			return s[0]
		}
	case []string:
		if len(s) == 1 {
			return s[0]
		}
	}
	return v
}
