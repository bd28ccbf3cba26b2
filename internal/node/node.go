package node

// Host type names as they appear in scene snapshots.
const (
	TypeMesh            = "mesh"
	TypeTransform       = "transform"
	TypeShadingEngine   = "shadingEngine"
	TypeStandardSurface = "aiStandardSurface"
	TypeFile            = "file"
	TypeBump            = "bump2d"
	TypeNormalMap       = "aiNormalMap"
)

// Node is a single vertex of a scene snapshot: a typed, named object with
// attribute values. Connections are stored by the scene graph, not the node.
type Node struct {
	// Name is the unique identifier, a short name or a full DAG path.
	// Example: "|group1|pCube1"
	Name string
	// Type is the host type name, e.g. "mesh" or "aiStandardSurface".
	Type string
	// Intermediate marks construction-history objects that are never rendered.
	Intermediate bool
	// Parents holds full paths of the node's DAG parents, in declaration order.
	Parents []string
	// Attrs holds the declared attribute values. A key being present means
	// the attribute exists, even when its value is nil.
	Attrs map[string]any
}

// New creates a node with an empty attribute set.
func New(name, nodeType string) *Node {
	return &Node{
		Name:  name,
		Type:  nodeType,
		Attrs: make(map[string]any),
	}
}

// Attr returns the value of a declared attribute.
func (n *Node) Attr(name string) (any, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is declared on the node.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attrs[name]
	return ok
}

// SetAttr declares an attribute with the given value, returning the node for chaining.
func (n *Node) SetAttr(name string, value any) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	n.Attrs[name] = value
	return n
}
