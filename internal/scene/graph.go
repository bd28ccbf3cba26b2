// Package scene defines the capability interface through which the exporter
// reads a shading network.
//
// # Why Scene Package Exists
//
// Material export only ever reads from the scene: it enumerates meshes, walks
// parent links, follows connections and reads attribute values. Graph names
// exactly those reads, so the resolver and exporter can run against any
// backing store (the in-memory snapshot in internal/inmemoryscene, or a live
// host bridge) and can be unit-tested against synthetic graphs.
//
// # Lifecycle and Usage
//
// A Graph is:
//  1. **Populated** once by a Loader (or by tests through the concrete store)
//  2. **Read-only** for the whole export pass
//  3. **Discarded** after the document has been written
//
// No method returns an error. Missing nodes, attributes and connections come
// back as empty results; deciding what absence means is the caller's job.
package scene

import (
	"context"

	"github.com/specialistvlad/matexport/internal/plug"
)

// Graph is the read-only view of a scene snapshot.
type Graph interface {
	// NodesOfType lists node names of the given host type in snapshot order.
	// Intermediate objects are left out unless includeIntermediate is set.
	NodesOfType(ctx context.Context, nodeType string, includeIntermediate bool) []string

	// NodeType returns the host type name of a node, and false if the node
	// does not exist.
	NodeType(ctx context.Context, name string) (string, bool)

	// Parents returns the full DAG paths of a node's parents.
	Parents(ctx context.Context, name string) []string

	// Sources returns the plugs connected into p, in connection order.
	Sources(ctx context.Context, p plug.Address) []plug.Address

	// ConnectedNodes returns the unique names of nodes connected to the named
	// node in either direction, in connection order. An empty nodeType
	// matches every type.
	ConnectedNodes(ctx context.Context, name, nodeType string) []string

	// HasAttr reports whether the attribute is declared on the node.
	HasAttr(ctx context.Context, name, attr string) bool

	// Attr returns the current value of an attribute, and false if the node
	// or the attribute does not exist.
	Attr(ctx context.Context, p plug.Address) (any, bool)
}

// Loader builds a Graph from snapshot files.
type Loader interface {
	// Load reads every snapshot file found under the given paths and returns
	// the populated graph.
	Load(ctx context.Context, paths ...string) (Graph, error)
}
