package inmemoryscene

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/matexport/internal/node"
	"github.com/specialistvlad/matexport/internal/plug"
	"github.com/specialistvlad/matexport/internal/scene"
)

var _ scene.Graph = (*Store)(nil)

// Store implements the scene.Graph interface using maps and a mutex
// for thread-safe concurrent access. Insertion order is preserved so that
// enumeration is deterministic.
type Store struct {
	mu    sync.RWMutex
	order []string
	nodes map[string]*node.Node
	// incoming is keyed by destination plug string.
	incoming map[string][]plug.Address
	// touching lists every connection a node takes part in, keyed by node name.
	touching map[string][]plug.Connection
}

// New creates a new, empty in-memory scene store.
func New() *Store {
	return &Store{
		nodes:    make(map[string]*node.Node),
		incoming: make(map[string][]plug.Address),
		touching: make(map[string][]plug.Connection),
	}
}

// AddNode adds a node to the store. Re-adding a node with the same name and
// type merges its attributes and parents; a type clash is an error.
func (s *Store) AddNode(ctx context.Context, n *node.Node) error {
	if n == nil || n.Name == "" {
		return fmt.Errorf("node must have a name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.nodes[n.Name]
	if !exists {
		if n.Attrs == nil {
			n.Attrs = make(map[string]any)
		}
		s.nodes[n.Name] = n
		s.order = append(s.order, n.Name)
		return nil
	}

	if existing.Type != n.Type {
		return fmt.Errorf("node '%s' declared as both '%s' and '%s'", n.Name, existing.Type, n.Type)
	}
	for k, v := range n.Attrs {
		existing.Attrs[k] = v
	}
	existing.Parents = appendUnique(existing.Parents, n.Parents...)
	existing.Intermediate = existing.Intermediate || n.Intermediate
	return nil
}

// Connect records a connection from one plug into another. Both nodes must
// already exist in the store.
func (s *Store) Connect(ctx context.Context, from, to plug.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[from.Node]; !exists {
		return fmt.Errorf("connection source node '%s' not found in scene", from.Node)
	}
	if _, exists := s.nodes[to.Node]; !exists {
		return fmt.Errorf("connection destination node '%s' not found in scene", to.Node)
	}

	key := to.String()
	for _, src := range s.incoming[key] {
		if src.Equal(from) {
			return nil
		}
	}
	s.incoming[key] = append(s.incoming[key], from)

	conn := plug.Connection{Source: from, Destination: to}
	s.touching[from.Node] = append(s.touching[from.Node], conn)
	if to.Node != from.Node {
		s.touching[to.Node] = append(s.touching[to.Node], conn)
	}
	return nil
}

// Node retrieves a single node by name.
func (s *Store) Node(ctx context.Context, name string) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[name]
	return n, ok
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// NodesOfType lists node names of the given type in insertion order.
func (s *Store) NodesOfType(ctx context.Context, nodeType string, includeIntermediate bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for _, name := range s.order {
		n := s.nodes[name]
		if n.Type != nodeType {
			continue
		}
		if n.Intermediate && !includeIntermediate {
			continue
		}
		names = append(names, name)
	}
	return names
}

// NodeType returns the host type name of a node.
func (s *Store) NodeType(ctx context.Context, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[name]
	if !ok {
		return "", false
	}
	return n.Type, true
}

// Parents returns a copy of the node's parent paths.
func (s *Store) Parents(ctx context.Context, name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[name]
	if !ok || len(n.Parents) == 0 {
		return nil
	}
	return append([]string(nil), n.Parents...)
}

// Sources returns the plugs connected into p.
func (s *Store) Sources(ctx context.Context, p plug.Address) []plug.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	srcs := s.incoming[p.String()]
	if len(srcs) == 0 {
		return nil
	}
	return append([]plug.Address(nil), srcs...)
}

// ConnectedNodes returns the unique neighbours of a node, optionally
// filtered by type.
func (s *Store) ConnectedNodes(ctx context.Context, name, nodeType string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	seen := make(map[string]struct{})
	for _, conn := range s.touching[name] {
		other := conn.Destination.Node
		if conn.Destination.Node == name {
			other = conn.Source.Node
		}
		if other == name {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		if nodeType != "" && s.nodes[other].Type != nodeType {
			continue
		}
		seen[other] = struct{}{}
		names = append(names, other)
	}
	return names
}

// HasAttr reports whether the attribute is declared on the node.
func (s *Store) HasAttr(ctx context.Context, name, attr string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[name]
	return ok && n.HasAttr(attr)
}

// Attr returns the declared value of an attribute.
func (s *Store) Attr(ctx context.Context, p plug.Address) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[p.Node]
	if !ok {
		return nil, false
	}
	return n.Attr(p.Attr)
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, d := range dst {
			if d == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
