package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Nodes       []*NodeBlock    `hcl:"node,block"`
	Connections []*ConnectBlock `hcl:"connect,block"`
	Remain      hcl.Body        `hcl:",remain"`
}

// NodeBlock is `node "<type>" "<name>" { ... }`.
type NodeBlock struct {
	Type         string           `hcl:"type,label"`
	Name         string           `hcl:"name,label"`
	Parents      hcl.Expression   `hcl:"parents,optional"`
	Intermediate bool             `hcl:"intermediate,optional"`
	Attributes   *AttributesBlock `hcl:"attributes,block"`
}

// AttributesBlock holds arbitrary `name = value` pairs, one per node attribute.
type AttributesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// ConnectBlock is `connect { from = "a.out" to = "b.in" }`.
type ConnectBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}
