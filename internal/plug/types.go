package plug

// Address is the structured form of a plug: one attribute on one node.
type Address struct {
	Node string
	Attr string
}

// New builds an Address from its parts without validation.
func New(node, attr string) Address {
	return Address{Node: node, Attr: attr}
}

// IsZero reports whether the address has neither node nor attribute.
func (a Address) IsZero() bool {
	return a.Node == "" && a.Attr == ""
}

// Connection is a directed edge from a source plug into a destination plug.
type Connection struct {
	Source      Address
	Destination Address
}
