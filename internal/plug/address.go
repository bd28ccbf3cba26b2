package plug

// String serializes the Address into its canonical `node.attribute` form.
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return a.Node + "." + a.Attr
}

// Equal reports whether both addresses name the same plug.
func (a Address) Equal(other Address) bool {
	return a.Node == other.Node && a.Attr == other.Attr
}
