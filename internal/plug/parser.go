package plug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nodeRegex accepts plain names, DAG paths and namespaced names.
	nodeRegex = regexp.MustCompile(`^[a-zA-Z0-9_|:-]+$`)
	// segmentRegex matches a single attribute segment, e.g. `outColor` or `instObjGroups[0]`.
	segmentRegex = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)(?:\[(\d+)\])?$`)
)

// Parse splits a raw `node.attribute` string at its first dot.
func Parse(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("plug cannot be empty")
	}

	node, attr, found := strings.Cut(raw, ".")
	if !found {
		return Address{}, fmt.Errorf("plug %q has no attribute part", raw)
	}
	if node == "" {
		return Address{}, fmt.Errorf("plug %q has an empty node name", raw)
	}
	if !nodeRegex.MatchString(node) || strings.HasSuffix(node, "|") {
		return Address{}, fmt.Errorf("invalid node name in plug %q: %q", raw, node)
	}

	for _, segment := range strings.Split(attr, ".") {
		if segment == "" {
			return Address{}, fmt.Errorf("plug %q contains an empty attribute segment", raw)
		}
		if !segmentRegex.MatchString(segment) {
			return Address{}, fmt.Errorf("invalid attribute segment in plug %q: %q", raw, segment)
		}
	}

	return Address{Node: node, Attr: attr}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(raw string) Address {
	a, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return a
}
