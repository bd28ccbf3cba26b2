// This file contains the logic for translating decoded HCL blocks into scene
// nodes and plug connections.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/matexport/internal/ctxlog"
	"github.com/specialistvlad/matexport/internal/node"
	"github.com/specialistvlad/matexport/internal/plug"
	"github.com/zclconf/go-cty/cty"
)

// translateNode converts a node block into a scene node.
func translateNode(ctx context.Context, b *NodeBlock) (*node.Node, error) {
	logger := ctxlog.FromContext(ctx).With("node_type", b.Type, "node_name", b.Name)
	logger.Debug("Translating HCL node block.")

	if b.Name == "" {
		return nil, fmt.Errorf("node of type '%s' has an empty name", b.Type)
	}
	if b.Type == "" {
		return nil, fmt.Errorf("node '%s' has an empty type", b.Name)
	}

	n := node.New(b.Name, b.Type)
	n.Intermediate = b.Intermediate

	if isExprDefined(ctx, b.Parents, "parents") {
		parents, err := translateParents(b.Parents)
		if err != nil {
			return nil, fmt.Errorf("node '%s': %w", b.Name, err)
		}
		n.Parents = parents
	}

	attrs, diags := extractBodyAttributes(b.Attributes)
	if diags.HasErrors() {
		return nil, fmt.Errorf("node '%s': invalid attributes block: %w", b.Name, diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("node '%s', attribute '%s': %w", b.Name, name, diags)
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("node '%s', attribute '%s': %w", b.Name, name, err)
		}
		n.SetAttr(name, native)
	}

	logger.Debug("Node translated.", "attributes", len(n.Attrs), "parents", n.Parents)
	return n, nil
}

// translateParents accepts either a single path string or a list of paths.
func translateParents(expr hcl.Expression) ([]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid parents: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	if val.Type() == cty.String {
		return []string{val.AsString()}, nil
	}

	native, err := ctyToNative(val)
	if err != nil {
		return nil, fmt.Errorf("invalid parents: %w", err)
	}
	list, ok := native.([]any)
	if !ok {
		return nil, fmt.Errorf("parents must be a string or a list of strings, got %s", val.Type().FriendlyName())
	}
	parents := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("parents must only contain strings")
		}
		parents = append(parents, s)
	}
	return parents, nil
}

// translateConnection parses both ends of a connect block.
func translateConnection(b *ConnectBlock) (plug.Connection, error) {
	from, err := plug.Parse(b.From)
	if err != nil {
		return plug.Connection{}, fmt.Errorf("invalid connection source: %w", err)
	}
	to, err := plug.Parse(b.To)
	if err != nil {
		return plug.Connection{}, fmt.Errorf("invalid connection destination: %w", err)
	}
	return plug.Connection{Source: from, Destination: to}, nil
}
