package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/matexport/internal/ctxlog"
	"github.com/specialistvlad/matexport/internal/fsutil"
	"github.com/specialistvlad/matexport/internal/inmemoryscene"
	"github.com/specialistvlad/matexport/internal/plug"
	"github.com/specialistvlad/matexport/internal/scene"
)

var _ scene.Loader = (*Loader)(nil)

// Loader is the HCL-specific implementation of the scene.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL snapshot loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths into one in-memory scene.
// All nodes are added before any connection, so connections may reference
// nodes declared in other files.
func (l *Loader) Load(ctx context.Context, paths ...string) (scene.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL scene loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, fmt.Errorf("no scene snapshot paths given")
	}

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered snapshot files.", "count", len(files))

	parser := hclparse.NewParser()
	store := inmemoryscene.New()
	var connections []plug.Connection

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Nodes {
			n, err := translateNode(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			if err := store.AddNode(ctx, n); err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
		}
		for _, block := range root.Connections {
			conn, err := translateConnection(block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			connections = append(connections, conn)
		}
	}

	for _, conn := range connections {
		if err := store.Connect(ctx, conn.Source, conn.Destination); err != nil {
			return nil, fmt.Errorf("failed to connect %s -> %s: %w", conn.Source, conn.Destination, err)
		}
	}

	logger.Info("Scene snapshot loaded.", "files", len(files), "nodes", store.Len(), "connections", len(connections))
	return store, nil
}
