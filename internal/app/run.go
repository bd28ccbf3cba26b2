package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/matexport/internal/ctxlog"
	"github.com/specialistvlad/matexport/internal/export"
	"github.com/specialistvlad/matexport/internal/resolver"
	"github.com/specialistvlad/matexport/internal/sink"
)

// Run executes one export: pick the destination, load the snapshot, build
// the document and write it. Nothing is written if any step before the write fails.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	dest, err := sink.New(cfg.Output, sink.Options{Stdout: a.outW, S3: cfg.S3})
	if errors.Is(err, sink.ErrNoDestination) {
		a.logger.Warn("Export canceled by user.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid destination %q: %w", cfg.Output, err)
	}
	a.logger.Debug("Destination selected.", "location", dest.Location())

	graph, err := a.loader.Load(ctx, cfg.ScenePaths...)
	if err != nil {
		return fmt.Errorf("failed to load scene snapshot: %w", err)
	}

	res, err := resolver.New(graph, resolver.WithCache(cfg.ResolveCacheSize))
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	doc := export.New(graph, res).Export(ctx)

	data, err := sink.Encode(doc)
	if err != nil {
		return err
	}

	if err := dest.Write(ctx, data); err != nil {
		a.logger.Error("Failed to save the file.", "location", dest.Location(), "error", err)
		return fmt.Errorf("failed to save the file: %w", err)
	}

	a.logger.Info("Shader data successfully exported.", "location", dest.Location(), "meshes", len(doc.Meshes), "shaders", len(doc.Shaders))
	return nil
}
