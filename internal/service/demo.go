// Package service runs the demo pipelines: save the fixed entity list,
// load it back, display every reloaded entity on the configured sink.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"menagerie/internal/domain"
	"menagerie/internal/sink"
	"menagerie/internal/store"
)

// Demo is the orchestration for one system: a fixed entity list, a store,
// a target path, and a sink to display on.
type Demo struct {
	system   string
	store    store.Store
	sink     sink.Sink
	entities []domain.Entity
	path     string
	log      *slog.Logger
}

// New creates a demo pipeline.
func New(system string, st store.Store, sk sink.Sink, entities []domain.Entity, path string, log *slog.Logger) *Demo {
	return &Demo{
		system:   system,
		store:    st,
		sink:     sk,
		entities: entities,
		path:     path,
		log:      log,
	}
}

// Run executes the pipeline: save, load, display. Any failure aborts the
// run; nothing is retried or recovered.
func (d *Demo) Run(ctx context.Context) error {
	d.log.Debug("saving entities", "system", d.system, "count", len(d.entities), "path", d.path)
	if err := d.store.Save(ctx, d.entities, d.path); err != nil {
		return fmt.Errorf("%s: save: %w", d.system, err)
	}

	d.log.Debug("loading entities", "system", d.system, "path", d.path)
	loaded, err := d.store.Load(ctx, d.path)
	if err != nil {
		return fmt.Errorf("%s: load: %w", d.system, err)
	}

	d.log.Debug("displaying entities", "system", d.system, "count", len(loaded))
	for _, entity := range loaded {
		for _, line := range entity.DisplayLines() {
			if err := d.sink.WriteLine(line); err != nil {
				return fmt.Errorf("%s: display %s: %w", d.system, entity.Name(), err)
			}
		}
	}

	return nil
}

// DataPath builds the storage path for a system and format, e.g.
// animals.json, shapes.xml, animals.db for the sqlite backend.
func DataPath(dir, system, format string) string {
	ext := format
	if format == "sqlite" {
		ext = "db"
	}
	return filepath.Join(dir, system+"."+ext)
}
