package cmd

import (
	"context"
	"fmt"

	"github.com/solatis/segmentvet/internal/catalog"
	"github.com/solatis/segmentvet/internal/core/api"
	"github.com/solatis/segmentvet/internal/core/config"
	"github.com/solatis/segmentvet/internal/core/db"
	"github.com/solatis/segmentvet/internal/segments"
)

// Catalog sources, in precedence order.
const (
	sourceFile     = "file"
	sourceDatabase = "database"
	sourceBuiltin  = "builtin"
)

// loadCatalog resolves the segment catalog: catalog file, then database
// store, then the built-in catalog.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, string, error) {
	if cfg.Catalog.Path != "" {
		c, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, "", err
		}
		return c, sourceFile, nil
	}

	if cfg.Database.URL != "" {
		database, err := db.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		queries, err := db.LoadQueries(database)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load queries: %w", err)
		}
		c, err := catalog.NewStore(queries).Load(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("%w (run 'segmentvet migrate --seed' first)", err)
		}
		return c, sourceDatabase, nil
	}

	return catalog.Builtin(), sourceBuiltin, nil
}

// newService loads the catalog and wires the projection engine into a
// SegmentService.
func (o *rootOptions) newService(ctx context.Context, cfg *config.Config) (*api.SegmentService, error) {
	c, source, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	o.log().Debug("catalog loaded", "source", source, "segments", c.Len())

	engine, err := segments.NewEngine(cfg.Model)
	if err != nil {
		return nil, err
	}
	return api.NewSegmentService(c, engine, cfg.Publisher.Name, o.log())
}
