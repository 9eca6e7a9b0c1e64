package cmd

import (
	"fmt"
	"os"

	"github.com/intelligrit/geodis/internal/gazetteer"
	"github.com/intelligrit/geodis/internal/gazetteer/cache"
	"github.com/intelligrit/geodis/internal/logx"
)

// loadDictionary loads the gazetteer from its DuckDB snapshot cache when
// the cache is fresh against the NDJSON source, and falls back to parsing
// the source directly (repopulating the cache) otherwise.
func loadDictionary() (*gazetteer.Dictionary, error) {
	info, err := os.Stat(gazetteerPath)
	if err != nil {
		return nil, fmt.Errorf("stat gazetteer source: %w", err)
	}

	c, err := cache.Open(cachePath)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	defer c.Close()

	if c.Fresh(gazetteerPath, info.Size()) {
		logx.Verbose("cache %s is fresh against %s, loading from cache", cachePath, gazetteerPath)
		return c.Load()
	}

	logx.Verbose("cache %s is stale or empty, parsing %s", cachePath, gazetteerPath)
	f, err := os.Open(gazetteerPath)
	if err != nil {
		return nil, fmt.Errorf("opening gazetteer source: %w", err)
	}
	defer f.Close()

	dict, warnings := gazetteer.Load(f)
	for _, w := range warnings {
		logx.Verbose("warning: %v", w)
	}
	if len(warnings) > 0 {
		fmt.Fprintf(os.Stderr, "%d warnings while loading gazetteer (use -v to see them)\n", len(warnings))
	}

	if err := c.Store(dict, gazetteerPath, info.Size()); err != nil {
		logx.Verbose("failed to refresh cache: %v", err)
	}

	return dict, nil
}
