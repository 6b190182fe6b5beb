package cache

import (
	"sync"
	"time"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
)

// ── Raw dataset cache ────────────────────────────────────────────────────────
// Memoizes the cleaned rows of one loaded export, keyed by source path.
// Invalidation is by file mtime rather than TTL: the file on disk is the
// source of truth. This is the pipeline's only memoization boundary;
// derived and filtered views are recomputed per request.

type datasetEntry struct {
	path    string
	modTime time.Time
	rows    []models.OrderRow
	stats   pipeline.CleanStats
}

var (
	datasetMu    sync.RWMutex
	datasetCache *datasetEntry
)

func GetDataset(path string, modTime time.Time) ([]models.OrderRow, pipeline.CleanStats, bool) {
	datasetMu.RLock()
	defer datasetMu.RUnlock()
	if datasetCache != nil && datasetCache.path == path && datasetCache.modTime.Equal(modTime) {
		return datasetCache.rows, datasetCache.stats, true
	}
	return nil, pipeline.CleanStats{}, false
}

func SetDataset(path string, modTime time.Time, rows []models.OrderRow, stats pipeline.CleanStats) {
	datasetMu.Lock()
	defer datasetMu.Unlock()
	datasetCache = &datasetEntry{
		path:    path,
		modTime: modTime,
		rows:    rows,
		stats:   stats,
	}
}

// InvalidateDataset drops the cached rows (next load re-reads the file)
func InvalidateDataset() {
	datasetMu.Lock()
	datasetCache = nil
	datasetMu.Unlock()
}
