package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/dgeast/jeju-sale1/cache"
	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
)

// ErrNoDataset is the single fatal condition: the primary sales export is
// missing entirely.
var ErrNoDataset = errors.New("no preprocessed sales dataset found")

var datasetVersionRe = regexp.MustCompile(`preprocessed_data_(\d+)\.csv$`)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LatestDatasetPath resolves the newest versioned export
// (preprocessed_data_N.csv, highest N wins) and falls back to the unversioned
// file name.
func LatestDatasetPath(dataDir string) (string, error) {
	matches, _ := filepath.Glob(filepath.Join(dataDir, "preprocessed_data_*.csv"))

	type versioned struct {
		path    string
		version int
	}
	var candidates []versioned
	for _, m := range matches {
		sub := datasetVersionRe.FindStringSubmatch(m)
		if sub == nil {
			continue
		}
		v, err := strconv.Atoi(sub[1])
		if err != nil {
			continue
		}
		candidates = append(candidates, versioned{path: m, version: v})
	}
	if len(candidates) > 0 {
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].version < candidates[j].version })
		return candidates[len(candidates)-1].path, nil
	}

	fallback := filepath.Join(dataDir, "preprocessed_data.csv")
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}
	return "", ErrNoDataset
}

// LoadDataset returns the cleaned order rows for the newest export,
// memoized per source path until the file changes on disk. Derived and
// filtered views are never cached; each request recomputes them.
func LoadDataset(dataDir string, opts pipeline.Options) ([]models.OrderRow, pipeline.CleanStats, error) {
	path, err := LatestDatasetPath(dataDir)
	if err != nil {
		return nil, pipeline.CleanStats{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, pipeline.CleanStats{}, err
	}

	if rows, stats, ok := cache.GetDataset(path, info.ModTime()); ok {
		return rows, stats, nil
	}

	records, err := ReadCSVRecords(path)
	if err != nil {
		return nil, pipeline.CleanStats{}, fmt.Errorf("read dataset %s: %w", path, err)
	}

	rows, stats := pipeline.CleanRows(records, opts)
	cache.SetDataset(path, info.ModTime(), rows, stats)
	log.Printf("[dataset] loaded %s rows=%d dropped_bad_dates=%d unified_fallbacks=%d",
		filepath.Base(path), len(rows), stats.DroppedBadDates, stats.UnifiedFallbacks)
	return rows, stats, nil
}

// ReadCSVRecords parses a tabular export into header-keyed records. The
// exports arrive either UTF-8 with a BOM or in the legacy Korean code page,
// so UTF-8 is tried first and EUC-KR decoding is the fallback.
func ReadCSVRecords(path string) ([]map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data := bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, derr := transform.Bytes(korean.EUCKR.NewDecoder(), data)
		if derr != nil {
			return nil, fmt.Errorf("decode legacy encoding: %w", derr)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []map[string]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// skip the malformed line and keep reading; bad data never
			// takes down the whole load
			continue
		}
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(fields) {
				rec[col] = fields[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
