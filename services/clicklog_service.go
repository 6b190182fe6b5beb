package services

import (
	"errors"
	"path/filepath"
	"sort"

	"github.com/dgeast/jeju-sale1/pipeline"
)

// Optional marketing-log inputs. Their absence is not an error condition for
// the pipeline; the funnel views degrade to "unavailable".
var ErrNoClickLog = errors.New("no click log found")
var ErrNoVisitLog = errors.New("no visit log found")

// Column headers of the marketing log exports
const (
	colClickTotal = "합계" // aggregate cell, e.g. "16649 1551 (9.32%)"
	colVisitDAU   = "DAU"
)

// LatestLogPath picks the newest matching log by file-name sort
func LatestLogPath(dataDir, pattern string, notFound error) (string, error) {
	matches, _ := filepath.Glob(filepath.Join(dataDir, pattern))
	if len(matches) == 0 {
		return "", notFound
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// LoadClickCounts reads the newest click log into per-product click totals.
// The click count is the leading integer of the free-text aggregate cell.
func LoadClickCounts(dataDir string) ([]pipeline.ClickCount, error) {
	path, err := LatestLogPath(dataDir, "salesclick_*.csv", ErrNoClickLog)
	if err != nil {
		return nil, err
	}
	records, err := ReadCSVRecords(path)
	if err != nil {
		return nil, err
	}

	counts := make([]pipeline.ClickCount, 0, len(records))
	for _, rec := range records {
		code := rec[pipeline.ColProductCode]
		if code == "" {
			continue
		}
		counts = append(counts, pipeline.ClickCount{
			ProductCode: code,
			Clicks:      pipeline.ExtractLeadingInt(rec[colClickTotal]),
		})
	}
	return counts, nil
}

// TotalClicks sums a click log into one funnel-stage count
func TotalClicks(counts []pipeline.ClickCount) float64 {
	var total float64
	for _, c := range counts {
		total += c.Clicks
	}
	return total
}

// LoadVisitTotal reads the newest visit log and sums the DAU column, again
// taking only the leading integer of each free-text cell.
func LoadVisitTotal(dataDir string) (float64, error) {
	path, err := LatestLogPath(dataDir, "salesvisit_*.csv", ErrNoVisitLog)
	if err != nil {
		return 0, err
	}
	records, err := ReadCSVRecords(path)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, rec := range records {
		total += pipeline.ExtractLeadingInt(rec[colVisitDAU])
	}
	return total, nil
}
